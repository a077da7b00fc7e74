// Package output provides output formatting for quote results.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"freight-rate/core/types"
	"freight-rate/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// QuoteReport contains the complete quote output for one shipment
// across all queried carriers.
type QuoteReport struct {
	// SourcePincode is the origin postal code
	SourcePincode int `json:"source_pincode"`

	// DestPincode is the destination postal code
	DestPincode int `json:"dest_pincode"`

	// Weight is the chargeable weight in kg
	Weight float64 `json:"weight"`

	// IsCOD marks a cash-on-delivery shipment
	IsCOD bool `json:"is_cod"`

	// OrderValue is the declared shipment value
	OrderValue float64 `json:"order_value,omitempty"`

	// Results holds one priced result per carrier
	Results []types.PricedResult `json:"results"`

	// Timestamp is when the quote was produced
	Timestamp string `json:"timestamp"`
}

// NewQuoteReport assembles a report with serviceable carriers first,
// cheapest first. Unserviceable carriers keep their rejection reason
// at the tail.
func NewQuoteReport(source, dest int, weight float64, isCOD bool, orderValue float64, results []types.PricedResult) *QuoteReport {
	sorted := make([]types.PricedResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Serviceable != sorted[j].Serviceable {
			return sorted[i].Serviceable
		}
		return sorted[i].TotalCost < sorted[j].TotalCost
	})

	return &QuoteReport{
		SourcePincode: source,
		DestPincode:   dest,
		Weight:        weight,
		IsCOD:         isCOD,
		OrderValue:    orderValue,
		Results:       sorted,
		Timestamp:     time.Now().Format(time.RFC3339),
	}
}

// Best returns the cheapest serviceable result, if any.
func (r *QuoteReport) Best() (types.PricedResult, bool) {
	for _, res := range r.Results {
		if res.Serviceable {
			return res, true
		}
	}
	return types.PricedResult{}, false
}

// Render writes the report in the requested format.
func Render(w io.Writer, format Format, report *QuoteReport, showDetails bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatCLI, "":
		renderCLI(w, report, showDetails)
		return nil
	}
	return errors.Newf(errors.TypeInput, "unsupported output format: %s", format)
}

func renderCLI(w io.Writer, report *QuoteReport, showDetails bool) {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ %-71s │\n", fmt.Sprintf("QUOTE  %d -> %d  (%.2f kg)", report.SourcePincode, report.DestPincode, report.Weight))
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	for _, res := range report.Results {
		if !res.Serviceable {
			fmt.Fprintf(w, "│ %-40s %30s │\n",
				truncate(res.Carrier, 40),
				truncate(res.Error, 30))
			continue
		}

		fmt.Fprintf(w, "│ %-50s %20s │\n",
			truncate(fmt.Sprintf("%s  [%s]", res.Carrier, res.Zone), 50),
			fmt.Sprintf("Rs %.2f", res.TotalCost))

		if showDetails && res.Breakdown != nil {
			for _, line := range breakdownLines(res.Breakdown) {
				fmt.Fprintf(w, "│   └─ %-46s %20s │\n",
					line.label, fmt.Sprintf("Rs %.2f", line.amount))
			}
		}
	}

	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
}

type breakdownLine struct {
	label  string
	amount float64
}

// breakdownLines lists only the charges that actually apply.
func breakdownLines(b *types.CostBreakdown) []breakdownLine {
	all := []breakdownLine{
		{"Base Freight", b.BaseFreight},
		{"Docket Fee", b.DocketFee},
		{"AWB Fee", b.AWBFee},
		{"Fuel Surcharge", b.FuelSurcharge},
		{"Hamali", b.HamaliCharge},
		{"FOV", b.FOVCharge},
		{"Owner's Risk", b.RiskCharge},
		{"FOD", b.FODCharge},
		{"ECC", b.ECCCharge},
		{"EDL", b.EDLCharge},
		{"COD Fee", b.CODFee},
		{"DOD", b.DODCharge},
		{fmt.Sprintf("Escalation (%s)", b.EscalationRate), b.EscalationAmount},
		{fmt.Sprintf("GST (%s)", b.GSTRate), b.GSTAmount},
	}

	lines := make([]breakdownLine, 0, len(all))
	for _, line := range all {
		if line.amount != 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
