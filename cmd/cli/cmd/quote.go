// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"freight-rate/core/cards"
	"freight-rate/core/cost"
	"freight-rate/core/output"
	"freight-rate/core/types"
	"freight-rate/internal/logging"
)

var (
	quoteFrom    int
	quoteTo      int
	quoteWeight  float64
	quoteCOD     bool
	quoteValue   float64
	quoteCarrier string
	quoteFormat  string
	quoteDetails bool
	quoteLength  float64
	quoteWidth   float64
	quoteHeight  float64
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a shipment across carriers",
	Long: `Resolve the zone and compute the landed cost of one shipment
for every configured carrier (or a single carrier via --carrier).

When dimensions are given, the billable weight is the greater of the
actual and volumetric weight per each carrier's divisor.

Examples:
  freight-rate quote --from 400001 --to 110001 --weight 25
  freight-rate quote --from 400001 --to 600001 --weight 10 --cod --value 5000
  freight-rate quote --from 400001 --to 110001 --weight 2 --length 40 --width 30 --height 20`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().IntVar(&quoteFrom, "from", 0, "source pincode")
	quoteCmd.Flags().IntVar(&quoteTo, "to", 0, "destination pincode")
	quoteCmd.Flags().Float64VarP(&quoteWeight, "weight", "w", 0, "shipment weight in kg")
	quoteCmd.Flags().BoolVar(&quoteCOD, "cod", false, "cash-on-delivery shipment")
	quoteCmd.Flags().Float64Var(&quoteValue, "value", 0, "declared order value")
	quoteCmd.Flags().StringVarP(&quoteCarrier, "carrier", "c", "", "price a single carrier by name")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "cli", "output format (cli, json)")
	quoteCmd.Flags().BoolVarP(&quoteDetails, "details", "d", true, "show detailed cost breakdown")
	quoteCmd.Flags().Float64Var(&quoteLength, "length", 0, "parcel length in cm")
	quoteCmd.Flags().Float64Var(&quoteWidth, "width", 0, "parcel width in cm")
	quoteCmd.Flags().Float64Var(&quoteHeight, "height", 0, "parcel height in cm")

	quoteCmd.MarkFlagRequired("from")
	quoteCmd.MarkFlagRequired("to")
	quoteCmd.MarkFlagRequired("weight")
}

func runQuote(cmd *cobra.Command, args []string) error {
	if quoteWeight <= 0 {
		return fmt.Errorf("weight must be positive, got %g", quoteWeight)
	}

	application, err := newApp()
	if err != nil {
		return err
	}

	carrierList := application.carriers
	if quoteCarrier != "" {
		cfg, ok := cards.Find(application.carriers, quoteCarrier)
		if !ok {
			return fmt.Errorf("unknown carrier: %s", quoteCarrier)
		}
		carrierList = []*types.CarrierConfig{cfg}
	}

	logging.Info("pricing shipment")

	results := make([]types.PricedResult, 0, len(carrierList))
	for _, cfg := range carrierList {
		weight := cost.ChargeableWeight(quoteWeight, quoteLength, quoteWidth, quoteHeight, cfg.VolumetricDivisor)
		results = append(results, application.engine.Price(weight, quoteFrom, quoteTo, cfg, quoteCOD, quoteValue))
	}

	report := output.NewQuoteReport(quoteFrom, quoteTo, quoteWeight, quoteCOD, quoteValue, results)
	return output.Render(os.Stdout, output.Format(quoteFormat), report, quoteDetails)
}
