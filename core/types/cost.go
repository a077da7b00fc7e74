// Package types - Cost breakdown types
package types

import "github.com/shopspring/decimal"

// CostBreakdown is the itemized composition of a priced shipment.
// Every amount is rounded to 2 decimals at assembly time only;
// internal arithmetic runs at full float64 precision.
type CostBreakdown struct {
	// Freight inputs
	RatePerKg         float64 `json:"rate_per_kg,omitempty"`
	ChargedWeight     float64 `json:"charged_weight,omitempty"`
	BaseSlabRate      float64 `json:"base_slab_rate,omitempty"`
	AdditionalRate    float64 `json:"additional_rate,omitempty"`
	ExtraWeightUnits  int     `json:"extra_weight_units,omitempty"`
	ExtraWeightCharge float64 `json:"extra_weight_charge,omitempty"`
	BaseFreight       float64 `json:"base_freight"`

	// Carrier surcharges
	DocketFee     float64 `json:"docket_fee"`
	AWBFee        float64 `json:"awb_fee,omitempty"`
	FuelSurcharge float64 `json:"fuel_surcharge"`
	HamaliCharge  float64 `json:"hamali_charge"`
	FOVCharge     float64 `json:"fov_charge"`
	RiskCharge    float64 `json:"risk_charge,omitempty"`
	FODCharge     float64 `json:"fod_charge,omitempty"`
	ECCCharge     float64 `json:"ecc_charge,omitempty"`
	EDLCharge     float64 `json:"edl_charge,omitempty"`
	CODFee        float64 `json:"cod_fee"`
	DODCharge     float64 `json:"dod_charge,omitempty"`

	// Composition
	Subtotal              float64 `json:"subtotal"`
	EscalationRate        string  `json:"escalation_rate"`
	EscalationAmount      float64 `json:"escalation_amount"`
	AmountAfterEscalation float64 `json:"amount_after_escalation"`
	GSTRate               string  `json:"gst_rate"`
	GSTAmount             float64 `json:"gst_amount"`
	FinalTotal            float64 `json:"final_total"`
}

// PricedResult is the outcome of pricing one shipment with one
// carrier. Serviceable=false is the terminal outcome for the carrier;
// Error then carries the reason and Breakdown is nil.
type PricedResult struct {
	// Carrier is the carrier name
	Carrier string `json:"carrier"`

	// Zone is the resolved zone description
	Zone string `json:"zone,omitempty"`

	// Serviceable is false when the carrier rejects the route
	Serviceable bool `json:"servicable"`

	// Error is the rejection reason when not serviceable
	Error string `json:"error,omitempty"`

	// TotalCost is the final landed cost
	TotalCost float64 `json:"total_cost,omitempty"`

	// Breakdown preserves every intermediate line item
	Breakdown *CostBreakdown `json:"breakdown,omitempty"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
