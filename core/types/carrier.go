// Package types - Carrier configuration types
package types

// Strategy identifies the routing strategy a carrier uses
type Strategy string

const (
	// StrategyStandard is slab-based pricing over the fixed A-F zones
	StrategyStandard Strategy = "standard"

	// StrategyHubCity is per-kg pricing on hub<->city routes
	StrategyHubCity Strategy = "city_specific"

	// StrategyZoneMatrix is per-kg pricing over a carrier zone matrix
	StrategyZoneMatrix Strategy = "matrix"

	// StrategyRegionCSV is region pricing from a serviceable-pincode table
	StrategyRegionCSV Strategy = "pincode_region_csv"
)

// Routing selects exactly one routing strategy for a carrier.
// Strategy is the discriminant; only the matching variant is set.
type Routing struct {
	// Strategy is the routing strategy discriminant
	Strategy Strategy `json:"strategy"`

	// RegionCSV is set for StrategyRegionCSV
	RegionCSV *RegionCSVRouting `json:"region_csv,omitempty"`

	// HubCity is set for StrategyHubCity
	HubCity *HubCityRouting `json:"hub_city,omitempty"`

	// Matrix is set for StrategyZoneMatrix
	Matrix *ZoneMatrixRouting `json:"matrix,omitempty"`

	// Standard is set for StrategyStandard
	Standard *StandardRouting `json:"standard,omitempty"`
}

// RegionCSVRouting prices by the destination's region in a
// carrier-specific serviceable-pincode table.
type RegionCSVRouting struct {
	// Table is the serviceable-pincode table name
	Table string `json:"table"`

	// RequiredSourceCity restricts pickup to one origin city when set
	RequiredSourceCity string `json:"required_source_city,omitempty"`

	// RatesPerKg maps region code to the per-kg forward rate
	RatesPerKg map[string]float64 `json:"rates_per_kg"`
}

// HubCityRouting prices hub<->city routes per kg. Routes are
// bidirectional; rate cards are keyed by the non-hub city.
type HubCityRouting struct {
	// Table is the pincode-to-city table name
	Table string `json:"table"`

	// Hub is the carrier's consolidation city (lowercase)
	Hub string `json:"hub"`

	// CityRates maps serviceable city to the per-kg rate
	CityRates map[string]float64 `json:"city_rates"`
}

// ZoneMatrixRouting prices per kg by an origin-zone x dest-zone matrix.
type ZoneMatrixRouting struct {
	// ZoneMapping maps a location (state) name to a zone code
	ZoneMapping map[string]string `json:"zone_mapping"`

	// Rates maps origin zone -> dest zone -> per-kg rate
	Rates map[string]map[string]float64 `json:"rates"`
}

// StandardRouting prices by weight slabs over the fixed A-F zones.
type StandardRouting struct {
	// ForwardRates maps zone code to the first-slab rate
	ForwardRates map[string]float64 `json:"forward_rates"`

	// AdditionalRates maps zone code to the per-extra-slab rate
	AdditionalRates map[string]float64 `json:"additional_rates"`
}

// FixedFees are flat per-shipment charges.
type FixedFees struct {
	// DocketFee is the flat documentation charge
	DocketFee float64 `json:"docket_fee"`

	// AWBFee is the air waybill charge
	AWBFee float64 `json:"awb_fee"`

	// EwayBillFee is the e-way bill generation charge
	EwayBillFee float64 `json:"eway_bill_fee"`

	// AppointmentDelivery is the fixed appointment-delivery charge
	AppointmentDelivery float64 `json:"appointment_delivery"`

	// CODFixed is the minimum cash-on-delivery fee
	CODFixed float64 `json:"cod_fixed"`
}

// MinPercent is a value-proportional charge with a floor.
type MinPercent struct {
	// Percent is the ratio applied to the order value (0.005 = 0.5%)
	Percent float64 `json:"percent"`

	// MinAmount is the charge floor
	MinAmount float64 `json:"min_amount"`
}

// SlabCharge is a two-step charge split at a weight threshold.
type SlabCharge struct {
	// SlabWeight is the threshold in kg
	SlabWeight float64 `json:"slab_weight"`

	// LTECharge applies at or below the threshold
	LTECharge float64 `json:"lte_charge"`

	// GTCharge applies above the threshold
	GTCharge float64 `json:"gt_charge"`
}

// ECCBand is one weight band of the ECC charge table.
type ECCBand struct {
	// Max is the inclusive upper bound of the band in kg
	Max float64 `json:"max"`

	// Charge is the flat charge for the band
	Charge float64 `json:"charge"`
}

// VariableFees are charges derived from weight or order value.
type VariableFees struct {
	// HamaliPerKg is the labor charge per kg (0 disables hamali)
	HamaliPerKg float64 `json:"hamali_per_kg"`

	// MinHamali is the labor charge floor
	MinHamali float64 `json:"min_hamali"`

	// FOVInsuredPercent is the freight-on-value insurance ratio
	FOVInsuredPercent float64 `json:"fov_insured_percent"`

	// FOVMin is the FOV charge floor
	FOVMin float64 `json:"fov_min"`

	// CODPercent is the COD ratio; values > 1 are percentage units
	CODPercent float64 `json:"cod_percent"`

	// OwnersRisk is the owner's-risk charge, nil when not offered
	OwnersRisk *MinPercent `json:"owners_risk,omitempty"`

	// DOD is the demand-draft-on-delivery charge; when set it
	// replaces the standard COD fee on COD shipments
	DOD *MinPercent `json:"dod_charge,omitempty"`

	// FOD is the freight-on-delivery charge
	FOD *SlabCharge `json:"fod_charge,omitempty"`

	// ECC is the weight-banded ECC charge table, first match wins
	ECC []ECCBand `json:"ecc_charge,omitempty"`
}

// FuelConfig describes the fuel surcharge model.
type FuelConfig struct {
	// IsDynamic selects the diesel-indexed formula over FlatPercent
	IsDynamic bool `json:"is_dynamic"`

	// BaseDieselPrice is the contract reference diesel price
	BaseDieselPrice float64 `json:"base_diesel_price"`

	// DieselRatio scales the diesel price delta (percent per rupee)
	DieselRatio float64 `json:"diesel_ratio"`

	// FlatPercent is the flat surcharge ratio (0.556 = 55.6%)
	FlatPercent float64 `json:"flat_percent"`
}

// EDLSpecialRegions lists states/regions billed flat-rate EDL.
type EDLSpecialRegions struct {
	// States are state names as they appear in the region table
	States []string `json:"states"`

	// Regions are region codes as they appear in the region table
	Regions []string `json:"regions"`

	// RatePerKg is the special-region per-kg rate
	RatePerKg float64 `json:"rate_per_kg"`

	// MinAmount is the special-region charge floor
	MinAmount float64 `json:"min_amount"`
}

// EDLOverflow prices EDL beyond the matrix bounds.
type EDLOverflow struct {
	// DistLimit is the matrix distance ceiling in km
	DistLimit float64 `json:"dist_limit"`

	// DistRatePerKm applies past DistLimit
	DistRatePerKm float64 `json:"dist_rate_per_km"`

	// WeightLimit is the matrix weight ceiling in kg
	WeightLimit float64 `json:"weight_limit"`

	// WeightRatePerKg applies past WeightLimit
	WeightRatePerKg float64 `json:"weight_rate_per_kg"`
}

// EDLConfig describes extended-delivery-location surcharges.
type EDLConfig struct {
	// SpecialRegions are billed flat-rate regardless of distance
	SpecialRegions EDLSpecialRegions `json:"special_regions"`

	// Overflow applies when distance or weight exceeds the matrix
	Overflow EDLOverflow `json:"overflow_rates"`
}

// EDLBand is one distance band of the EDL matrix. Rates are keyed by
// weight slab ("100", "250", ...); the smallest slab >= the shipment
// weight applies.
type EDLBand struct {
	// DistMin is the inclusive lower distance bound in km
	DistMin float64 `json:"dist_min"`

	// DistMax is the inclusive upper distance bound in km
	DistMax float64 `json:"dist_max"`

	// Rates maps weight slab (kg, as string) to the flat charge
	Rates map[string]float64 `json:"rates"`
}

// CarrierConfig is the full, read-only configuration bundle for one
// carrier. The engine never mutates it during a pricing call.
type CarrierConfig struct {
	// CarrierName identifies the carrier in output and errors
	CarrierName string `json:"carrier_name"`

	// MinWeight is the minimum billable weight in kg; shipments
	// below it are charged as if at the minimum
	MinWeight float64 `json:"min_weight"`

	// MaxWeight is the serviceability ceiling in kg
	MaxWeight float64 `json:"max_weight"`

	// MinFreight is the floor applied to computed freight
	MinFreight float64 `json:"min_freight"`

	// VolumetricDivisor converts cm3 to volumetric kg (e.g. 5000)
	VolumetricDivisor float64 `json:"volumetric_divisor"`

	// Routing selects the zone resolution strategy
	Routing Routing `json:"routing"`

	// FixedFees are flat per-shipment charges
	FixedFees FixedFees `json:"fixed_fees"`

	// VariableFees are weight/value derived charges
	VariableFees VariableFees `json:"variable_fees"`

	// Fuel is the fuel surcharge model
	Fuel FuelConfig `json:"fuel_config"`

	// EDL enables extended-delivery-location surcharges when set
	EDL *EDLConfig `json:"edl_config,omitempty"`

	// EDLMatrix is the distance-banded EDL charge table
	EDLMatrix []EDLBand `json:"edl_matrix,omitempty"`
}
