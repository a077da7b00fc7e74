// Package cards - legacy JSON master card
package cards

import (
	"encoding/json"
	"os"

	"freight-rate/core/types"
	"freight-rate/internal/errors"
)

// legacyCard mirrors one entry of the legacy master card. Routing is
// implied by which optional fields are populated; Convert maps that
// onto the explicit strategy discriminant.
type legacyCard struct {
	CarrierName        string  `json:"carrier_name"`
	Active             *bool   `json:"active"`
	MinWeight          float64 `json:"min_weight"`
	MaxWeight          float64 `json:"max_weight"`
	MinFreight         float64 `json:"min_freight"`
	VolumetricDivisor  float64 `json:"volumetric_divisor"`
	RequiredSourceCity string  `json:"required_source_city"`

	RoutingLogic legacyRouting `json:"routing_logic"`

	ZoneMapping     map[string]string  `json:"zone_mapping"`
	ForwardRates    map[string]float64 `json:"forward_rates"`
	AdditionalRates map[string]float64 `json:"additional_rates"`

	FixedFees    map[string]float64 `json:"fixed_fees"`
	VariableFees legacyVariableFees `json:"variable_fees"`
	FuelConfig   types.FuelConfig   `json:"fuel_config"`
	EDLConfig    *types.EDLConfig   `json:"edl_config"`
	EDLMatrix    []types.EDLBand    `json:"edl_matrix"`

	// old-format COD fields, read when fixed_fees/variable_fees
	// carry no COD values
	CODFixed   float64 `json:"cod_fixed"`
	CODPercent float64 `json:"cod_percent"`
}

type legacyRouting struct {
	Type           string             `json:"type"`
	CSVFile        string             `json:"csv_file"`
	IsCitySpecific bool               `json:"is_city_specific"`
	PincodeCSV     string             `json:"pincode_csv"`
	HubCity        string             `json:"hub_city"`
	CityRates      map[string]float64 `json:"city_rates"`

	// ZonalRates is either origin->dest->rate (matrix carriers) or
	// {"forward": {...}, "additional": {...}} (standard carriers).
	ZonalRates json.RawMessage `json:"zonal_rates"`
}

type legacyVariableFees struct {
	HamaliPerKg       float64           `json:"hamali_per_kg"`
	MinHamali         float64           `json:"min_hamali"`
	FOVInsuredPercent float64           `json:"fov_insured_percent"`
	FOVMin            float64           `json:"fov_min"`
	CODPercent        float64           `json:"cod_percent"`
	OwnersRisk        *types.MinPercent `json:"owners_risk"`
	DODCharge         *types.MinPercent `json:"dod_charge"`
	FODCharge         *legacySlabCharge `json:"fod_charge"`
	ECCCharge         []types.ECCBand   `json:"ecc_charge"`
}

type legacySlabCharge struct {
	SlabWeight float64 `json:"slab_weight"`
	LTECharge  float64 `json:"lte_charge"`
	GTCharge   float64 `json:"gt_charge"`
}

// LoadMasterCard reads the legacy JSON master card file. Inactive
// carriers are skipped.
func LoadMasterCard(path string) ([]*types.CarrierConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "read master card %s", path)
	}

	var cardList []legacyCard
	if err := json.Unmarshal(data, &cardList); err != nil {
		return nil, errors.Parsing("decode master card", err)
	}

	configs := make([]*types.CarrierConfig, 0, len(cardList))
	for _, card := range cardList {
		if card.Active != nil && !*card.Active {
			continue
		}
		configs = append(configs, card.Convert())
	}
	return configs, nil
}

// Convert maps a legacy card onto the typed CarrierConfig. Strategy
// detection follows the legacy precedence: csv region type, then
// city-specific flag, then zone mapping presence, then standard.
func (c legacyCard) Convert() *types.CarrierConfig {
	cfg := &types.CarrierConfig{
		CarrierName:       c.CarrierName,
		MinWeight:         c.MinWeight,
		MaxWeight:         c.MaxWeight,
		MinFreight:        c.MinFreight,
		VolumetricDivisor: c.VolumetricDivisor,
		Routing:           c.routing(),
		FixedFees: types.FixedFees{
			DocketFee:           c.FixedFees["docket_fee"],
			AWBFee:              c.FixedFees["awb_fee"],
			EwayBillFee:         c.FixedFees["eway_bill_fee"],
			AppointmentDelivery: c.FixedFees["appointment_delivery"],
			CODFixed:            c.FixedFees["cod_fixed"],
		},
		VariableFees: types.VariableFees{
			HamaliPerKg:       c.VariableFees.HamaliPerKg,
			MinHamali:         c.VariableFees.MinHamali,
			FOVInsuredPercent: c.VariableFees.FOVInsuredPercent,
			FOVMin:            c.VariableFees.FOVMin,
			CODPercent:        c.VariableFees.CODPercent,
			OwnersRisk:        c.VariableFees.OwnersRisk,
			DOD:               c.VariableFees.DODCharge,
			ECC:               c.VariableFees.ECCCharge,
		},
		Fuel:      c.FuelConfig,
		EDL:       c.EDLConfig,
		EDLMatrix: c.EDLMatrix,
	}

	if fod := c.VariableFees.FODCharge; fod != nil {
		cfg.VariableFees.FOD = &types.SlabCharge{
			SlabWeight: fod.SlabWeight,
			LTECharge:  fod.LTECharge,
			GTCharge:   fod.GTCharge,
		}
	}

	// Old-format COD fallback.
	if cfg.FixedFees.CODFixed == 0 {
		cfg.FixedFees.CODFixed = c.CODFixed
	}
	if cfg.VariableFees.CODPercent == 0 {
		cfg.VariableFees.CODPercent = c.CODPercent
	}

	return cfg
}

func (c legacyCard) routing() types.Routing {
	if c.RoutingLogic.Type == string(types.StrategyRegionCSV) {
		return types.Routing{
			Strategy: types.StrategyRegionCSV,
			RegionCSV: &types.RegionCSVRouting{
				Table:              c.RoutingLogic.CSVFile,
				RequiredSourceCity: c.RequiredSourceCity,
				RatesPerKg:         c.ForwardRates,
			},
		}
	}

	if c.RoutingLogic.IsCitySpecific {
		return types.Routing{
			Strategy: types.StrategyHubCity,
			HubCity: &types.HubCityRouting{
				Table:     c.RoutingLogic.PincodeCSV,
				Hub:       c.RoutingLogic.HubCity,
				CityRates: c.RoutingLogic.CityRates,
			},
		}
	}

	rates := c.zonalRates()

	if len(c.ZoneMapping) > 0 {
		return types.Routing{
			Strategy: types.StrategyZoneMatrix,
			Matrix: &types.ZoneMatrixRouting{
				ZoneMapping: c.ZoneMapping,
				Rates:       rates,
			},
		}
	}

	forward := c.ForwardRates
	additional := c.AdditionalRates
	if fwd, ok := rates["forward"]; ok {
		forward = fwd
		additional = rates["additional"]
	}
	return types.Routing{
		Strategy: types.StrategyStandard,
		Standard: &types.StandardRouting{
			ForwardRates:    forward,
			AdditionalRates: additional,
		},
	}
}

// zonalRates decodes the polymorphic zonal_rates field. Non-map
// payloads (some legacy cards store an empty list) decode to nil.
func (c legacyCard) zonalRates() map[string]map[string]float64 {
	if len(c.RoutingLogic.ZonalRates) == 0 {
		return nil
	}
	var rates map[string]map[string]float64
	if err := json.Unmarshal(c.RoutingLogic.ZonalRates, &rates); err != nil {
		return nil
	}
	return rates
}
