// Package cards - HCL carrier definitions
package cards

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"freight-rate/core/types"
	"freight-rate/internal/errors"
)

// hclFile is the root schema of a carrier definition file.
type hclFile struct {
	Carriers []hclCarrier `hcl:"carrier,block"`
}

type hclCarrier struct {
	Name              string  `hcl:"name,label"`
	MinWeight         float64 `hcl:"min_weight,optional"`
	MaxWeight         float64 `hcl:"max_weight,optional"`
	MinFreight        float64 `hcl:"min_freight,optional"`
	VolumetricDivisor float64 `hcl:"volumetric_divisor,optional"`

	Routing      hclRouting       `hcl:"routing,block"`
	FixedFees    *hclFixedFees    `hcl:"fixed_fees,block"`
	VariableFees *hclVariableFees `hcl:"variable_fees,block"`
	Fuel         *hclFuel         `hcl:"fuel,block"`
	EDL          *hclEDL          `hcl:"edl,block"`
}

type hclRouting struct {
	Strategy           string             `hcl:"strategy"`
	Table              string             `hcl:"table,optional"`
	RequiredSourceCity string             `hcl:"required_source_city,optional"`
	Hub                string             `hcl:"hub,optional"`
	CityRates          map[string]float64 `hcl:"city_rates,optional"`
	RatesPerKg         map[string]float64 `hcl:"rates_per_kg,optional"`
	ZoneMapping        map[string]string  `hcl:"zone_mapping,optional"`
	MatrixRates        []hclMatrixRate    `hcl:"rate,block"`
	ForwardRates       map[string]float64 `hcl:"forward_rates,optional"`
	AdditionalRates    map[string]float64 `hcl:"additional_rates,optional"`
}

// hclMatrixRate is one cell of a zone matrix: rate "MH1" "CTL" { per_kg = 6.5 }
type hclMatrixRate struct {
	From  string  `hcl:"from,label"`
	To    string  `hcl:"to,label"`
	PerKg float64 `hcl:"per_kg"`
}

type hclFixedFees struct {
	DocketFee           float64 `hcl:"docket_fee,optional"`
	AWBFee              float64 `hcl:"awb_fee,optional"`
	EwayBillFee         float64 `hcl:"eway_bill_fee,optional"`
	AppointmentDelivery float64 `hcl:"appointment_delivery,optional"`
	CODFixed            float64 `hcl:"cod_fixed,optional"`
}

type hclVariableFees struct {
	HamaliPerKg       float64        `hcl:"hamali_per_kg,optional"`
	MinHamali         float64        `hcl:"min_hamali,optional"`
	FOVInsuredPercent float64        `hcl:"fov_insured_percent,optional"`
	FOVMin            float64        `hcl:"fov_min,optional"`
	CODPercent        float64        `hcl:"cod_percent,optional"`
	OwnersRisk        *hclMinPercent `hcl:"owners_risk,block"`
	DOD               *hclMinPercent `hcl:"dod,block"`
	FOD               *hclFOD        `hcl:"fod,block"`
	ECCBands          []hclECCBand   `hcl:"ecc_band,block"`
}

type hclMinPercent struct {
	Percent   float64 `hcl:"percent"`
	MinAmount float64 `hcl:"min_amount"`
}

type hclFOD struct {
	SlabWeight float64 `hcl:"slab_weight"`
	LTECharge  float64 `hcl:"lte_charge"`
	GTCharge   float64 `hcl:"gt_charge"`
}

type hclECCBand struct {
	Max    float64 `hcl:"max"`
	Charge float64 `hcl:"charge"`
}

type hclFuel struct {
	IsDynamic       bool    `hcl:"is_dynamic,optional"`
	BaseDieselPrice float64 `hcl:"base_diesel_price,optional"`
	DieselRatio     float64 `hcl:"diesel_ratio,optional"`
	FlatPercent     float64 `hcl:"flat_percent,optional"`
}

type hclEDL struct {
	SpecialStates    []string  `hcl:"special_states,optional"`
	SpecialRegions   []string  `hcl:"special_regions,optional"`
	SpecialRatePerKg float64   `hcl:"special_rate_per_kg,optional"`
	SpecialMinAmount float64   `hcl:"special_min_amount,optional"`
	DistLimit        float64   `hcl:"dist_limit,optional"`
	DistRatePerKm    float64   `hcl:"dist_rate_per_km,optional"`
	WeightLimit      float64   `hcl:"weight_limit,optional"`
	WeightRatePerKg  float64   `hcl:"weight_rate_per_kg,optional"`
	Bands            []hclBand `hcl:"band,block"`
}

type hclBand struct {
	DistMin float64            `hcl:"dist_min"`
	DistMax float64            `hcl:"dist_max"`
	Rates   map[string]float64 `hcl:"rates"`
}

// LoadHCL reads carrier definitions from an HCL file.
func LoadHCL(path string) ([]*types.CarrierConfig, error) {
	var file hclFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Parsing("decode carrier definitions", err)
	}

	configs := make([]*types.CarrierConfig, 0, len(file.Carriers))
	for _, carrier := range file.Carriers {
		cfg, err := carrier.convert()
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (c hclCarrier) convert() (*types.CarrierConfig, error) {
	routing, err := c.Routing.convert(c.Name)
	if err != nil {
		return nil, err
	}

	cfg := &types.CarrierConfig{
		CarrierName:       c.Name,
		MinWeight:         c.MinWeight,
		MaxWeight:         c.MaxWeight,
		MinFreight:        c.MinFreight,
		VolumetricDivisor: c.VolumetricDivisor,
		Routing:           routing,
	}

	if f := c.FixedFees; f != nil {
		cfg.FixedFees = types.FixedFees{
			DocketFee:           f.DocketFee,
			AWBFee:              f.AWBFee,
			EwayBillFee:         f.EwayBillFee,
			AppointmentDelivery: f.AppointmentDelivery,
			CODFixed:            f.CODFixed,
		}
	}

	if v := c.VariableFees; v != nil {
		cfg.VariableFees = types.VariableFees{
			HamaliPerKg:       v.HamaliPerKg,
			MinHamali:         v.MinHamali,
			FOVInsuredPercent: v.FOVInsuredPercent,
			FOVMin:            v.FOVMin,
			CODPercent:        v.CODPercent,
		}
		if v.OwnersRisk != nil {
			cfg.VariableFees.OwnersRisk = &types.MinPercent{Percent: v.OwnersRisk.Percent, MinAmount: v.OwnersRisk.MinAmount}
		}
		if v.DOD != nil {
			cfg.VariableFees.DOD = &types.MinPercent{Percent: v.DOD.Percent, MinAmount: v.DOD.MinAmount}
		}
		if v.FOD != nil {
			cfg.VariableFees.FOD = &types.SlabCharge{SlabWeight: v.FOD.SlabWeight, LTECharge: v.FOD.LTECharge, GTCharge: v.FOD.GTCharge}
		}
		for _, band := range v.ECCBands {
			cfg.VariableFees.ECC = append(cfg.VariableFees.ECC, types.ECCBand{Max: band.Max, Charge: band.Charge})
		}
	}

	if f := c.Fuel; f != nil {
		cfg.Fuel = types.FuelConfig{
			IsDynamic:       f.IsDynamic,
			BaseDieselPrice: f.BaseDieselPrice,
			DieselRatio:     f.DieselRatio,
			FlatPercent:     f.FlatPercent,
		}
	}

	if e := c.EDL; e != nil {
		cfg.EDL = &types.EDLConfig{
			SpecialRegions: types.EDLSpecialRegions{
				States:    e.SpecialStates,
				Regions:   e.SpecialRegions,
				RatePerKg: e.SpecialRatePerKg,
				MinAmount: e.SpecialMinAmount,
			},
			Overflow: types.EDLOverflow{
				DistLimit:       e.DistLimit,
				DistRatePerKm:   e.DistRatePerKm,
				WeightLimit:     e.WeightLimit,
				WeightRatePerKg: e.WeightRatePerKg,
			},
		}
		for _, band := range e.Bands {
			cfg.EDLMatrix = append(cfg.EDLMatrix, types.EDLBand{
				DistMin: band.DistMin,
				DistMax: band.DistMax,
				Rates:   band.Rates,
			})
		}
	}

	return cfg, nil
}

func (r hclRouting) convert(carrier string) (types.Routing, error) {
	switch types.Strategy(r.Strategy) {
	case types.StrategyRegionCSV:
		return types.Routing{
			Strategy: types.StrategyRegionCSV,
			RegionCSV: &types.RegionCSVRouting{
				Table:              r.Table,
				RequiredSourceCity: r.RequiredSourceCity,
				RatesPerKg:         r.RatesPerKg,
			},
		}, nil

	case types.StrategyHubCity:
		return types.Routing{
			Strategy: types.StrategyHubCity,
			HubCity: &types.HubCityRouting{
				Table:     r.Table,
				Hub:       r.Hub,
				CityRates: r.CityRates,
			},
		}, nil

	case types.StrategyZoneMatrix:
		rates := make(map[string]map[string]float64)
		for _, cell := range r.MatrixRates {
			if rates[cell.From] == nil {
				rates[cell.From] = make(map[string]float64)
			}
			rates[cell.From][cell.To] = cell.PerKg
		}
		return types.Routing{
			Strategy: types.StrategyZoneMatrix,
			Matrix: &types.ZoneMatrixRouting{
				ZoneMapping: r.ZoneMapping,
				Rates:       rates,
			},
		}, nil

	case types.StrategyStandard:
		return types.Routing{
			Strategy: types.StrategyStandard,
			Standard: &types.StandardRouting{
				ForwardRates:    r.ForwardRates,
				AdditionalRates: r.AdditionalRates,
			},
		}, nil
	}

	return types.Routing{}, errors.Newf(errors.TypeConfig,
		"carrier %s: unknown routing strategy %q", carrier, r.Strategy)
}
