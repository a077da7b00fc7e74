// Package cards - carrier card loading tests
package cards

import (
	"os"
	"path/filepath"
	"testing"

	"freight-rate/core/types"
)

const legacyJSON = `[
  {
    "carrier_name": "Region Carrier",
    "min_weight": 10,
    "min_freight": 200,
    "required_source_city": "Bhiwandi",
    "routing_logic": {"type": "pincode_region_csv", "csv_file": "bd.csv"},
    "forward_rates": {"N1": 14, "S1": 16},
    "fixed_fees": {"docket_fee": 50},
    "fuel_config": {"flat_percent": 0.556},
    "variable_fees": {"dod_charge": {"percent": 0.005, "min_amount": 200}}
  },
  {
    "carrier_name": "Hub Carrier",
    "routing_logic": {
      "is_city_specific": true,
      "pincode_csv": "hub.csv",
      "hub_city": "mumbai",
      "city_rates": {"bengaluru": 9}
    },
    "cod_fixed": 100,
    "cod_percent": 1.5
  },
  {
    "carrier_name": "Matrix Carrier",
    "zone_mapping": {"Maharashtra": "MH1", "Delhi": "CTL"},
    "routing_logic": {"zonal_rates": {"MH1": {"CTL": 6.5}}}
  },
  {
    "carrier_name": "Standard Carrier",
    "min_weight": 5,
    "routing_logic": {"zonal_rates": {"forward": {"z_b": 300}, "additional": {"z_b": 60}}}
  },
  {
    "carrier_name": "Retired Carrier",
    "active": false,
    "routing_logic": {}
  }
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMasterCard(t *testing.T) {
	configs, err := Load(writeFile(t, "carriers.json", legacyJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(configs) != 4 {
		t.Fatalf("loaded %d carriers, want 4 (inactive skipped)", len(configs))
	}

	region, ok := Find(configs, "region carrier")
	if !ok {
		t.Fatal("Find is case-insensitive")
	}
	if region.Routing.Strategy != types.StrategyRegionCSV {
		t.Fatalf("strategy = %s", region.Routing.Strategy)
	}
	rc := region.Routing.RegionCSV
	if rc.Table != "bd.csv" || rc.RequiredSourceCity != "Bhiwandi" {
		t.Errorf("region routing = %+v", rc)
	}
	if rc.RatesPerKg["N1"] != 14 {
		t.Errorf("RatesPerKg[N1] = %g", rc.RatesPerKg["N1"])
	}
	if region.FixedFees.DocketFee != 50 || region.Fuel.FlatPercent != 0.556 {
		t.Errorf("fees = %+v fuel = %+v", region.FixedFees, region.Fuel)
	}
	if region.VariableFees.DOD == nil || region.VariableFees.DOD.MinAmount != 200 {
		t.Errorf("DOD = %+v", region.VariableFees.DOD)
	}

	hub, _ := Find(configs, "Hub Carrier")
	if hub.Routing.Strategy != types.StrategyHubCity {
		t.Fatalf("strategy = %s", hub.Routing.Strategy)
	}
	if hub.Routing.HubCity.Hub != "mumbai" || hub.Routing.HubCity.CityRates["bengaluru"] != 9 {
		t.Errorf("hub routing = %+v", hub.Routing.HubCity)
	}
	// old-format COD fields promoted
	if hub.FixedFees.CODFixed != 100 || hub.VariableFees.CODPercent != 1.5 {
		t.Errorf("COD fallback: fixed %g percent %g", hub.FixedFees.CODFixed, hub.VariableFees.CODPercent)
	}

	matrix, _ := Find(configs, "Matrix Carrier")
	if matrix.Routing.Strategy != types.StrategyZoneMatrix {
		t.Fatalf("strategy = %s", matrix.Routing.Strategy)
	}
	if matrix.Routing.Matrix.Rates["MH1"]["CTL"] != 6.5 {
		t.Errorf("matrix rates = %+v", matrix.Routing.Matrix.Rates)
	}
	if matrix.Routing.Matrix.ZoneMapping["Maharashtra"] != "MH1" {
		t.Errorf("zone mapping = %+v", matrix.Routing.Matrix.ZoneMapping)
	}

	standard, _ := Find(configs, "Standard Carrier")
	if standard.Routing.Strategy != types.StrategyStandard {
		t.Fatalf("strategy = %s", standard.Routing.Strategy)
	}
	if standard.Routing.Standard.ForwardRates["z_b"] != 300 ||
		standard.Routing.Standard.AdditionalRates["z_b"] != 60 {
		t.Errorf("standard rates = %+v", standard.Routing.Standard)
	}
}

const carrierHCL = `
carrier "Matrix Carrier" {
  min_weight = 10

  routing {
    strategy = "matrix"
    zone_mapping = {
      "Maharashtra" = "MH1"
      "Delhi"       = "CTL"
    }

    rate "MH1" "CTL" {
      per_kg = 6.5
    }
    rate "MH1" "MH1" {
      per_kg = 4
    }
  }

  fixed_fees {
    docket_fee = 50
  }

  variable_fees {
    hamali_per_kg = 2
    min_hamali    = 50

    owners_risk {
      percent    = 0.001
      min_amount = 50
    }

    ecc_band {
      max    = 100
      charge = 300
    }
    ecc_band {
      max    = 1000
      charge = 600
    }
  }

  fuel {
    is_dynamic        = true
    base_diesel_price = 90
    diesel_ratio      = 3
  }
}

carrier "Standard Carrier" {
  min_weight = 5

  routing {
    strategy      = "standard"
    forward_rates = { "z_a" = 250, "z_b" = 300 }
    additional_rates = { "z_a" = 50, "z_b" = 60 }
  }
}
`

func TestLoadHCL(t *testing.T) {
	configs, err := Load(writeFile(t, "carriers.hcl", carrierHCL))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("loaded %d carriers, want 2", len(configs))
	}

	matrix := configs[0]
	if matrix.CarrierName != "Matrix Carrier" || matrix.Routing.Strategy != types.StrategyZoneMatrix {
		t.Fatalf("first carrier = %s / %s", matrix.CarrierName, matrix.Routing.Strategy)
	}
	if matrix.Routing.Matrix.Rates["MH1"]["CTL"] != 6.5 {
		t.Errorf("matrix rates = %+v", matrix.Routing.Matrix.Rates)
	}
	if matrix.Routing.Matrix.ZoneMapping["Delhi"] != "CTL" {
		t.Errorf("zone mapping = %+v", matrix.Routing.Matrix.ZoneMapping)
	}
	if matrix.VariableFees.OwnersRisk == nil || matrix.VariableFees.OwnersRisk.MinAmount != 50 {
		t.Errorf("owners risk = %+v", matrix.VariableFees.OwnersRisk)
	}
	if len(matrix.VariableFees.ECC) != 2 || matrix.VariableFees.ECC[1].Charge != 600 {
		t.Errorf("ECC = %+v", matrix.VariableFees.ECC)
	}
	if !matrix.Fuel.IsDynamic || matrix.Fuel.DieselRatio != 3 {
		t.Errorf("fuel = %+v", matrix.Fuel)
	}

	standard := configs[1]
	if standard.Routing.Strategy != types.StrategyStandard {
		t.Fatalf("strategy = %s", standard.Routing.Strategy)
	}
	if standard.Routing.Standard.ForwardRates["z_b"] != 300 {
		t.Errorf("forward rates = %+v", standard.Routing.Standard.ForwardRates)
	}
}

func TestLoadHCLUnknownStrategy(t *testing.T) {
	bad := `
carrier "Broken" {
  routing {
    strategy = "teleport"
  }
}
`
	if _, err := Load(writeFile(t, "bad.hcl", bad)); err == nil {
		t.Error("expected error for unknown routing strategy")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load(writeFile(t, "carriers.yaml", "x")); err == nil {
		t.Error("expected error for unsupported format")
	}
}
