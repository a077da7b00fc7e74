// Package zone - resolver tests
package zone

import (
	"strings"
	"testing"

	"freight-rate/core/directory"
	"freight-rate/core/normalize"
	"freight-rate/core/tables"
	"freight-rate/core/types"
)

const (
	pinMumbai     = 400001
	pinDelhi      = 110001
	pinPune       = 411001
	pinChennai    = 600001
	pinGuwahati   = 781001
	pinBhiwandi   = 421302
	pinBengaluru  = 560001
	pinAurangabad = 431001 // maharashtra
	pinAurangabd2 = 824101 // bihar, same city name
	pinUnknown    = 999999
)

func testResolver() *Resolver {
	norm := normalize.New(normalize.AliasTable{
		Cities: map[string][]string{},
		States: map[string][]string{},
	}, []string{"mumbai", "delhi", "chennai", "kolkata"})

	dir := directory.New([]directory.Row{
		{Pincode: pinMumbai, Office: "Mumbai", State: "Maharashtra", District: "Mumbai"},
		{Pincode: pinDelhi, Office: "Delhi", State: "Delhi", District: "Delhi"},
		{Pincode: pinPune, Office: "Pune", State: "Maharashtra", District: "Pune"},
		{Pincode: pinChennai, Office: "Chennai", State: "Tamil Nadu", District: "Chennai"},
		{Pincode: pinGuwahati, Office: "Guwahati", State: "Assam", District: "Kamrup"},
		{Pincode: pinBhiwandi, Office: "Bhiwandi", State: "Maharashtra", District: "Thane"},
		{Pincode: pinBengaluru, Office: "Bengaluru", State: "Karnataka", District: "Bengaluru"},
		{Pincode: pinAurangabad, Office: "Aurangabad", State: "Maharashtra", District: "Aurangabad"},
		{Pincode: pinAurangabd2, Office: "Aurangabad", State: "Bihar", District: "Aurangabad"},
	}, norm)

	repo := tables.Fixture{
		"bd.csv": {
			pinDelhi:   {tables.ColRegion: "N1", tables.ColState: "DELHI"},
			pinChennai: {tables.ColRegion: "S1", tables.ColEmbargo: "Y"},
		},
		"hub.csv": {
			pinMumbai:    {tables.ColCity: "Mumbai"},
			pinBhiwandi:  {tables.ColCity: "Mumbai"},
			pinBengaluru: {tables.ColCity: "Bengaluru"},
			pinChennai:   {tables.ColCity: "Chennai"},
		},
	}

	return NewResolver(dir, norm, repo, []string{"assam", "jammu and kashmir"})
}

func standardCfg() *types.CarrierConfig {
	return &types.CarrierConfig{
		CarrierName: "Standard Carrier",
		Routing:     types.Routing{Strategy: types.StrategyStandard},
	}
}

func TestStandardPrecedence(t *testing.T) {
	r := testResolver()
	cfg := standardCfg()

	tests := []struct {
		name         string
		source, dest int
		want         string
	}{
		{"both metro", pinMumbai, pinDelhi, types.ZoneA},
		{"same state", pinMumbai, pinPune, types.ZoneB},
		{"intercity", pinPune, pinBengaluru, types.ZoneC},
		{"same city name across states", pinAurangabad, pinAurangabd2, types.ZoneD},
		{"special state dest", pinMumbai, pinGuwahati, types.ZoneF},
		{"special state source", pinGuwahati, pinMumbai, types.ZoneF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.source, tt.dest, cfg)
			if !res.Serviceable {
				t.Fatalf("unserviceable: %s", res.Description)
			}
			if res.ZoneID != tt.want {
				t.Errorf("ZoneID = %q, want %q", res.ZoneID, tt.want)
			}
		})
	}
}

func TestStandardSpecialStateBeatsMetro(t *testing.T) {
	r := testResolver()

	// With delhi in the special list, a metro pair must still land in
	// the special zone.
	r.specialStates = append(r.specialStates, "delhi")
	res := r.Resolve(pinMumbai, pinDelhi, standardCfg())
	if res.ZoneID != types.ZoneF {
		t.Errorf("ZoneID = %q, want %q (special state outranks metro)", res.ZoneID, types.ZoneF)
	}
}

func TestStandardInvalidPincode(t *testing.T) {
	r := testResolver()
	res := r.Resolve(pinMumbai, pinUnknown, standardCfg())
	if res.Serviceable {
		t.Fatal("expected unserviceable")
	}
	if res.Description != ReasonInvalidPincode {
		t.Errorf("Description = %q", res.Description)
	}
}

func TestHubCity(t *testing.T) {
	r := testResolver()
	cfg := &types.CarrierConfig{
		CarrierName: "Hub Carrier",
		Routing: types.Routing{
			Strategy: types.StrategyHubCity,
			HubCity: &types.HubCityRouting{
				Table:     "hub.csv",
				Hub:       "mumbai",
				CityRates: map[string]float64{"bengaluru": 9, "chennai": 11},
			},
		},
	}

	out := r.Resolve(pinMumbai, pinBengaluru, cfg)
	if !out.Serviceable || out.ZoneID != "bengaluru" {
		t.Fatalf("hub->city: %+v", out)
	}

	// Reverse direction resolves to the same zone id.
	back := r.Resolve(pinBengaluru, pinMumbai, cfg)
	if !back.Serviceable || back.ZoneID != out.ZoneID {
		t.Errorf("city->hub ZoneID = %q, want %q", back.ZoneID, out.ZoneID)
	}

	// Neither endpoint at the hub.
	if res := r.Resolve(pinBengaluru, pinChennai, cfg); res.Serviceable {
		t.Error("expected neither-hub route to be unserviceable")
	}

	// Both endpoints at the hub.
	if res := r.Resolve(pinMumbai, pinBhiwandi, cfg); res.Serviceable {
		t.Error("expected both-hub route to be unserviceable")
	}

	// Endpoint missing from the carrier table.
	if res := r.Resolve(pinMumbai, pinDelhi, cfg); res.Serviceable {
		t.Error("expected unknown city to be unserviceable")
	}
}

func TestMatrix(t *testing.T) {
	r := testResolver()
	cfg := &types.CarrierConfig{
		CarrierName: "Matrix Carrier",
		Routing: types.Routing{
			Strategy: types.StrategyZoneMatrix,
			Matrix: &types.ZoneMatrixRouting{
				ZoneMapping: map[string]string{
					"Maharashtra": "MH1",
					"DELHI":       "CTL",
				},
				Rates: map[string]map[string]float64{
					"MH1": {"CTL": 6.5},
				},
			},
		},
	}

	res := r.Resolve(pinMumbai, pinDelhi, cfg)
	if !res.IsMatrix() {
		t.Fatalf("expected matrix resolution, got %+v", res)
	}
	if res.OriginZone != "MH1" || res.DestZone != "CTL" {
		t.Errorf("pair = %s->%s", res.OriginZone, res.DestZone)
	}

	// Unmapped state falls back to the default zone, still serviceable.
	fallback := r.Resolve(pinMumbai, pinChennai, cfg)
	if !fallback.Serviceable {
		t.Fatal("fallback route must stay serviceable")
	}
	if fallback.ZoneID != types.ZoneD {
		t.Errorf("fallback ZoneID = %q, want %q", fallback.ZoneID, types.ZoneD)
	}

	if res := r.Resolve(pinUnknown, pinDelhi, cfg); res.Serviceable || res.Description != ReasonInvalidPincode {
		t.Errorf("invalid pincode: %+v", res)
	}
}

func TestRegionCSV(t *testing.T) {
	r := testResolver()
	cfg := &types.CarrierConfig{
		CarrierName: "Region Carrier",
		Routing: types.Routing{
			Strategy: types.StrategyRegionCSV,
			RegionCSV: &types.RegionCSVRouting{
				Table:              "bd.csv",
				RequiredSourceCity: "Bhiwandi",
				RatesPerKg:         map[string]float64{"N1": 14},
			},
		},
	}

	res := r.Resolve(pinBhiwandi, pinDelhi, cfg)
	if !res.Serviceable {
		t.Fatalf("unserviceable: %s", res.Description)
	}
	if res.ZoneID != "N1" {
		t.Errorf("ZoneID = %q, want N1", res.ZoneID)
	}

	// Pickup restricted to the required source city.
	if res := r.Resolve(pinMumbai, pinDelhi, cfg); res.Serviceable {
		t.Error("expected non-bhiwandi pickup to be rejected")
	} else if !strings.Contains(res.Description, "bhiwandi") {
		t.Errorf("Description = %q", res.Description)
	}

	// Destination under embargo.
	if res := r.Resolve(pinBhiwandi, pinChennai, cfg); res.Serviceable || res.Description != ReasonEmbargo {
		t.Errorf("embargo: %+v", res)
	}

	// Destination absent from the carrier table.
	if res := r.Resolve(pinBhiwandi, pinPune, cfg); res.Serviceable || res.Description != ReasonNotInCarrierDB {
		t.Errorf("missing dest: %+v", res)
	}
}
