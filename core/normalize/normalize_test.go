// Package normalize - normalization tests
package normalize

import (
	"testing"

	"freight-rate/core/types"
)

func testNormalizer() *Normalizer {
	aliases := AliasTable{
		Cities: map[string][]string{
			"bengaluru": {"bangalore", "banglore"},
			"mumbai":    {"bombay"},
		},
		States: map[string][]string{
			"odisha":     {"orissa"},
			"puducherry": {"pondicherry"},
		},
	}
	return New(aliases, []string{"mumbai", "delhi", "kolkata", "chennai", "bengaluru", "hyderabad"})
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Mumbai  ", "mumbai"},
		{"Daman & Diu", "daman and diu"},
		{"DELHI", "delhi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAlias(t *testing.T) {
	n := testNormalizer()

	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"Bangalore", KindCity, "bengaluru"},
		{"BOMBAY", KindCity, "mumbai"},
		{"bengaluru", KindCity, "bengaluru"},
		{"Orissa", KindState, "odisha"},
		{"Pondicherry", KindState, "puducherry"},
		// unknown names pass through cleaned
		{"Nagpur", KindCity, "nagpur"},
		{"  Goa ", KindState, "goa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.name, tt.kind); got != tt.want {
				t.Errorf("Normalize(%q, %s) = %q, want %q", tt.name, tt.kind, got, tt.want)
			}
		})
	}
}

func TestNormalizeKindsAreSeparate(t *testing.T) {
	n := testNormalizer()

	// "orissa" is a state alias; as a city it must pass through.
	if got := n.Normalize("Orissa", KindCity); got != "orissa" {
		t.Errorf("city-kind lookup resolved a state alias: %q", got)
	}
}

func TestIsMetro(t *testing.T) {
	n := testNormalizer()

	tests := []struct {
		rec  types.LocationRecord
		want bool
	}{
		{types.LocationRecord{City: "mumbai", District: "mumbai"}, true},
		// directional suffixes still count as metro
		{types.LocationRecord{City: "delhi east", District: "east delhi"}, true},
		{types.LocationRecord{City: "pune", District: "pune"}, false},
		// metro district with a non-metro office name
		{types.LocationRecord{City: "andheri", District: "mumbai suburban"}, true},
	}
	for _, tt := range tests {
		if got := n.IsMetro(tt.rec); got != tt.want {
			t.Errorf("IsMetro(%v) = %v, want %v", tt.rec, got, tt.want)
		}
	}
}
