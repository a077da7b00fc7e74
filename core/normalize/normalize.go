// Package normalize canonicalizes city and state spellings and
// classifies metro locations. Alias and metro lists are reference
// data supplied by the host process.
package normalize

import (
	"strings"

	"freight-rate/core/types"
)

// Kind selects which alias section applies to a name.
type Kind string

const (
	// KindCity normalizes against the city alias section
	KindCity Kind = "city"

	// KindState normalizes against the state alias section
	KindState Kind = "state"
)

// AliasTable holds canonical name -> alias spellings, per kind.
type AliasTable struct {
	// Cities maps canonical city name to its alias spellings
	Cities map[string][]string `json:"cities"`

	// States maps canonical state name to its alias spellings
	States map[string][]string `json:"states"`
}

// Normalizer canonicalizes names and classifies metros.
type Normalizer struct {
	aliases AliasTable
	metros  []string
}

// New creates a Normalizer from an alias table and metro-city list.
// Metro entries are expected lowercase.
func New(aliases AliasTable, metros []string) *Normalizer {
	return &Normalizer{aliases: aliases, metros: metros}
}

// Clean lowercases, trims, and replaces "&" with "and".
func Clean(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(name), "&", "and"))
}

// Normalize canonicalizes a name via the alias table. A cleaned name
// matching a canonical key, or appearing in a key's alias list,
// resolves to the key; anything else passes through cleaned.
func (n *Normalizer) Normalize(name string, kind Kind) string {
	cleaned := Clean(name)

	section := n.aliases.Cities
	if kind == KindState {
		section = n.aliases.States
	}

	if _, ok := section[cleaned]; ok {
		return cleaned
	}
	for canonical, aliases := range section {
		for _, alias := range aliases {
			if cleaned == alias {
				return canonical
			}
		}
	}
	return cleaned
}

// IsMetro reports whether the record's city or district contains any
// metro list entry. Substring match handles directional suffixes
// ("delhi east", "mumbai west") that exact matching would miss.
func (n *Normalizer) IsMetro(rec types.LocationRecord) bool {
	for _, metro := range n.metros {
		if strings.Contains(rec.City, metro) || strings.Contains(rec.District, metro) {
			return true
		}
	}
	return false
}
