// Package types - Zone resolution types
package types

// Zone codes for the standard zonal strategy.
const (
	ZoneA = "z_a" // metropolitan
	ZoneB = "z_b" // regional / intrastate
	ZoneC = "z_c" // intercity
	ZoneD = "z_d" // pan-India default
	ZoneE = "z_e"
	ZoneF = "z_f" // special / remote
)

// ZoneResolution is the outcome of resolving a source/destination
// pair under one carrier's routing strategy.
type ZoneResolution struct {
	// ZoneID is the pricing bucket key. Empty iff the route is
	// unserviceable, or when Strategy is StrategyZoneMatrix (the
	// OriginZone/DestZone pair is the identifier there).
	ZoneID string `json:"zone_id,omitempty"`

	// OriginZone is the origin zone code (matrix strategy only)
	OriginZone string `json:"origin_zone,omitempty"`

	// DestZone is the destination zone code (matrix strategy only)
	DestZone string `json:"dest_zone,omitempty"`

	// Description is human readable; carries the rejection reason
	// when the route is unserviceable
	Description string `json:"description"`

	// Strategy is the strategy that produced this resolution
	Strategy Strategy `json:"strategy,omitempty"`

	// Serviceable is false when the carrier cannot take the route
	Serviceable bool `json:"serviceable"`
}

// IsMatrix reports whether the resolution carries a zone pair.
func (z ZoneResolution) IsMatrix() bool {
	return z.Strategy == StrategyZoneMatrix && z.Serviceable
}

// Unserviceable builds a rejection with a human-readable reason.
func Unserviceable(reason string, strategy Strategy) ZoneResolution {
	return ZoneResolution{
		Description: reason,
		Strategy:    strategy,
		Serviceable: false,
	}
}
