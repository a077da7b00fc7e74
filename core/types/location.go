// Package types contains the shared domain types for the freight rate
// engine: locations, carrier configuration, zone resolutions, and
// priced results.
package types

// LocationRecord is the normalized view of a pincode's location.
// Derived once per pincode and immutable after creation.
type LocationRecord struct {
	// City is the normalized office/city name
	City string `json:"city"`

	// State is the normalized state name
	State string `json:"state"`

	// District is the normalized district name
	District string `json:"district"`

	// OriginalCity preserves the raw source city for display
	OriginalCity string `json:"original_city"`

	// OriginalState preserves the raw source state for display
	OriginalState string `json:"original_state"`
}
