// Package zone resolves a source/destination pincode pair to a
// carrier pricing zone. Four strategies exist; the carrier's routing
// configuration selects exactly one.
package zone

import (
	"fmt"
	"strings"

	"freight-rate/core/directory"
	"freight-rate/core/normalize"
	"freight-rate/core/tables"
	"freight-rate/core/types"
)

// Rejection reasons shared with collaborators.
const (
	ReasonInvalidPincode = "Invalid Pincode"
	ReasonNotInCarrierDB = "Pincode Not Found in Carrier DB"
	ReasonEmbargo        = "Embargo (Not Servicable)"
	ReasonCitiesUnknown  = "Cities not identified in service list"
)

// Resolver resolves zones against the location directory, the name
// normalizer, and carrier region tables.
type Resolver struct {
	dir           *directory.Directory
	norm          *normalize.Normalizer
	tables        tables.Repository
	specialStates []string
}

// NewResolver creates a Resolver. specialStates is the north-east /
// J&K category list for the standard strategy (normalized state
// names).
func NewResolver(dir *directory.Directory, norm *normalize.Normalizer, repo tables.Repository, specialStates []string) *Resolver {
	return &Resolver{
		dir:           dir,
		norm:          norm,
		tables:        repo,
		specialStates: specialStates,
	}
}

// Resolve determines the pricing zone for a route under one carrier's
// configuration. An unserviceable route carries the human-readable
// reason in Description; it is never an error.
func (r *Resolver) Resolve(source, dest int, cfg *types.CarrierConfig) types.ZoneResolution {
	switch cfg.Routing.Strategy {
	case types.StrategyRegionCSV:
		return r.resolveRegionCSV(source, dest, cfg.Routing.RegionCSV)
	case types.StrategyHubCity:
		return r.resolveHubCity(source, dest, cfg.Routing.HubCity)
	case types.StrategyZoneMatrix:
		return r.resolveMatrix(source, dest, cfg.Routing.Matrix)
	default:
		return r.resolveStandard(source, dest)
	}
}

// resolveRegionCSV looks up only the destination in the carrier's
// serviceable-pincode table. The engine re-fetches the row itself for
// EDL attributes; the resolver transports just the region code.
func (r *Resolver) resolveRegionCSV(source, dest int, rc *types.RegionCSVRouting) types.ZoneResolution {
	if rc == nil {
		return types.Unserviceable(ReasonNotInCarrierDB, types.StrategyRegionCSV)
	}

	if rc.RequiredSourceCity != "" {
		loc, ok := r.dir.Lookup(source)
		required := normalize.Clean(rc.RequiredSourceCity)
		if !ok || !(strings.Contains(loc.City, required) || strings.Contains(loc.District, required)) {
			return types.Unserviceable(
				fmt.Sprintf("Service only available from %s", required),
				types.StrategyRegionCSV)
		}
	}

	row, ok := r.tables.Load(rc.Table)[dest]
	if !ok {
		return types.Unserviceable(ReasonNotInCarrierDB, types.StrategyRegionCSV)
	}
	if row[tables.ColEmbargo] == "Y" {
		return types.Unserviceable(ReasonEmbargo, types.StrategyRegionCSV)
	}

	region := row[tables.ColRegion]
	return types.ZoneResolution{
		ZoneID:      region,
		Description: fmt.Sprintf("Region: %s", region),
		Strategy:    types.StrategyRegionCSV,
		Serviceable: true,
	}
}

// resolveHubCity requires both endpoints in the carrier's
// pincode-to-city table with exactly one side at the hub. The non-hub
// city is the zone id, which makes hub->city and city->hub resolve
// identically.
func (r *Resolver) resolveHubCity(source, dest int, hc *types.HubCityRouting) types.ZoneResolution {
	if hc == nil {
		return types.Unserviceable(ReasonCitiesUnknown, types.StrategyHubCity)
	}

	table := r.tables.Load(hc.Table)
	sourceCity := strings.ToLower(table[source][tables.ColCity])
	destCity := strings.ToLower(table[dest][tables.ColCity])

	sourceIsHub := sourceCity != "" && sourceCity == hc.Hub
	destIsHub := destCity != "" && destCity == hc.Hub

	if sourceCity == "" || destCity == "" || sourceIsHub == destIsHub {
		return types.Unserviceable(ReasonCitiesUnknown, types.StrategyHubCity)
	}

	serviceable := destCity
	if destIsHub {
		serviceable = sourceCity
	}
	return types.ZoneResolution{
		ZoneID:      serviceable,
		Description: fmt.Sprintf("City Route: %s <-> %s", sourceCity, destCity),
		Strategy:    types.StrategyHubCity,
		Serviceable: true,
	}
}

// resolveMatrix maps both endpoint states through the carrier's zone
// mapping. An endpoint whose state fails to map falls back to the
// default zone code rather than rejecting the route; rate cards carry
// a default row for exactly this case.
func (r *Resolver) resolveMatrix(source, dest int, zm *types.ZoneMatrixRouting) types.ZoneResolution {
	sLoc, sOK := r.dir.Lookup(source)
	dLoc, dOK := r.dir.Lookup(dest)
	if !sOK || !dOK {
		return types.Unserviceable(ReasonInvalidPincode, "")
	}
	if zm == nil {
		return types.Unserviceable(ReasonCitiesUnknown, types.StrategyZoneMatrix)
	}

	origin := r.mappedZone(sLoc, zm.ZoneMapping)
	target := r.mappedZone(dLoc, zm.ZoneMapping)

	if origin == "" || target == "" {
		return types.ZoneResolution{
			ZoneID:      types.ZoneD,
			Description: "Zone Mapping Failed (Defaulting)",
			Strategy:    types.StrategyZoneMatrix,
			Serviceable: true,
		}
	}

	return types.ZoneResolution{
		OriginZone:  origin,
		DestZone:    target,
		Description: fmt.Sprintf("Matrix: %s->%s", origin, target),
		Strategy:    types.StrategyZoneMatrix,
		Serviceable: true,
	}
}

// mappedZone finds the first mapping key whose normalized form equals
// the location's state. Mapping keys may be in any case or alias
// spelling.
func (r *Resolver) mappedZone(loc types.LocationRecord, mapping map[string]string) string {
	for key, code := range mapping {
		if r.norm.Normalize(key, normalize.KindState) == loc.State {
			return code
		}
	}
	return ""
}

// resolveStandard applies the fixed A-F precedence: special states,
// both-metro, same state, different city, pan-India fallback.
func (r *Resolver) resolveStandard(source, dest int) types.ZoneResolution {
	sLoc, sOK := r.dir.Lookup(source)
	dLoc, dOK := r.dir.Lookup(dest)
	if !sOK || !dOK {
		return types.Unserviceable(ReasonInvalidPincode, "")
	}

	zone := func(id, desc string) types.ZoneResolution {
		return types.ZoneResolution{
			ZoneID:      id,
			Description: desc,
			Strategy:    types.StrategyStandard,
			Serviceable: true,
		}
	}

	if r.isSpecialState(sLoc.State) || r.isSpecialState(dLoc.State) {
		return zone(types.ZoneF, "Zone F (Special/Remote)")
	}
	if r.norm.IsMetro(sLoc) && r.norm.IsMetro(dLoc) {
		return zone(types.ZoneA, "Zone A (Metropolitan)")
	}
	if sLoc.State == dLoc.State {
		return zone(types.ZoneB, "Zone B (Regional)")
	}
	if sLoc.City != dLoc.City {
		return zone(types.ZoneC, "Zone C (Intercity)")
	}
	return zone(types.ZoneD, "Zone D (Pan-India)")
}

func (r *Resolver) isSpecialState(state string) bool {
	for _, s := range r.specialStates {
		if s == state {
			return true
		}
	}
	return false
}
