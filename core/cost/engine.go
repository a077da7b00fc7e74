// Package cost computes the fully itemized landed cost of a shipment:
// base freight by routing strategy, carrier surcharges, escalation
// margin, and tax. It is the single public entry point for
// collaborators; the zone resolver is orchestrated internally.
package cost

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"freight-rate/core/tables"
	"freight-rate/core/types"
	"freight-rate/core/zone"
)

// Settings are the process-wide pricing knobs.
type Settings struct {
	// EscalationRate is the margin applied on the subtotal (0.15 = 15%)
	EscalationRate float64 `json:"escalation_rate"`

	// GSTRate is the tax applied after escalation (0.18 = 18%)
	GSTRate float64 `json:"gst_rate"`

	// CurrentDieselPrice feeds dynamic fuel surcharges. Zero means
	// no live feed; dynamic carriers then bill at their base price,
	// which yields a zero dynamic surcharge.
	CurrentDieselPrice float64 `json:"current_diesel_price"`
}

// DefaultSettings returns the conventional 15% escalation / 18% GST.
func DefaultSettings() Settings {
	return Settings{EscalationRate: 0.15, GSTRate: 0.18}
}

// Engine prices shipments. Purely functional per call: no state is
// written beyond the memoizing table repository.
type Engine struct {
	resolver *zone.Resolver
	tables   tables.Repository
	settings Settings
}

// NewEngine creates an Engine sharing the resolver's table repository.
func NewEngine(resolver *zone.Resolver, repo tables.Repository, settings Settings) *Engine {
	return &Engine{resolver: resolver, tables: repo, settings: settings}
}

// ChargeableWeight returns the billable weight for a parcel:
// max(actual, volumetric), with volumetric = l*w*h/divisor (cm, kg).
// Zero dimensions or divisor yield the actual weight.
func ChargeableWeight(actual, length, width, height, divisor float64) float64 {
	if length <= 0 || width <= 0 || height <= 0 || divisor <= 0 {
		return actual
	}
	return math.Max(actual, length*width*height/divisor)
}

// Price computes the landed cost of one shipment with one carrier.
// Strictly ordered: zone resolution, weight ceiling, base freight,
// surcharges, subtotal, escalation, tax. All rejections return a
// structured result; the engine has no fatal path.
func (e *Engine) Price(weight float64, source, dest int, cfg *types.CarrierConfig, isCOD bool, orderValue float64) types.PricedResult {
	res := e.resolver.Resolve(source, dest, cfg)
	if !res.Serviceable {
		return types.PricedResult{
			Carrier:     cfg.CarrierName,
			Error:       res.Description,
			Serviceable: false,
		}
	}

	if cfg.MaxWeight > 0 && weight > cfg.MaxWeight {
		return types.PricedResult{
			Carrier:     cfg.CarrierName,
			Error:       fmt.Sprintf("Weight %gkg exceeds limit (%gkg)", weight, cfg.MaxWeight),
			Serviceable: false,
		}
	}

	breakdown := &types.CostBreakdown{}
	freight := e.baseFreight(weight, res, cfg, breakdown)

	// EDL applies only on region-table routes flagged as extended
	// delivery locations.
	var edl float64
	if res.Strategy == types.StrategyRegionCSV && cfg.Routing.RegionCSV != nil {
		row := e.tables.Load(cfg.Routing.RegionCSV.Table)[dest]
		edl = edlCharge(weight, row, cfg)
	}

	fees := chargeSet{
		docket: cfg.FixedFees.DocketFee,
		awb:    cfg.FixedFees.AWBFee,
		fuel:   e.fuelSurcharge(freight+edl, cfg.Fuel),
		hamali: hamaliCharge(weight, cfg.VariableFees),
		fov:    fovCharge(orderValue, cfg.VariableFees),
		risk:   riskCharge(orderValue, cfg.VariableFees.OwnersRisk),
		fod:    fodCharge(weight, cfg.VariableFees.FOD),
		ecc:    eccCharge(weight, cfg.VariableFees.ECC),
		edl:    edl,
	}
	fees.cod, fees.dod = codCharges(isCOD, orderValue, cfg)

	subtotal := freight + fees.sum()
	escalation := subtotal * e.settings.EscalationRate
	afterEscalation := subtotal + escalation
	gst := afterEscalation * e.settings.GSTRate
	total := afterEscalation + gst

	// Assembly is the only place amounts are rounded.
	breakdown.BaseFreight = types.Round2(freight)
	breakdown.DocketFee = types.Round2(fees.docket)
	breakdown.AWBFee = types.Round2(fees.awb)
	breakdown.FuelSurcharge = types.Round2(fees.fuel)
	breakdown.HamaliCharge = types.Round2(fees.hamali)
	breakdown.FOVCharge = types.Round2(fees.fov)
	breakdown.RiskCharge = types.Round2(fees.risk)
	breakdown.FODCharge = types.Round2(fees.fod)
	breakdown.ECCCharge = types.Round2(fees.ecc)
	breakdown.EDLCharge = types.Round2(fees.edl)
	breakdown.CODFee = types.Round2(fees.cod)
	breakdown.DODCharge = types.Round2(fees.dod)
	breakdown.Subtotal = types.Round2(subtotal)
	breakdown.EscalationRate = fmt.Sprintf("%g%%", e.settings.EscalationRate*100)
	breakdown.EscalationAmount = types.Round2(escalation)
	breakdown.AmountAfterEscalation = types.Round2(afterEscalation)
	breakdown.GSTRate = fmt.Sprintf("%g%%", e.settings.GSTRate*100)
	breakdown.GSTAmount = types.Round2(gst)
	breakdown.FinalTotal = types.Round2(total)

	return types.PricedResult{
		Carrier:     cfg.CarrierName,
		Zone:        res.Description,
		TotalCost:   types.Round2(total),
		Breakdown:   breakdown,
		Serviceable: true,
	}
}

// chargeSet collects the independent surcharges of step 4. They are
// summed, never compounded on each other.
type chargeSet struct {
	docket, awb, fuel, hamali, fov, risk, fod, ecc, edl, cod, dod float64
}

func (c chargeSet) sum() float64 {
	return c.docket + c.awb + c.fuel + c.hamali + c.fov + c.risk + c.fod + c.ecc + c.edl + c.cod + c.dod
}

// baseFreight computes freight per the resolved strategy and records
// the inputs on the breakdown.
func (e *Engine) baseFreight(weight float64, res types.ZoneResolution, cfg *types.CarrierConfig, b *types.CostBreakdown) float64 {
	switch res.Strategy {
	case types.StrategyHubCity, types.StrategyZoneMatrix, types.StrategyRegionCSV:
		var ratePerKg float64
		switch res.Strategy {
		case types.StrategyHubCity:
			ratePerKg = cfg.Routing.HubCity.CityRates[res.ZoneID]
		case types.StrategyZoneMatrix:
			if res.ZoneID != "" {
				// mapping fallback: the card's default row prices it
				ratePerKg = cfg.Routing.Matrix.Rates[res.ZoneID][res.ZoneID]
			} else {
				ratePerKg = cfg.Routing.Matrix.Rates[res.OriginZone][res.DestZone]
			}
		case types.StrategyRegionCSV:
			ratePerKg = cfg.Routing.RegionCSV.RatesPerKg[res.ZoneID]
		}

		charged := math.Max(weight, cfg.MinWeight)
		b.RatePerKg = ratePerKg
		b.ChargedWeight = charged
		return math.Max(charged*ratePerKg, cfg.MinFreight)

	default: // slab-based standard zonal
		slab := cfg.MinWeight
		if slab <= 0 {
			slab = 0.5
		}
		var base, extra float64
		if sr := cfg.Routing.Standard; sr != nil {
			base = sr.ForwardRates[res.ZoneID]
			extra = sr.AdditionalRates[res.ZoneID]
		}

		freight := base
		if weight > slab {
			// Partial slabs always round up: 0.1kg into a new
			// slab bills the full slab.
			units := int(math.Ceil((weight - slab) / slab))
			charge := float64(units) * extra
			freight += charge
			b.ExtraWeightUnits = units
			b.ExtraWeightCharge = charge
		}
		b.BaseSlabRate = base
		b.AdditionalRate = extra
		return freight
	}
}

// fuelSurcharge applies the carrier's fuel model on the given base
// (freight plus EDL). Dynamic carriers bill the diesel delta against
// their contract base price.
func (e *Engine) fuelSurcharge(base float64, fuel types.FuelConfig) float64 {
	if fuel.IsDynamic {
		current := e.settings.CurrentDieselPrice
		if current <= 0 {
			current = fuel.BaseDieselPrice
		}
		pct := (current - fuel.BaseDieselPrice) * fuel.DieselRatio / 100
		return base * pct
	}
	return base * fuel.FlatPercent
}

func hamaliCharge(weight float64, fees types.VariableFees) float64 {
	if fees.HamaliPerKg <= 0 {
		return 0
	}
	return math.Max(weight*fees.HamaliPerKg, fees.MinHamali)
}

func fovCharge(orderValue float64, fees types.VariableFees) float64 {
	if orderValue <= 0 {
		return 0
	}
	return math.Max(orderValue*fees.FOVInsuredPercent, fees.FOVMin)
}

func riskCharge(orderValue float64, risk *types.MinPercent) float64 {
	if risk == nil || orderValue <= 0 {
		return 0
	}
	return math.Max(orderValue*risk.Percent, risk.MinAmount)
}

func fodCharge(weight float64, fod *types.SlabCharge) float64 {
	if fod == nil {
		return 0
	}
	if weight <= fod.SlabWeight {
		return fod.LTECharge
	}
	return fod.GTCharge
}

// eccCharge picks the first band whose ceiling covers the weight.
func eccCharge(weight float64, bands []types.ECCBand) float64 {
	for _, band := range bands {
		if weight <= band.Max {
			return band.Charge
		}
	}
	return 0
}

// codCharges returns (cod, dod). A configured DOD replaces the
// standard COD fee on COD shipments. A stored COD percent above 1 is
// in percentage units and is scaled down before use.
func codCharges(isCOD bool, orderValue float64, cfg *types.CarrierConfig) (cod, dod float64) {
	if !isCOD {
		return 0, 0
	}
	if d := cfg.VariableFees.DOD; d != nil {
		return 0, math.Max(orderValue*d.Percent, d.MinAmount)
	}

	pct := cfg.VariableFees.CODPercent
	if pct > 1 {
		pct = pct / 100
	}
	return math.Max(cfg.FixedFees.CODFixed, orderValue*pct), 0
}

// edlCharge computes the extended-delivery-location surcharge for a
// region-table row. Zero when the destination is not flagged EDL or
// the carrier has no EDL configuration.
func edlCharge(weight float64, row tables.Row, cfg *types.CarrierConfig) float64 {
	if cfg.EDL == nil || row == nil || row[tables.ColEDL] != "Y" {
		return 0
	}

	// Special regions bill flat per-kg with a floor, regardless of
	// distance.
	special := cfg.EDL.SpecialRegions
	if containsFold(special.States, row[tables.ColState]) || containsFold(special.Regions, row[tables.ColRegion]) {
		return math.Max(weight*special.RatePerKg, special.MinAmount)
	}

	dist, err := strconv.ParseFloat(row[tables.ColEDLDist], 64)
	if err != nil {
		return 0
	}

	overflow := cfg.EDL.Overflow
	if dist > overflow.DistLimit || weight > overflow.WeightLimit {
		return math.Max(dist*overflow.DistRatePerKm, weight*overflow.WeightRatePerKg)
	}

	for _, band := range cfg.EDLMatrix {
		if dist >= band.DistMin && dist <= band.DistMax {
			return bandRate(weight, band)
		}
	}
	return 0
}

// bandRate picks the smallest weight slab in the band that covers the
// shipment weight.
func bandRate(weight float64, band types.EDLBand) float64 {
	bestSlab := math.MaxFloat64
	var rate float64
	for key, charge := range band.Rates {
		slab, err := strconv.ParseFloat(key, 64)
		if err != nil {
			continue
		}
		if weight <= slab && slab < bestSlab {
			bestSlab = slab
			rate = charge
		}
	}
	return rate
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
