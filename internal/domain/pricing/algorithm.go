package pricing

import (
	"math"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/pkg/utils"
)

// Inputs is everything one turn update needs for a single market entry.
// Entry must be a clone; Update never mutates its inputs.
type Inputs struct {
	Turn          int
	Entry         *market.Entry
	Commodity     *economy.Commodity
	Sector        *market.SectorEconomy
	EventModifier float64 // product of active event modifiers for this pair
}

// Result is the recomputed state for one market entry.
type Result struct {
	Price      float64
	Supply     int
	Demand     int
	Volatility float64
	Trend      market.Trend
}

// Update recomputes one market entry for one turn. It is a pure function:
// deterministic for identical inputs, including the noise term, which is
// seeded from (turn, sector, commodity).
//
// The candidate price is built from the supply/demand ratio, then shaped by
// sector specialization, active events, the seasonal cycle and bounded
// noise; the result is blended with the current price and clamped to the
// floor/ceiling band. Supply passively regenerates with industrial capacity
// and unmet demand decays toward its baseline.
func Update(in Inputs, p Params) (Result, error) {
	if in.Entry == nil || in.Commodity == nil || in.Sector == nil {
		return Result{}, shared.NewInternalError("price update requires entry, commodity and sector")
	}
	if in.EventModifier <= 0 {
		return Result{}, shared.NewInternalError("event modifier must be positive, got %0.3f", in.EventModifier)
	}

	entry := in.Entry
	base := in.Commodity.BasePrice()

	// 1. Supply/demand pressure: scarcity pushes the target above base.
	ratio := float64(entry.Supply()) / math.Max(float64(entry.Demand()), 1)
	target := base / math.Max(ratio, 0.01)

	// 2. Sector specialization.
	if in.Sector.Specializes(in.Commodity.Category()) {
		target *= in.Sector.SpecializationModifier()
	}

	// 3. Active events, composed multiplicatively upstream.
	target *= in.EventModifier

	// 4. Seasonal cycle, bounded to ±SeasonalAmplitude.
	target *= 1.0 + seasonalTerm(in.Turn, p)

	// 5. Bounded noise scaled by volatility.
	noise := unitNoise(in.Turn, entry.SectorID(), entry.CommodityID(), p.NoiseSeed)
	target *= 1.0 + entry.Volatility()*noise*p.SeasonalAmplitude

	// 6. Damping blend against the current price.
	price := p.DampingOld*entry.Price() + (1.0-p.DampingOld)*target

	// 7. Clamp to the floor/ceiling band.
	price = utils.Clamp(price, entry.FloorPrice(), entry.CeilingPrice())

	// 8. Passive supply regeneration and demand decay.
	supply := regenerateSupply(entry.Supply(), in.Sector.IndustrialCapacity(), p)
	demand := decayDemand(entry.Demand(), p)

	// 9. Trend against the price from TrendWindow turns ago.
	trend := market.TrendFromPrices(price, entry.ReferencePrice(), p.TrendDeadBand)

	volatility := deriveVolatility(in.Commodity.BaseVolatility(), in.EventModifier)

	return Result{
		Price:      price,
		Supply:     supply,
		Demand:     demand,
		Volatility: volatility,
		Trend:      trend,
	}, nil
}

// seasonalTerm returns the bounded sinusoidal multiplier offset for a turn.
func seasonalTerm(turn int, p Params) float64 {
	if p.SeasonLength <= 0 || p.SeasonalAmplitude <= 0 {
		return 0
	}
	phase := float64(turn%p.SeasonLength) / float64(p.SeasonLength)
	return p.SeasonalAmplitude * math.Sin(2*math.Pi*phase)
}

// regenerateSupply adds the capacity-scaled regeneration, capped at the
// sector-specific maximum.
func regenerateSupply(supply int, industrialCapacity float64, p Params) int {
	regen := int(math.Round(industrialCapacity * p.RegenRate))
	maxSupply := int(math.Round(float64(p.MaxSupplyBase) * industrialCapacity))
	if maxSupply < 1 {
		maxSupply = 1
	}
	next := supply + regen
	if next > maxSupply {
		// Never regenerate past the cap, but a trade-driven overshoot is
		// left alone rather than confiscated.
		if supply >= maxSupply {
			return supply
		}
		return maxSupply
	}
	return next
}

// decayDemand closes a fraction of the gap between demand and its baseline.
func decayDemand(demand int, p Params) int {
	gap := float64(p.DemandBaseline - demand)
	next := demand + int(math.Round(gap*p.DemandDecayRate))
	return utils.Max(0, next)
}

// deriveVolatility widens volatility while disruptive events are in force.
func deriveVolatility(baseVolatility, eventModifier float64) float64 {
	v := baseVolatility * (1.0 + 0.5*math.Abs(eventModifier-1.0))
	return utils.Clamp(v, 0, 1)
}
