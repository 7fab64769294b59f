package market

import (
	"math"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/pkg/utils"
)

// Entry is the mutable market record for one (sector, commodity) pair.
// It is created lazily when a sector economy is initialized and lives for as
// long as the sector does. All mutation goes through the Apply* methods so
// the non-negativity and price-bound invariants hold at every step.
type Entry struct {
	sectorID    int
	commodityID string
	basePrice   float64
	floorPrice  float64
	ceilPrice   float64
	price       float64
	supply      int
	demand      int
	volatility  float64
	trend       Trend
	priceWindow []float64 // most recent prices, oldest first, bounded
	windowCap   int
}

// NewEntry creates a market entry for a commodity in a sector. The opening
// price is exactly the commodity's base price so the first turn of trading is
// deterministic; floor and ceiling are fixed fractions of base price.
func NewEntry(
	sectorID int,
	commodity *economy.Commodity,
	initialSupply int,
	initialDemand int,
	floorFraction float64,
	ceilingFraction float64,
	trendWindow int,
) (*Entry, error) {
	if sectorID <= 0 {
		return nil, ErrInvalidSectorID
	}
	if commodity == nil {
		return nil, economy.ErrCommodityNotFound
	}
	if initialSupply < 0 {
		return nil, ErrInvalidSupply
	}
	if initialDemand < 0 {
		return nil, ErrInvalidDemand
	}
	if floorFraction <= 0 || ceilingFraction <= floorFraction {
		return nil, ErrInvalidPrice
	}
	if trendWindow < 1 {
		trendWindow = 1
	}

	base := commodity.BasePrice()
	return &Entry{
		sectorID:    sectorID,
		commodityID: commodity.ID(),
		basePrice:   base,
		floorPrice:  base * floorFraction,
		ceilPrice:   base * ceilingFraction,
		price:       base,
		supply:      initialSupply,
		demand:      initialDemand,
		volatility:  commodity.BaseVolatility(),
		trend:       TrendStable,
		priceWindow: []float64{base},
		windowCap:   trendWindow,
	}, nil
}

func (e *Entry) SectorID() int {
	return e.sectorID
}

func (e *Entry) CommodityID() string {
	return e.commodityID
}

func (e *Entry) BasePrice() float64 {
	return e.basePrice
}

func (e *Entry) FloorPrice() float64 {
	return e.floorPrice
}

func (e *Entry) CeilingPrice() float64 {
	return e.ceilPrice
}

func (e *Entry) Price() float64 {
	return e.price
}

// QuotedPrice is the integer credit price a trade executes at. It only moves
// on a turn update, so every trade within a turn sees the same quote.
func (e *Entry) QuotedPrice() int {
	return utils.Max(1, int(math.Round(e.price)))
}

func (e *Entry) Supply() int {
	return e.supply
}

func (e *Entry) Demand() int {
	return e.demand
}

func (e *Entry) Volatility() float64 {
	return e.volatility
}

func (e *Entry) Trend() Trend {
	return e.trend
}

// ReferencePrice returns the oldest price in the trend window, used as the
// comparison point for the trend calculation.
func (e *Entry) ReferencePrice() float64 {
	return e.priceWindow[0]
}

// ApplyTurnUpdate commits one turn's recomputed state. Bound violations here
// mean the price algorithm is broken, so they surface as internal errors
// rather than being silently clamped.
func (e *Entry) ApplyTurnUpdate(price float64, supply, demand int, volatility float64, trend Trend) error {
	if price < e.floorPrice-1e-9 || price > e.ceilPrice+1e-9 {
		return shared.NewInternalError(
			"price %0.2f for sector %d commodity %s outside bounds [%0.2f, %0.2f]",
			price, e.sectorID, e.commodityID, e.floorPrice, e.ceilPrice)
	}
	if supply < 0 {
		return shared.NewInternalError("negative supply %d for sector %d commodity %s", supply, e.sectorID, e.commodityID)
	}
	if demand < 0 {
		return shared.NewInternalError("negative demand %d for sector %d commodity %s", demand, e.sectorID, e.commodityID)
	}
	if volatility < 0 || volatility > 1 {
		return shared.NewInternalError("volatility %0.2f for sector %d commodity %s outside [0, 1]", volatility, e.sectorID, e.commodityID)
	}

	e.price = price
	e.supply = supply
	e.demand = demand
	e.volatility = volatility
	e.trend = trend

	e.priceWindow = append(e.priceWindow, price)
	if len(e.priceWindow) > e.windowCap {
		e.priceWindow = e.priceWindow[len(e.priceWindow)-e.windowCap:]
	}
	return nil
}

// ApplyBuy removes quantity units from supply and bumps demand. The caller
// must have validated supply coverage; discovering a shortfall here is an
// invariant violation.
func (e *Entry) ApplyBuy(quantity, demandBump int) error {
	if quantity <= 0 {
		return shared.NewInternalError("buy quantity %d must be positive", quantity)
	}
	if quantity > e.supply {
		return shared.NewInternalError(
			"buy of %d would drive supply negative (available %d) for sector %d commodity %s",
			quantity, e.supply, e.sectorID, e.commodityID)
	}
	e.supply -= quantity
	e.demand += demandBump
	return nil
}

// ApplySell adds quantity units to supply and relieves demand, flooring
// demand at zero.
func (e *Entry) ApplySell(quantity, demandDrop int) error {
	if quantity <= 0 {
		return shared.NewInternalError("sell quantity %d must be positive", quantity)
	}
	e.supply += quantity
	e.demand = utils.Max(0, e.demand-demandDrop)
	return nil
}

// Clone returns a deep copy, used to hand immutable state to the pure price
// algorithm and to build snapshots without holding locks.
func (e *Entry) Clone() *Entry {
	window := make([]float64, len(e.priceWindow))
	copy(window, e.priceWindow)
	clone := *e
	clone.priceWindow = window
	return &clone
}
