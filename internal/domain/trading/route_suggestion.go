package trading

import (
	"errors"
	"fmt"
)

// RouteSuggestion is an immutable buy-here/sell-there recommendation. All
// derived values are computed during construction.
type RouteSuggestion struct {
	commodityID   string
	originSector  int
	destSector    int
	hops          int
	buyPrice      int
	sellPrice     int
	transitCost   int
	profitPerUnit int
	units         int // capped by cargo capacity and destination demand headroom
	score         int // profitPerUnit x units, the ranking key
}

// NewRouteSuggestion creates a route suggestion with validation.
// profitPerUnit must already be net of transit cost and positive; analyzers
// filter unprofitable pairs before constructing suggestions.
func NewRouteSuggestion(
	commodityID string,
	originSector, destSector, hops int,
	buyPrice, sellPrice, transitCost int,
	units int,
) (*RouteSuggestion, error) {
	if commodityID == "" {
		return nil, errors.New("commodity id required")
	}
	if originSector == destSector {
		return nil, errors.New("origin and destination must differ")
	}
	if hops <= 0 {
		return nil, errors.New("hops must be positive")
	}
	if buyPrice <= 0 || sellPrice <= 0 {
		return nil, errors.New("prices must be positive")
	}
	if units <= 0 {
		return nil, errors.New("units must be positive")
	}

	profit := sellPrice - buyPrice - transitCost
	if profit <= 0 {
		return nil, fmt.Errorf("route is not profitable: %d per unit", profit)
	}

	return &RouteSuggestion{
		commodityID:   commodityID,
		originSector:  originSector,
		destSector:    destSector,
		hops:          hops,
		buyPrice:      buyPrice,
		sellPrice:     sellPrice,
		transitCost:   transitCost,
		profitPerUnit: profit,
		units:         units,
		score:         profit * units,
	}, nil
}

func (r *RouteSuggestion) CommodityID() string {
	return r.commodityID
}

func (r *RouteSuggestion) OriginSector() int {
	return r.originSector
}

func (r *RouteSuggestion) DestinationSector() int {
	return r.destSector
}

func (r *RouteSuggestion) Hops() int {
	return r.hops
}

func (r *RouteSuggestion) BuyPrice() int {
	return r.buyPrice
}

func (r *RouteSuggestion) SellPrice() int {
	return r.sellPrice
}

func (r *RouteSuggestion) TransitCost() int {
	return r.transitCost
}

func (r *RouteSuggestion) ProfitPerUnit() int {
	return r.profitPerUnit
}

func (r *RouteSuggestion) Units() int {
	return r.units
}

func (r *RouteSuggestion) Score() int {
	return r.score
}
