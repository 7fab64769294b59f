package trading

import (
	"sort"

	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/pkg/utils"
)

// RouteAnalyzer ranks profitable buy-here/sell-there routes reachable within
// a hop budget. It is a stateless domain service operating on immutable
// snapshots; it never touches live market state.
type RouteAnalyzer struct {
	transitCostPerHop int
}

// NewRouteAnalyzer creates an analyzer with the given per-hop transit cost
func NewRouteAnalyzer(transitCostPerHop int) *RouteAnalyzer {
	if transitCostPerHop < 0 {
		transitCostPerHop = 0
	}
	return &RouteAnalyzer{transitCostPerHop: transitCostPerHop}
}

// BestRoutes computes route suggestions from the origin sector.
//
// For each commodity traded at the origin and each sector reachable within
// maxHops, profit per unit is the destination sell price minus the origin
// buy price minus hops x transit cost. Only profitable routes survive;
// tradeable units are capped by cargo capacity and the destination's demand
// headroom. Ordering: score (profit x units) descending, ties by fewer
// hops, then by commodity id for stability.
func (a *RouteAnalyzer) BestRoutes(
	originSector int,
	maxHops int,
	cargoCapacity int,
	snapshots map[int]*market.SectorSnapshot,
	neighbors map[int][]int,
) []*RouteSuggestion {
	origin, ok := snapshots[originSector]
	if !ok || maxHops < 1 || cargoCapacity < 1 {
		return nil
	}

	reachable := hopDistances(originSector, maxHops, neighbors)

	var suggestions []*RouteSuggestion
	for destID, hops := range reachable {
		dest, ok := snapshots[destID]
		if !ok {
			continue
		}

		for _, buyQuote := range origin.Quotes {
			sellQuote := dest.QuoteFor(buyQuote.CommodityID)
			if sellQuote == nil {
				continue
			}

			transit := hops * a.transitCostPerHop
			profit := sellQuote.Price - buyQuote.Price - transit
			if profit <= 0 {
				continue
			}

			units := utils.Min(cargoCapacity, sellQuote.Demand)
			if units <= 0 {
				continue
			}

			suggestion, err := NewRouteSuggestion(
				buyQuote.CommodityID,
				originSector, destID, hops,
				buyQuote.Price, sellQuote.Price, transit,
				units,
			)
			if err != nil {
				continue
			}
			suggestions = append(suggestions, suggestion)
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score() != suggestions[j].Score() {
			return suggestions[i].Score() > suggestions[j].Score()
		}
		if suggestions[i].Hops() != suggestions[j].Hops() {
			return suggestions[i].Hops() < suggestions[j].Hops()
		}
		return suggestions[i].CommodityID() < suggestions[j].CommodityID()
	})

	return suggestions
}

// hopDistances runs a bounded BFS over the sector graph and returns the
// minimum hop count to every sector reachable within maxHops, excluding the
// origin itself.
func hopDistances(origin, maxHops int, neighbors map[int][]int) map[int]int {
	distances := map[int]int{origin: 0}
	frontier := []int{origin}

	for hop := 1; hop <= maxHops && len(frontier) > 0; hop++ {
		var next []int
		for _, id := range frontier {
			for _, neighbor := range neighbors[id] {
				if _, seen := distances[neighbor]; seen {
					continue
				}
				distances[neighbor] = hop
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	delete(distances, origin)
	return distances
}
