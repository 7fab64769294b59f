package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

func snapshotWith(sectorID int, quotes ...market.Quote) *market.SectorSnapshot {
	return &market.SectorSnapshot{
		SectorID:  sectorID,
		Turn:      1,
		Condition: market.ConditionNormal,
		Quotes:    quotes,
	}
}

func TestBestRoutes_FindsProfitableRoute(t *testing.T) {
	analyzer := trading.NewRouteAnalyzer(5)
	snapshots := map[int]*market.SectorSnapshot{
		1: snapshotWith(1, market.Quote{CommodityID: "FOOD", Price: 40, Supply: 100, Demand: 50}),
		2: snapshotWith(2, market.Quote{CommodityID: "FOOD", Price: 80, Supply: 20, Demand: 60}),
	}
	neighbors := map[int][]int{1: {2}, 2: {1}}

	routes := analyzer.BestRoutes(1, 3, 40, snapshots, neighbors)

	require.Len(t, routes, 1)
	route := routes[0]
	assert.Equal(t, "FOOD", route.CommodityID())
	assert.Equal(t, 2, route.DestinationSector())
	assert.Equal(t, 1, route.Hops())
	// 80 sell - 40 buy - 5 transit = 35 per unit, 40 units of cargo.
	assert.Equal(t, 35, route.ProfitPerUnit())
	assert.Equal(t, 40, route.Units())
	assert.Equal(t, 1400, route.Score())
}

func TestBestRoutes_DropsUnprofitablePairs(t *testing.T) {
	analyzer := trading.NewRouteAnalyzer(50)
	snapshots := map[int]*market.SectorSnapshot{
		1: snapshotWith(1, market.Quote{CommodityID: "FOOD", Price: 40, Demand: 50}),
		2: snapshotWith(2, market.Quote{CommodityID: "FOOD", Price: 80, Demand: 60}),
	}
	neighbors := map[int][]int{1: {2}, 2: {1}}

	routes := analyzer.BestRoutes(1, 3, 40, snapshots, neighbors)

	assert.Empty(t, routes, "transit cost exceeds the spread")
}

func TestBestRoutes_RespectsHopBudget(t *testing.T) {
	analyzer := trading.NewRouteAnalyzer(0)
	snapshots := map[int]*market.SectorSnapshot{
		1: snapshotWith(1, market.Quote{CommodityID: "IRON", Price: 100, Demand: 50}),
		2: snapshotWith(2, market.Quote{CommodityID: "IRON", Price: 100, Demand: 50}),
		3: snapshotWith(3, market.Quote{CommodityID: "IRON", Price: 500, Demand: 50}),
	}
	// Chain: 1 - 2 - 3, so sector 3 is two hops out.
	neighbors := map[int][]int{1: {2}, 2: {1, 3}, 3: {2}}

	within := analyzer.BestRoutes(1, 2, 10, snapshots, neighbors)
	require.Len(t, within, 1)
	assert.Equal(t, 3, within[0].DestinationSector())
	assert.Equal(t, 2, within[0].Hops())

	beyond := analyzer.BestRoutes(1, 1, 10, snapshots, neighbors)
	assert.Empty(t, beyond, "sector 3 is out of reach at one hop")
}

func TestBestRoutes_CapsUnitsByDemand(t *testing.T) {
	analyzer := trading.NewRouteAnalyzer(0)
	snapshots := map[int]*market.SectorSnapshot{
		1: snapshotWith(1, market.Quote{CommodityID: "GOLD", Price: 900, Demand: 50}),
		2: snapshotWith(2, market.Quote{CommodityID: "GOLD", Price: 1200, Demand: 7}),
	}
	neighbors := map[int][]int{1: {2}}

	routes := analyzer.BestRoutes(1, 1, 100, snapshots, neighbors)

	require.Len(t, routes, 1)
	assert.Equal(t, 7, routes[0].Units(), "destination demand caps tradeable units")
}

func TestBestRoutes_OrdersByScoreThenHops(t *testing.T) {
	analyzer := trading.NewRouteAnalyzer(0)
	snapshots := map[int]*market.SectorSnapshot{
		1: snapshotWith(1,
			market.Quote{CommodityID: "FOOD", Price: 40, Demand: 50},
			market.Quote{CommodityID: "IRON", Price: 100, Demand: 50},
		),
		2: snapshotWith(2,
			market.Quote{CommodityID: "FOOD", Price: 45, Demand: 50},
			market.Quote{CommodityID: "IRON", Price: 200, Demand: 50},
		),
	}
	neighbors := map[int][]int{1: {2}}

	routes := analyzer.BestRoutes(1, 1, 10, snapshots, neighbors)

	require.Len(t, routes, 2)
	assert.Equal(t, "IRON", routes[0].CommodityID(), "bigger spread ranks first")
	assert.Equal(t, "FOOD", routes[1].CommodityID())
}

func TestBestRoutes_UnknownOrigin(t *testing.T) {
	analyzer := trading.NewRouteAnalyzer(0)

	routes := analyzer.BestRoutes(99, 3, 10, map[int]*market.SectorSnapshot{}, map[int][]int{})

	assert.Nil(t, routes)
}
