package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/events"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

const testAgent = "trader-1"

// newTestSystem builds an engine with random events disabled and three
// sectors in a chain (1 - 2 - 3), all generalists at wealth 1.0 and
// industrial capacity 1.0 so every market opens with supply 200, demand 100
// and base prices.
func newTestSystem(t *testing.T, config services.Config) *services.DynamicMarketSystem {
	t.Helper()
	system, err := services.NewDynamicMarketSystem(nil, config, &shared.MockClock{})
	require.NoError(t, err)

	neighbors := map[int][]int{1: {2}, 2: {1, 3}, 3: {2}}
	for id := 1; id <= 3; id++ {
		sector, err := market.NewSectorEconomy(id, 1.0, 500000, 1.0, nil, 0, neighbors[id])
		require.NoError(t, err)
		require.NoError(t, system.InitializeSectorEconomy(context.Background(), sector, false))
	}
	return system
}

func quietConfig() services.Config {
	config := services.DefaultConfig()
	config.EventProbability = 0
	return config
}

func buyOrder(t *testing.T, sectorID int, commodityID string, quantity int) *trading.Order {
	t.Helper()
	order, err := trading.NewOrder(shared.MustNewAgentID(testAgent), sectorID, commodityID, quantity, trading.SideBuy)
	require.NoError(t, err)
	return order
}

func sellOrder(t *testing.T, sectorID int, commodityID string, quantity int) *trading.Order {
	t.Helper()
	order, err := trading.NewOrder(shared.MustNewAgentID(testAgent), sectorID, commodityID, quantity, trading.SideSell)
	require.NoError(t, err)
	return order
}

func TestExecuteTrade_BuyAtOpeningPrice(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	result, err := system.ExecuteTrade(context.Background(),
		buyOrder(t, 1, "FOOD", 10),
		trading.AgentState{Credits: 2000, Holding: 0})

	require.NoError(t, err)
	assert.Equal(t, 50, result.UnitPrice, "FOOD opens at its base price")
	assert.Equal(t, 500, result.Total)
	assert.Equal(t, 1500, result.NewCredits)
	assert.Equal(t, 10, result.NewHolding)
	assert.Equal(t, 190, result.NewSupply)
	assert.Equal(t, 102, result.NewDemand, "a buy of 10 bumps demand by quantity/4")
}

func TestExecuteTrade_SellCreditsAndRestocks(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	result, err := system.ExecuteTrade(context.Background(),
		sellOrder(t, 1, "FOOD", 8),
		trading.AgentState{Credits: 100, Holding: 20})

	require.NoError(t, err)
	assert.Equal(t, 400, result.Total)
	assert.Equal(t, 500, result.NewCredits)
	assert.Equal(t, 12, result.NewHolding)
	assert.Equal(t, 208, result.NewSupply)
	assert.Equal(t, 98, result.NewDemand, "a sell of 8 removes quantity/4 from demand")
}

func TestExecuteTrade_PriceStableWithinTurn(t *testing.T) {
	system := newTestSystem(t, quietConfig())
	agent := trading.AgentState{Credits: 100000}

	first, err := system.ExecuteTrade(context.Background(), buyOrder(t, 1, "FOOD", 20), agent)
	require.NoError(t, err)
	second, err := system.ExecuteTrade(context.Background(), buyOrder(t, 1, "FOOD", 20), agent)
	require.NoError(t, err)

	assert.Equal(t, first.UnitPrice, second.UnitPrice, "prices only move on turn advances")
}

func TestExecuteTrade_InsufficientFunds(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.ExecuteTrade(context.Background(),
		buyOrder(t, 1, "FOOD", 10),
		trading.AgentState{Credits: 499})

	var fundsErr *trading.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, 500, fundsErr.Required)
	assert.Equal(t, 499, fundsErr.Available)

	snapshot, err := system.GetPrices(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 200, snapshot.QuoteFor("FOOD").Supply, "rejected trade must not touch the market")
	assert.Equal(t, 100, snapshot.QuoteFor("FOOD").Demand)
}

func TestExecuteTrade_InsufficientSupply(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.ExecuteTrade(context.Background(),
		buyOrder(t, 1, "FOOD", 201),
		trading.AgentState{Credits: 1000000})

	var supplyErr *trading.InsufficientSupplyError
	require.ErrorAs(t, err, &supplyErr)
	assert.Equal(t, 201, supplyErr.Requested)
	assert.Equal(t, 200, supplyErr.Available)
}

func TestExecuteTrade_InsufficientInventory(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.ExecuteTrade(context.Background(),
		sellOrder(t, 1, "FOOD", 5),
		trading.AgentState{Credits: 100, Holding: 4})

	var invErr *trading.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 5, invErr.Requested)
	assert.Equal(t, 4, invErr.Held)
}

func TestExecuteTrade_UnknownMarketBeforeQuantityCheck(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	// Unknown sector wins even when the quantity is also bad.
	_, err := system.ExecuteTrade(context.Background(),
		buyOrder(t, 99, "FOOD", 0),
		trading.AgentState{Credits: 1000})
	var marketErr *trading.UnknownMarketError
	require.ErrorAs(t, err, &marketErr)

	// Known market, bad quantity.
	_, err = system.ExecuteTrade(context.Background(),
		buyOrder(t, 1, "FOOD", 0),
		trading.AgentState{Credits: 1000})
	var qtyErr *trading.InvalidQuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.Equal(t, 0, qtyErr.Quantity)
}

func TestExecuteTrade_UnknownCommodity(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.ExecuteTrade(context.Background(),
		buyOrder(t, 1, "UNOBTAINIUM", 1),
		trading.AgentState{Credits: 1000})

	var marketErr *trading.UnknownMarketError
	require.ErrorAs(t, err, &marketErr)
	assert.Equal(t, "UNOBTAINIUM", marketErr.CommodityID)
}

func TestExecuteTrade_ConcurrentBuysNeverOversell(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	const workers = 20
	const perOrder = 15 // 20 x 15 = 300 demanded against 200 in stock

	var wg sync.WaitGroup
	results := make([]*trading.Result, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			result, err := system.ExecuteTrade(context.Background(),
				buyOrder(t, 2, "FOOD", perOrder),
				trading.AgentState{Credits: 1000000})
			if err == nil {
				results[slot] = result
			}
		}(i)
	}
	wg.Wait()

	sold := 0
	for _, result := range results {
		if result != nil {
			sold += result.Quantity
		}
	}

	snapshot, err := system.GetPrices(context.Background(), 2)
	require.NoError(t, err)
	remaining := snapshot.QuoteFor("FOOD").Supply

	assert.GreaterOrEqual(t, remaining, 0, "supply must never go negative")
	assert.Equal(t, 200, sold+remaining, "every unit sold must come out of stock exactly once")
}

func TestInitializeSectorEconomy_DuplicateAndReset(t *testing.T) {
	system := newTestSystem(t, quietConfig())
	ctx := context.Background()

	sector, err := market.NewSectorEconomy(1, 1.0, 500000, 1.0, nil, 0, []int{2})
	require.NoError(t, err)

	err = system.InitializeSectorEconomy(ctx, sector, false)
	var dupErr *trading.DuplicateInitializationError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, 1, dupErr.SectorID)

	// Trade, then reset: the market must reopen at pristine stock levels.
	_, err = system.ExecuteTrade(ctx, buyOrder(t, 1, "FOOD", 50), trading.AgentState{Credits: 100000})
	require.NoError(t, err)

	require.NoError(t, system.InitializeSectorEconomy(ctx, sector, true))

	snapshot, err := system.GetPrices(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 200, snapshot.QuoteFor("FOOD").Supply)

	records, err := system.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, records, "reset discards trade history")
}

func TestAdvanceTurn_IsDeterministic(t *testing.T) {
	first := newTestSystem(t, services.DefaultConfig())
	second := newTestSystem(t, services.DefaultConfig())
	ctx := context.Background()

	for turn := 0; turn < 20; turn++ {
		_, err := first.AdvanceTurn(ctx)
		require.NoError(t, err)
		_, err = second.AdvanceTurn(ctx)
		require.NoError(t, err)
	}

	for id := 1; id <= 3; id++ {
		a, err := first.GetPrices(ctx, id)
		require.NoError(t, err)
		b, err := second.GetPrices(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, a.Quotes, b.Quotes, "same seed and turn count must reproduce sector %d exactly", id)
	}
}

func TestAdvanceTurn_ReportsEverySector(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	report, err := system.AdvanceTurn(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Turn)
	assert.Len(t, report.Conditions, 3)
	assert.Len(t, report.Snapshots, 3*system.Catalog().Len())
	assert.Nil(t, report.SpawnedEvent, "events are disabled in this fixture")
}

func TestTriggerEventWith_RaisesTargetPrices(t *testing.T) {
	disturbed := newTestSystem(t, quietConfig())
	baseline := newTestSystem(t, quietConfig())
	ctx := context.Background()

	food, err := disturbed.Catalog().Get("FOOD")
	require.NoError(t, err)
	category := food.Category()

	_, err = disturbed.TriggerEventWith(ctx, events.KindShortage, []int{1}, []economy.Category{category}, 1.8, 5)
	require.NoError(t, err)

	_, err = disturbed.AdvanceTurn(ctx)
	require.NoError(t, err)
	_, err = baseline.AdvanceTurn(ctx)
	require.NoError(t, err)

	hit, err := disturbed.GetPrices(ctx, 1)
	require.NoError(t, err)
	calm, err := baseline.GetPrices(ctx, 1)
	require.NoError(t, err)

	assert.Greater(t, hit.QuoteFor("FOOD").Price, calm.QuoteFor("FOOD").Price)
	assert.Len(t, disturbed.ActiveEvents(), 1)
}

func TestTriggerEvent_RejectsUnknownSector(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.TriggerEvent(context.Background(), events.KindWar, []int{1, 99})

	var sectorErr *trading.UnknownSectorError
	require.ErrorAs(t, err, &sectorErr)
	assert.Equal(t, 99, sectorErr.SectorID)
}

func TestGetHistory_NewestFirstAndBounded(t *testing.T) {
	config := quietConfig()
	config.HistoryCapacity = 5
	system := newTestSystem(t, config)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := system.ExecuteTrade(ctx, buyOrder(t, 1, "FOOD", i+1), trading.AgentState{Credits: 100000})
		require.NoError(t, err)
	}

	records, err := system.GetHistory(ctx, 1, 0)
	require.NoError(t, err)

	require.Len(t, records, 5, "history is bounded by the configured capacity")
	assert.Equal(t, 8, records[0].Quantity(), "newest trade first")
	assert.Equal(t, 4, records[4].Quantity(), "oldest surviving trade last")
}

func TestGetHistory_UnknownSector(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.GetHistory(context.Background(), 42, 10)

	var sectorErr *trading.UnknownSectorError
	assert.ErrorAs(t, err, &sectorErr)
}

func TestBestRoutes_FromFacade(t *testing.T) {
	system := newTestSystem(t, quietConfig())
	ctx := context.Background()

	// Make FOOD expensive in sector 3 so a 1 -> 3 route clears the spread.
	food, err := system.Catalog().Get("FOOD")
	require.NoError(t, err)
	_, err = system.TriggerEventWith(ctx, events.KindShortage, []int{3}, []economy.Category{food.Category()}, 2.0, 10)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = system.AdvanceTurn(ctx)
		require.NoError(t, err)
	}

	routes, err := system.BestRoutes(ctx, 1, 3, 40)
	require.NoError(t, err)

	require.NotEmpty(t, routes)
	found := false
	for _, route := range routes {
		if route.CommodityID() == "FOOD" && route.DestinationSector() == 3 {
			found = true
			assert.Equal(t, 2, route.Hops())
			assert.Positive(t, route.ProfitPerUnit())
		}
	}
	assert.True(t, found, "the shortage sector should attract a FOOD route")
}

func TestBestRoutes_UnknownOriginFromFacade(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	_, err := system.BestRoutes(context.Background(), 42, 3, 10)

	var sectorErr *trading.UnknownSectorError
	assert.ErrorAs(t, err, &sectorErr)
}

func TestMarketAnalysis_HoldsAtBasePrice(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	analysis, err := system.MarketAnalysis(context.Background(), 1, "FOOD")

	require.NoError(t, err)
	assert.Equal(t, "HOLD", analysis.Recommendation)
	assert.InDelta(t, 1.0, analysis.PriceRatio, 1e-9)
	assert.InDelta(t, 2.0, analysis.SupplyDemandRatio, 1e-9)
	assert.Equal(t, market.TrendStable, analysis.Trend)
}

func TestEconomicSummary_AggregatesAllSectors(t *testing.T) {
	system := newTestSystem(t, quietConfig())

	summary, err := system.EconomicSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Turn)
	assert.Equal(t, 3, summary.Sectors)
	assert.InDelta(t, 1.0, summary.AverageWealth, 1e-9)
	assert.Equal(t, 0, summary.ActiveEvents)
	assert.Equal(t, 3*system.Catalog().Len()*200, summary.TotalSupply)
	assert.Equal(t, 3*system.Catalog().Len()*100, summary.TotalDemand)
	assert.Equal(t, 3, summary.Conditions[market.ConditionNormal])
}
