package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/events"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

type economyContext struct {
	system       *services.DynamicMarketSystem
	secondSystem *services.DynamicMarketSystem

	agentCredits int
	agentHolding int

	lastResult *trading.Result
	prevResult *trading.Result
	lastErr    error
}

func (ec *economyContext) reset() {
	ec.system = nil
	ec.secondSystem = nil
	ec.agentCredits = 0
	ec.agentHolding = 0
	ec.lastResult = nil
	ec.prevResult = nil
	ec.lastErr = nil
}

// newGalaxy builds a three sector chain (1 - 2 - 3) of generalist sectors at
// wealth 1.0 and industrial capacity 1.0, with random events disabled so
// scenarios stay deterministic.
func newGalaxy() (*services.DynamicMarketSystem, error) {
	config := services.DefaultConfig()
	config.EventProbability = 0

	system, err := services.NewDynamicMarketSystem(nil, config, &shared.MockClock{})
	if err != nil {
		return nil, err
	}

	neighbors := map[int][]int{1: {2}, 2: {1, 3}, 3: {2}}
	for id := 1; id <= 3; id++ {
		sector, err := market.NewSectorEconomy(id, 1.0, 500000, 1.0, nil, 0, neighbors[id])
		if err != nil {
			return nil, err
		}
		if err := system.InitializeSectorEconomy(context.Background(), sector, false); err != nil {
			return nil, err
		}
	}
	return system, nil
}

// Setup steps

func (ec *economyContext) aGalaxyOfChainedSectors() error {
	system, err := newGalaxy()
	if err != nil {
		return err
	}
	ec.system = system
	return nil
}

func (ec *economyContext) aSecondIdenticalGalaxy() error {
	system, err := newGalaxy()
	if err != nil {
		return err
	}
	ec.secondSystem = system
	return nil
}

func (ec *economyContext) anAgentWithCreditsAndUnits(credits, holding int) error {
	ec.agentCredits = credits
	ec.agentHolding = holding
	return nil
}

func (ec *economyContext) anEventInSector(kind string, modifier float64, duration, sectorID int) error {
	eventKind, err := events.ParseKind(kind)
	if err != nil {
		return err
	}
	food, err := ec.system.Catalog().Get("FOOD")
	if err != nil {
		return err
	}
	_, err = ec.system.TriggerEventWith(context.Background(),
		eventKind, []int{sectorID}, []economy.Category{food.Category()}, modifier, duration)
	return err
}

// Action steps

func (ec *economyContext) trade(side trading.Side, quantity int, commodityID string, sectorID int) error {
	order, err := trading.NewOrder(shared.MustNewAgentID("bdd-trader"), sectorID, commodityID, quantity, side)
	if err != nil {
		return err
	}
	ec.prevResult = ec.lastResult
	ec.lastResult, ec.lastErr = ec.system.ExecuteTrade(context.Background(), order,
		trading.AgentState{Credits: ec.agentCredits, Holding: ec.agentHolding})
	if ec.lastErr == nil {
		ec.agentCredits = ec.lastResult.NewCredits
		ec.agentHolding = ec.lastResult.NewHolding
	}
	return nil
}

func (ec *economyContext) theAgentBuys(quantity int, commodityID string, sectorID int) error {
	return ec.trade(trading.SideBuy, quantity, commodityID, sectorID)
}

func (ec *economyContext) theAgentSells(quantity int, commodityID string, sectorID int) error {
	return ec.trade(trading.SideSell, quantity, commodityID, sectorID)
}

func (ec *economyContext) theAgentBuysTwice(quantity int, commodityID string, sectorID int) error {
	ec.agentCredits = 1000000
	if err := ec.trade(trading.SideBuy, quantity, commodityID, sectorID); err != nil {
		return err
	}
	return ec.trade(trading.SideBuy, quantity, commodityID, sectorID)
}

func (ec *economyContext) turnsPass(count int) error {
	for i := 0; i < count; i++ {
		if _, err := ec.system.AdvanceTurn(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

func (ec *economyContext) turnsPassInBothGalaxies(count int) error {
	if err := ec.turnsPass(count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := ec.secondSystem.AdvanceTurn(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

// Assertion steps

func (ec *economyContext) theTradeSucceedsAtUnitPrice(price int) error {
	if ec.lastErr != nil {
		return fmt.Errorf("expected trade to succeed, got: %v", ec.lastErr)
	}
	if ec.lastResult.UnitPrice != price {
		return fmt.Errorf("expected unit price %d, got %d", price, ec.lastResult.UnitPrice)
	}
	return nil
}

func (ec *economyContext) theAgentIsLeftWith(credits, holding int) error {
	if ec.agentCredits != credits {
		return fmt.Errorf("expected %d credits, got %d", credits, ec.agentCredits)
	}
	if ec.agentHolding != holding {
		return fmt.Errorf("expected %d units held, got %d", holding, ec.agentHolding)
	}
	return nil
}

func (ec *economyContext) sectorStockIs(sectorID int, commodityID string, supply, demand int) error {
	snapshot, err := ec.system.GetPrices(context.Background(), sectorID)
	if err != nil {
		return err
	}
	quote := snapshot.QuoteFor(commodityID)
	if quote == nil {
		return fmt.Errorf("sector %d does not trade %s", sectorID, commodityID)
	}
	if quote.Supply != supply || quote.Demand != demand {
		return fmt.Errorf("expected supply %d demand %d, got supply %d demand %d",
			supply, demand, quote.Supply, quote.Demand)
	}
	return nil
}

func (ec *economyContext) theTradeFailsWith(reason string) error {
	if ec.lastErr == nil {
		return errors.New("expected the trade to fail")
	}

	var ok bool
	switch reason {
	case "insufficient funds":
		var target *trading.InsufficientFundsError
		ok = errors.As(ec.lastErr, &target)
	case "insufficient supply":
		var target *trading.InsufficientSupplyError
		ok = errors.As(ec.lastErr, &target)
	case "insufficient inventory":
		var target *trading.InsufficientInventoryError
		ok = errors.As(ec.lastErr, &target)
	case "unknown market":
		var target *trading.UnknownMarketError
		ok = errors.As(ec.lastErr, &target)
	default:
		return fmt.Errorf("unknown failure reason: %s", reason)
	}

	if !ok {
		return fmt.Errorf("expected %s error, got: %v", reason, ec.lastErr)
	}
	return nil
}

func (ec *economyContext) historyHoldsTrades(sectorID, count int) error {
	records, err := ec.system.GetHistory(context.Background(), sectorID, 0)
	if err != nil {
		return err
	}
	if len(records) != count {
		return fmt.Errorf("expected %d trades in history, got %d", count, len(records))
	}
	return nil
}

func (ec *economyContext) mostRecentTradeMoved(quantity int) error {
	records, err := ec.system.GetHistory(context.Background(), ec.lastResult.SectorID, 1)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("history is empty")
	}
	if records[0].Quantity() != quantity {
		return fmt.Errorf("expected most recent trade of %d units, got %d", quantity, records[0].Quantity())
	}
	return nil
}

func (ec *economyContext) bothTradesSamePrice() error {
	if ec.lastErr != nil {
		return fmt.Errorf("second trade failed: %v", ec.lastErr)
	}
	if ec.prevResult == nil || ec.lastResult == nil {
		return errors.New("two trades are required")
	}
	if ec.prevResult.UnitPrice != ec.lastResult.UnitPrice {
		return fmt.Errorf("prices moved within a turn: %d then %d",
			ec.prevResult.UnitPrice, ec.lastResult.UnitPrice)
	}
	return nil
}

func (ec *economyContext) commodityMoreExpensiveIn(commodityID string, expensiveSector, cheapSector int) error {
	expensive, err := ec.system.GetPrices(context.Background(), expensiveSector)
	if err != nil {
		return err
	}
	cheap, err := ec.system.GetPrices(context.Background(), cheapSector)
	if err != nil {
		return err
	}
	hit := expensive.QuoteFor(commodityID)
	calm := cheap.QuoteFor(commodityID)
	if hit == nil || calm == nil {
		return fmt.Errorf("%s is not traded in both sectors", commodityID)
	}
	if hit.Price <= calm.Price {
		return fmt.Errorf("expected %s dearer in sector %d (%d) than sector %d (%d)",
			commodityID, expensiveSector, hit.Price, cheapSector, calm.Price)
	}
	return nil
}

func (ec *economyContext) noEventsAreActive() error {
	if active := ec.system.ActiveEvents(); len(active) != 0 {
		return fmt.Errorf("expected no active events, got %d", len(active))
	}
	return nil
}

func (ec *economyContext) bothGalaxiesQuoteIdenticalPrices() error {
	for id := 1; id <= 3; id++ {
		a, err := ec.system.GetPrices(context.Background(), id)
		if err != nil {
			return err
		}
		b, err := ec.secondSystem.GetPrices(context.Background(), id)
		if err != nil {
			return err
		}
		for i := range a.Quotes {
			if a.Quotes[i] != b.Quotes[i] {
				return fmt.Errorf("sector %d %s diverged: %+v vs %+v",
					id, a.Quotes[i].CommodityID, a.Quotes[i], b.Quotes[i])
			}
		}
	}
	return nil
}

func (ec *economyContext) routeSuggested(commodityID string, origin, destination int) error {
	routes, err := ec.system.BestRoutes(context.Background(), origin, 3, 40)
	if err != nil {
		return err
	}
	for _, route := range routes {
		if route.CommodityID() == commodityID && route.DestinationSector() == destination {
			return nil
		}
	}
	return fmt.Errorf("no %s route from sector %d to sector %d among %d suggestions",
		commodityID, origin, destination, len(routes))
}

// InitializeEconomyScenario registers the trading and economy step definitions
func InitializeEconomyScenario(sc *godog.ScenarioContext) {
	ec := &economyContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	sc.Step(`^a galaxy of 3 chained sectors with default markets$`, ec.aGalaxyOfChainedSectors)
	sc.Step(`^a second identical galaxy$`, ec.aSecondIdenticalGalaxy)
	sc.Step(`^an agent with (\d+) credits and (\d+) units held$`, ec.anAgentWithCreditsAndUnits)
	sc.Step(`^a (\w+) event with modifier ([\d.]+) lasting (\d+) turns in sector (\d+)$`, ec.anEventInSector)

	sc.Step(`^the agent buys (\d+) (\w+) in sector (\d+)$`, ec.theAgentBuys)
	sc.Step(`^the agent sells (\d+) (\w+) in sector (\d+)$`, ec.theAgentSells)
	sc.Step(`^the agent buys (\d+) (\w+) in sector (\d+) twice$`, ec.theAgentBuysTwice)
	sc.Step(`^(\d+) turns? pass(?:es)?$`, ec.turnsPass)
	sc.Step(`^(\d+) turns pass in both galaxies$`, ec.turnsPassInBothGalaxies)

	sc.Step(`^the trade succeeds at unit price (\d+)$`, ec.theTradeSucceedsAtUnitPrice)
	sc.Step(`^the agent is left with (\d+) credits and (\d+) units$`, ec.theAgentIsLeftWith)
	sc.Step(`^sector (\d+) (\w+) supply is (\d+) and demand is (\d+)$`, ec.sectorStockIs)
	sc.Step(`^the trade fails with ([\w ]+)$`, ec.theTradeFailsWith)
	sc.Step(`^the sector (\d+) history holds (\d+) trades$`, ec.historyHoldsTrades)
	sc.Step(`^the most recent trade moved (\d+) units$`, ec.mostRecentTradeMoved)
	sc.Step(`^both trades execute at the same unit price$`, ec.bothTradesSamePrice)
	sc.Step(`^(\w+) in sector (\d+) is more expensive than \w+ in sector (\d+)$`, ec.commodityMoreExpensiveIn)
	sc.Step(`^no events are active$`, ec.noEventsAreActive)
	sc.Step(`^both galaxies quote identical prices$`, ec.bothGalaxiesQuoteIdenticalPrices)
	sc.Step(`^a (\w+) route from sector (\d+) to sector (\d+) is suggested$`, ec.routeSuggested)
}
