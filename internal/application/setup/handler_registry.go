package setup

import (
	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	economyCommands "github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	system       *services.DynamicMarketSystem
	snapshotRepo market.PriceSnapshotRepository
	recordRepo   history.TradeRecordRepository
	metrics      common.MarketMetrics
	clock        shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required
// dependencies. Repositories may be nil when the engine runs without a
// database; metrics may be nil when no registry is wired.
func NewHandlerRegistry(
	system *services.DynamicMarketSystem,
	snapshotRepo market.PriceSnapshotRepository,
	recordRepo history.TradeRecordRepository,
	metrics common.MarketMetrics,
	clock shared.Clock,
) *HandlerRegistry {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if metrics == nil {
		metrics = common.NoopMetrics{}
	}
	return &HandlerRegistry{
		system:       system,
		snapshotRepo: snapshotRepo,
		recordRepo:   recordRepo,
		metrics:      metrics,
		clock:        clock,
	}
}

// RegisterEconomyHandlers registers all economy command and query handlers
// with the mediator.
func (r *HandlerRegistry) RegisterEconomyHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*economyCommands.InitializeSectorCommand](
		m, economyCommands.NewInitializeSectorHandler(r.system)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyCommands.AdvanceTurnCommand](
		m, economyCommands.NewAdvanceTurnHandler(r.system, r.snapshotRepo, r.metrics, r.clock)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyCommands.ExecuteTradeCommand](
		m, economyCommands.NewExecuteTradeHandler(r.system, r.recordRepo, r.metrics, r.clock)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyCommands.TriggerEventCommand](
		m, economyCommands.NewTriggerEventHandler(r.system)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*economyQueries.GetPricesQuery](
		m, economyQueries.NewGetPricesHandler(r.system)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyQueries.BestRoutesQuery](
		m, economyQueries.NewBestRoutesHandler(r.system)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyQueries.GetHistoryQuery](
		m, economyQueries.NewGetHistoryHandler(r.system)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyQueries.GetPriceHistoryQuery](
		m, economyQueries.NewGetPriceHistoryHandler(r.snapshotRepo)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyQueries.MarketAnalysisQuery](
		m, economyQueries.NewMarketAnalysisHandler(r.system)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyQueries.EconomicSummaryQuery](
		m, economyQueries.NewEconomicSummaryHandler(r.system)); err != nil {
		return err
	}

	return nil
}
