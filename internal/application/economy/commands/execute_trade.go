package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

// ExecuteTradeCommand is one buy or sell order against a sector market.
// Credits and Holding describe the agent's position before the trade.
type ExecuteTradeCommand struct {
	AgentID     string
	SectorID    int
	CommodityID string
	Quantity    int
	Side        string
	Credits     int
	Holding     int
}

// ExecuteTradeResponse wraps the executed trade
type ExecuteTradeResponse struct {
	Result *trading.Result
}

// ExecuteTradeHandler handles the ExecuteTrade command. Executed trades are
// journaled through the trade record repository.
type ExecuteTradeHandler struct {
	system     *services.DynamicMarketSystem
	recordRepo history.TradeRecordRepository
	metrics    common.MarketMetrics
	clock      shared.Clock
}

// NewExecuteTradeHandler creates a new ExecuteTradeHandler
func NewExecuteTradeHandler(
	system *services.DynamicMarketSystem,
	recordRepo history.TradeRecordRepository,
	metrics common.MarketMetrics,
	clock shared.Clock,
) *ExecuteTradeHandler {
	if metrics == nil {
		metrics = common.NoopMetrics{}
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ExecuteTradeHandler{
		system:     system,
		recordRepo: recordRepo,
		metrics:    metrics,
		clock:      clock,
	}
}

// Handle executes the ExecuteTrade command
func (h *ExecuteTradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExecuteTradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExecuteTradeCommand")
	}

	agentID, err := shared.NewAgentID(cmd.AgentID)
	if err != nil {
		return nil, fmt.Errorf("invalid agent id: %w", err)
	}
	side, err := trading.ParseSide(cmd.Side)
	if err != nil {
		return nil, err
	}
	order, err := trading.NewOrder(agentID, cmd.SectorID, cmd.CommodityID, cmd.Quantity, side)
	if err != nil {
		return nil, err
	}

	result, err := h.system.ExecuteTrade(ctx, order, trading.AgentState{
		Credits: cmd.Credits,
		Holding: cmd.Holding,
	})
	if err != nil {
		h.metrics.RecordTrade(cmd.Side, "rejected", 0)
		return nil, err
	}
	h.metrics.RecordTrade(cmd.Side, "executed", result.Total)

	if h.recordRepo != nil {
		record, recordErr := history.NewTradeRecord(
			result.Turn, result.SectorID, result.CommodityID, result.Side,
			result.Quantity, result.UnitPrice, agentID, h.clock.Now())
		if recordErr == nil {
			recordErr = h.recordRepo.Record(ctx, record)
		}
		if recordErr != nil {
			// Journaling is best-effort; the trade already committed.
			common.LoggerFromContext(ctx).Log("warn", "Failed to journal trade record", map[string]interface{}{
				"sector":    result.SectorID,
				"commodity": result.CommodityID,
				"error":     recordErr.Error(),
			})
		}
	}

	return &ExecuteTradeResponse{Result: result}, nil
}
