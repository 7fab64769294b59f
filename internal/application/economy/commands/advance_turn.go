package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
)

// AdvanceTurnCommand moves the simulation forward. Turns defaults to 1.
type AdvanceTurnCommand struct {
	Turns int
}

// AdvanceTurnResponse carries one report per turn advanced
type AdvanceTurnResponse struct {
	Reports []*services.TurnReport
}

// AdvanceTurnHandler handles the AdvanceTurn command. Price snapshots are
// journaled through the repository after each turn commits.
type AdvanceTurnHandler struct {
	system       *services.DynamicMarketSystem
	snapshotRepo market.PriceSnapshotRepository
	metrics      common.MarketMetrics
	clock        shared.Clock
}

// NewAdvanceTurnHandler creates a new AdvanceTurnHandler
func NewAdvanceTurnHandler(
	system *services.DynamicMarketSystem,
	snapshotRepo market.PriceSnapshotRepository,
	metrics common.MarketMetrics,
	clock shared.Clock,
) *AdvanceTurnHandler {
	if metrics == nil {
		metrics = common.NoopMetrics{}
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &AdvanceTurnHandler{
		system:       system,
		snapshotRepo: snapshotRepo,
		metrics:      metrics,
		clock:        clock,
	}
}

// Handle executes the AdvanceTurn command
func (h *AdvanceTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AdvanceTurnCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AdvanceTurnCommand")
	}

	turns := cmd.Turns
	if turns < 1 {
		turns = 1
	}

	logger := common.LoggerFromContext(ctx)
	response := &AdvanceTurnResponse{Reports: make([]*services.TurnReport, 0, turns)}

	for i := 0; i < turns; i++ {
		started := h.clock.Now()
		report, err := h.system.AdvanceTurn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to advance turn: %w", err)
		}
		h.metrics.RecordTurn(h.clock.Now().Sub(started), len(h.system.ActiveEvents()))

		if h.snapshotRepo != nil {
			if err := h.snapshotRepo.RecordSnapshots(ctx, report.Snapshots); err != nil {
				// The in-memory state is authoritative; a journaling failure
				// must not roll the turn back.
				logger.Log("warn", "Failed to journal price snapshots", map[string]interface{}{
					"turn":  report.Turn,
					"error": err.Error(),
				})
			}
		}

		response.Reports = append(response.Reports, report)
	}

	return response, nil
}
