package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/events"
)

// EconomicSummaryQuery requests the galaxy-wide aggregate view
type EconomicSummaryQuery struct{}

// EconomicSummaryResponse carries the summary and the active events
type EconomicSummaryResponse struct {
	Summary *services.EconomicSummary
	Events  []*events.EconomicEvent
}

// EconomicSummaryHandler handles the EconomicSummary query
type EconomicSummaryHandler struct {
	system *services.DynamicMarketSystem
}

// NewEconomicSummaryHandler creates a new EconomicSummaryHandler
func NewEconomicSummaryHandler(system *services.DynamicMarketSystem) *EconomicSummaryHandler {
	return &EconomicSummaryHandler{system: system}
}

// Handle executes the EconomicSummary query
func (h *EconomicSummaryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*EconomicSummaryQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *EconomicSummaryQuery")
	}

	summary, err := h.system.EconomicSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &EconomicSummaryResponse{
		Summary: summary,
		Events:  h.system.ActiveEvents(),
	}, nil
}
