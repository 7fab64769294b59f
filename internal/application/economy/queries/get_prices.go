package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
)

// GetPricesQuery requests the full quote board for a sector
type GetPricesQuery struct {
	SectorID int
}

// GetPricesResponse carries the sector snapshot
type GetPricesResponse struct {
	Snapshot *market.SectorSnapshot
}

// GetPricesHandler handles the GetPrices query
type GetPricesHandler struct {
	system *services.DynamicMarketSystem
}

// NewGetPricesHandler creates a new GetPricesHandler
func NewGetPricesHandler(system *services.DynamicMarketSystem) *GetPricesHandler {
	return &GetPricesHandler{system: system}
}

// Handle executes the GetPrices query
func (h *GetPricesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPricesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPricesQuery")
	}

	snapshot, err := h.system.GetPrices(ctx, query.SectorID)
	if err != nil {
		return nil, err
	}
	return &GetPricesResponse{Snapshot: snapshot}, nil
}
