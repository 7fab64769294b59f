package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
)

// GetHistoryQuery requests recent trades in a sector, newest first
type GetHistoryQuery struct {
	SectorID int
	Limit    int
}

// GetHistoryResponse carries the trade records
type GetHistoryResponse struct {
	Records []*history.TradeRecord
}

// GetHistoryHandler handles the GetHistory query
type GetHistoryHandler struct {
	system *services.DynamicMarketSystem
}

// NewGetHistoryHandler creates a new GetHistoryHandler
func NewGetHistoryHandler(system *services.DynamicMarketSystem) *GetHistoryHandler {
	return &GetHistoryHandler{system: system}
}

// Handle executes the GetHistory query
func (h *GetHistoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetHistoryQuery")
	}

	records, err := h.system.GetHistory(ctx, query.SectorID, query.Limit)
	if err != nil {
		return nil, err
	}
	return &GetHistoryResponse{Records: records}, nil
}
