package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
)

// GetPriceHistoryQuery requests journaled price snapshots for one market,
// newest first.
type GetPriceHistoryQuery struct {
	SectorID    int
	CommodityID string
	Limit       int
}

// GetPriceHistoryResponse carries the snapshots
type GetPriceHistoryResponse struct {
	Snapshots []*market.PriceSnapshot
}

// GetPriceHistoryHandler handles the GetPriceHistory query against the
// snapshot journal.
type GetPriceHistoryHandler struct {
	snapshotRepo market.PriceSnapshotRepository
}

// NewGetPriceHistoryHandler creates a new GetPriceHistoryHandler
func NewGetPriceHistoryHandler(snapshotRepo market.PriceSnapshotRepository) *GetPriceHistoryHandler {
	return &GetPriceHistoryHandler{snapshotRepo: snapshotRepo}
}

// Handle executes the GetPriceHistory query
func (h *GetPriceHistoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPriceHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPriceHistoryQuery")
	}
	if h.snapshotRepo == nil {
		return nil, fmt.Errorf("price history journal is not configured")
	}

	snapshots, err := h.snapshotRepo.GetSnapshots(ctx, query.SectorID, query.CommodityID, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	return &GetPriceHistoryResponse{Snapshots: snapshots}, nil
}
