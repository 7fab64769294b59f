package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
)

// MarketAnalysisQuery requests the trading position of one commodity in one
// sector.
type MarketAnalysisQuery struct {
	SectorID    int
	CommodityID string
}

// MarketAnalysisResponse carries the analysis
type MarketAnalysisResponse struct {
	Analysis *services.MarketAnalysis
}

// MarketAnalysisHandler handles the MarketAnalysis query
type MarketAnalysisHandler struct {
	system *services.DynamicMarketSystem
}

// NewMarketAnalysisHandler creates a new MarketAnalysisHandler
func NewMarketAnalysisHandler(system *services.DynamicMarketSystem) *MarketAnalysisHandler {
	return &MarketAnalysisHandler{system: system}
}

// Handle executes the MarketAnalysis query
func (h *MarketAnalysisHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*MarketAnalysisQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *MarketAnalysisQuery")
	}

	analysis, err := h.system.MarketAnalysis(ctx, query.SectorID, query.CommodityID)
	if err != nil {
		return nil, err
	}
	return &MarketAnalysisResponse{Analysis: analysis}, nil
}
