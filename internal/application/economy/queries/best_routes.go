package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

// BestRoutesQuery requests ranked trade routes from an origin sector.
// Limit truncates the result; zero means no truncation.
type BestRoutesQuery struct {
	OriginSector  int
	MaxHops       int
	CargoCapacity int
	Limit         int
}

// BestRoutesResponse carries the ranked suggestions
type BestRoutesResponse struct {
	Routes []*trading.RouteSuggestion
}

// BestRoutesHandler handles the BestRoutes query
type BestRoutesHandler struct {
	system *services.DynamicMarketSystem
}

// NewBestRoutesHandler creates a new BestRoutesHandler
func NewBestRoutesHandler(system *services.DynamicMarketSystem) *BestRoutesHandler {
	return &BestRoutesHandler{system: system}
}

// Handle executes the BestRoutes query
func (h *BestRoutesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*BestRoutesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BestRoutesQuery")
	}

	routes, err := h.system.BestRoutes(ctx, query.OriginSector, query.MaxHops, query.CargoCapacity)
	if err != nil {
		return nil, err
	}
	if query.Limit > 0 && len(routes) > query.Limit {
		routes = routes[:query.Limit]
	}
	return &BestRoutesResponse{Routes: routes}, nil
}
