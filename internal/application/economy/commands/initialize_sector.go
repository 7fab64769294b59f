package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
)

// InitializeSectorCommand registers a sector economy with the engine
type InitializeSectorCommand struct {
	SectorID               int
	WealthLevel            float64
	Population             int
	IndustrialCapacity     float64
	Specialization         string // empty for generalist sectors
	SpecializationModifier float64
	Neighbors              []int
	Reset                  bool
}

// InitializeSectorResponse reports the opened markets
type InitializeSectorResponse struct {
	SectorID    int
	Commodities int
}

// InitializeSectorHandler handles the InitializeSector command
type InitializeSectorHandler struct {
	system *services.DynamicMarketSystem
}

// NewInitializeSectorHandler creates a new InitializeSectorHandler
func NewInitializeSectorHandler(system *services.DynamicMarketSystem) *InitializeSectorHandler {
	return &InitializeSectorHandler{system: system}
}

// Handle executes the InitializeSector command
func (h *InitializeSectorHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*InitializeSectorCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *InitializeSectorCommand")
	}

	var specialization *economy.Category
	if cmd.Specialization != "" {
		category, err := economy.ParseCategory(cmd.Specialization)
		if err != nil {
			return nil, fmt.Errorf("invalid specialization: %w", err)
		}
		specialization = &category
	}

	sector, err := market.NewSectorEconomy(
		cmd.SectorID,
		cmd.WealthLevel,
		cmd.Population,
		cmd.IndustrialCapacity,
		specialization,
		cmd.SpecializationModifier,
		cmd.Neighbors,
	)
	if err != nil {
		return nil, err
	}

	if err := h.system.InitializeSectorEconomy(ctx, sector, cmd.Reset); err != nil {
		return nil, err
	}

	return &InitializeSectorResponse{
		SectorID:    cmd.SectorID,
		Commodities: h.system.Catalog().Len(),
	}, nil
}
