package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/events"
)

// TriggerEventCommand activates a scripted economic event. When Modifier is
// zero the magnitude and duration are drawn from the kind's profile;
// otherwise the given values are used exactly.
type TriggerEventCommand struct {
	Kind       string
	SectorIDs  []int
	Categories []string
	Modifier   float64
	Duration   int
}

// TriggerEventResponse wraps the activated event
type TriggerEventResponse struct {
	Event *events.EconomicEvent
}

// TriggerEventHandler handles the TriggerEvent command
type TriggerEventHandler struct {
	system *services.DynamicMarketSystem
}

// NewTriggerEventHandler creates a new TriggerEventHandler
func NewTriggerEventHandler(system *services.DynamicMarketSystem) *TriggerEventHandler {
	return &TriggerEventHandler{system: system}
}

// Handle executes the TriggerEvent command
func (h *TriggerEventHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*TriggerEventCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *TriggerEventCommand")
	}

	kind, err := events.ParseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}

	if cmd.Modifier == 0 {
		event, err := h.system.TriggerEvent(ctx, kind, cmd.SectorIDs)
		if err != nil {
			return nil, err
		}
		return &TriggerEventResponse{Event: event}, nil
	}

	categories := make([]economy.Category, 0, len(cmd.Categories))
	for _, raw := range cmd.Categories {
		category, err := economy.ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	event, err := h.system.TriggerEventWith(ctx, kind, cmd.SectorIDs, categories, cmd.Modifier, cmd.Duration)
	if err != nil {
		return nil, err
	}
	return &TriggerEventResponse{Event: event}, nil
}
