package trading

import (
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
)

// Side is the direction of a trade order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide converts a string into a Side, rejecting unknown values
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	default:
		return "", fmt.Errorf("invalid trade side: %s", s)
	}
}

func (s Side) String() string {
	return string(s)
}

// Order is an ephemeral buy/sell request against one market entry. Quantity
// is deliberately not validated here: the execution engine checks it in the
// documented order (market existence first) so error precedence is stable.
type Order struct {
	agentID     shared.AgentID
	sectorID    int
	commodityID string
	quantity    int
	side        Side
}

// NewOrder creates a trade order
func NewOrder(agentID shared.AgentID, sectorID int, commodityID string, quantity int, side Side) (*Order, error) {
	if agentID.IsZero() {
		return nil, fmt.Errorf("agent id required")
	}
	if commodityID == "" {
		return nil, fmt.Errorf("commodity id required")
	}
	if side != SideBuy && side != SideSell {
		return nil, fmt.Errorf("invalid trade side: %s", side)
	}

	return &Order{
		agentID:     agentID,
		sectorID:    sectorID,
		commodityID: commodityID,
		quantity:    quantity,
		side:        side,
	}, nil
}

func (o *Order) AgentID() shared.AgentID {
	return o.agentID
}

func (o *Order) SectorID() int {
	return o.sectorID
}

func (o *Order) CommodityID() string {
	return o.commodityID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Side() Side {
	return o.side
}

func (o *Order) IsBuy() bool {
	return o.side == SideBuy
}

// AgentState is the caller-owned wallet and inventory position the engine
// validates against. The engine never stores it; deltas come back in the
// trade result for the session layer to commit.
type AgentState struct {
	Credits int
	Holding int // units of the order's commodity currently held
}
