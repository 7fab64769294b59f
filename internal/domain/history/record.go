package history

import (
	"errors"
	"time"

	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

// TradeRecord is one executed trade as it entered the history log.
// Immutable once created; eviction from the ring is the only way one goes
// away.
type TradeRecord struct {
	id          int
	turn        int
	sectorID    int
	commodityID string
	side        trading.Side
	quantity    int
	unitPrice   int
	agentID     shared.AgentID
	executedAt  time.Time
}

// NewTradeRecord creates a history entry with validation
func NewTradeRecord(
	turn, sectorID int,
	commodityID string,
	side trading.Side,
	quantity, unitPrice int,
	agentID shared.AgentID,
	executedAt time.Time,
) (*TradeRecord, error) {
	if sectorID <= 0 {
		return nil, errors.New("sector id must be positive")
	}
	if commodityID == "" {
		return nil, errors.New("commodity id required")
	}
	if side != trading.SideBuy && side != trading.SideSell {
		return nil, errors.New("invalid trade side")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if unitPrice <= 0 {
		return nil, errors.New("unit price must be positive")
	}
	if agentID.IsZero() {
		return nil, errors.New("agent id required")
	}
	if executedAt.IsZero() {
		executedAt = time.Now().UTC()
	}

	return &TradeRecord{
		turn:        turn,
		sectorID:    sectorID,
		commodityID: commodityID,
		side:        side,
		quantity:    quantity,
		unitPrice:   unitPrice,
		agentID:     agentID,
		executedAt:  executedAt,
	}, nil
}

// NewTradeRecordWithID rebuilds a record loaded from the database
func NewTradeRecordWithID(
	id, turn, sectorID int,
	commodityID string,
	side trading.Side,
	quantity, unitPrice int,
	agentID shared.AgentID,
	executedAt time.Time,
) (*TradeRecord, error) {
	record, err := NewTradeRecord(turn, sectorID, commodityID, side, quantity, unitPrice, agentID, executedAt)
	if err != nil {
		return nil, err
	}
	record.id = id
	return record, nil
}

func (r *TradeRecord) ID() int                 { return r.id }
func (r *TradeRecord) Turn() int               { return r.turn }
func (r *TradeRecord) SectorID() int           { return r.sectorID }
func (r *TradeRecord) CommodityID() string     { return r.commodityID }
func (r *TradeRecord) Side() trading.Side      { return r.side }
func (r *TradeRecord) Quantity() int           { return r.quantity }
func (r *TradeRecord) UnitPrice() int          { return r.unitPrice }
func (r *TradeRecord) AgentID() shared.AgentID { return r.agentID }
func (r *TradeRecord) ExecutedAt() time.Time   { return r.executedAt }

// Total returns the credit value of the trade
func (r *TradeRecord) Total() int {
	return r.unitPrice * r.quantity
}
