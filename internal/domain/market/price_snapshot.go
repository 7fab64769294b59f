package market

import "time"

// PriceSnapshot is a point-in-time record of one market entry, journaled
// after each turn for trend analysis. Immutable once created.
type PriceSnapshot struct {
	id          int
	turn        int
	sectorID    int
	commodityID string
	price       float64
	supply      int
	demand      int
	trend       Trend
	recordedAt  time.Time
}

// NewPriceSnapshot creates a snapshot record with validation
func NewPriceSnapshot(turn, sectorID int, commodityID string, price float64, supply, demand int, trend Trend, recordedAt time.Time) (*PriceSnapshot, error) {
	if sectorID <= 0 {
		return nil, ErrInvalidSectorID
	}
	if commodityID == "" {
		return nil, ErrInvalidPrice
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if supply < 0 {
		return nil, ErrInvalidSupply
	}
	if demand < 0 {
		return nil, ErrInvalidDemand
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	return &PriceSnapshot{
		turn:        turn,
		sectorID:    sectorID,
		commodityID: commodityID,
		price:       price,
		supply:      supply,
		demand:      demand,
		trend:       trend,
		recordedAt:  recordedAt,
	}, nil
}

// NewPriceSnapshotWithID rebuilds a snapshot loaded from the database
func NewPriceSnapshotWithID(id, turn, sectorID int, commodityID string, price float64, supply, demand int, trend Trend, recordedAt time.Time) (*PriceSnapshot, error) {
	snapshot, err := NewPriceSnapshot(turn, sectorID, commodityID, price, supply, demand, trend, recordedAt)
	if err != nil {
		return nil, err
	}
	snapshot.id = id
	return snapshot, nil
}

func (p *PriceSnapshot) ID() int             { return p.id }
func (p *PriceSnapshot) Turn() int           { return p.turn }
func (p *PriceSnapshot) SectorID() int       { return p.sectorID }
func (p *PriceSnapshot) CommodityID() string { return p.commodityID }
func (p *PriceSnapshot) Price() float64      { return p.price }
func (p *PriceSnapshot) Supply() int         { return p.supply }
func (p *PriceSnapshot) Demand() int         { return p.demand }
func (p *PriceSnapshot) Trend() Trend        { return p.trend }
func (p *PriceSnapshot) RecordedAt() time.Time {
	return p.recordedAt
}
