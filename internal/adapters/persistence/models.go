package persistence

import (
	"time"
)

// TradeRecordModel represents the trade_records table. The in-memory ring is
// the engine's working set; this table is the durable journal behind it.
type TradeRecordModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	Turn        int       `gorm:"column:turn;not null;index:idx_trade_records_sector_turn"`
	SectorID    int       `gorm:"column:sector_id;not null;index:idx_trade_records_sector_turn"`
	CommodityID string    `gorm:"column:commodity_id;not null"`
	Side        string    `gorm:"column:side;not null"`
	Quantity    int       `gorm:"column:quantity;not null"`
	UnitPrice   int       `gorm:"column:unit_price;not null"`
	AgentID     string    `gorm:"column:agent_id;not null"`
	ExecutedAt  time.Time `gorm:"column:executed_at;not null"`
}

func (TradeRecordModel) TableName() string {
	return "trade_records"
}

// PriceSnapshotModel represents the price_snapshots table, one row per
// (turn, sector, commodity) written after each turn advance.
type PriceSnapshotModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	Turn        int       `gorm:"column:turn;not null"`
	SectorID    int       `gorm:"column:sector_id;not null;index:idx_price_snapshots_market"`
	CommodityID string    `gorm:"column:commodity_id;not null;index:idx_price_snapshots_market"`
	Price       float64   `gorm:"column:price;not null"`
	Supply      int       `gorm:"column:supply;not null"`
	Demand      int       `gorm:"column:demand;not null"`
	Trend       string    `gorm:"column:trend;not null"`
	RecordedAt  time.Time `gorm:"column:recorded_at;not null"`
}

func (PriceSnapshotModel) TableName() string {
	return "price_snapshots"
}
