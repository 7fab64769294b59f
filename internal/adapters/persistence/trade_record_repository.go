package persistence

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
	"gorm.io/gorm"
)

// GormTradeRecordRepository implements TradeRecordRepository using GORM
type GormTradeRecordRepository struct {
	db *gorm.DB
}

// NewGormTradeRecordRepository creates a new GORM trade record repository
func NewGormTradeRecordRepository(db *gorm.DB) *GormTradeRecordRepository {
	return &GormTradeRecordRepository{db: db}
}

// Record persists one executed trade
func (r *GormTradeRecordRepository) Record(ctx context.Context, record *history.TradeRecord) error {
	model := &TradeRecordModel{
		Turn:        record.Turn(),
		SectorID:    record.SectorID(),
		CommodityID: record.CommodityID(),
		Side:        record.Side().String(),
		Quantity:    record.Quantity(),
		UnitPrice:   record.UnitPrice(),
		AgentID:     record.AgentID().Value(),
		ExecutedAt:  record.ExecutedAt(),
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to record trade: %w", result.Error)
	}
	return nil
}

// GetRecent retrieves the most recent trades for a sector, newest first
func (r *GormTradeRecordRepository) GetRecent(ctx context.Context, sectorID, limit int) ([]*history.TradeRecord, error) {
	var models []TradeRecordModel
	query := r.db.WithContext(ctx).
		Where("sector_id = ?", sectorID).
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get trade records: %w", result.Error)
	}

	records := make([]*history.TradeRecord, 0, len(models))
	for _, model := range models {
		record, err := r.modelToRecord(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert model to record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *GormTradeRecordRepository) modelToRecord(model *TradeRecordModel) (*history.TradeRecord, error) {
	side, err := trading.ParseSide(model.Side)
	if err != nil {
		return nil, err
	}
	agentID, err := shared.NewAgentID(model.AgentID)
	if err != nil {
		return nil, err
	}
	return history.NewTradeRecordWithID(
		model.ID, model.Turn, model.SectorID, model.CommodityID,
		side, model.Quantity, model.UnitPrice, agentID, model.ExecutedAt)
}
