package persistence

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"gorm.io/gorm"
)

// GormPriceSnapshotRepository implements PriceSnapshotRepository using GORM
type GormPriceSnapshotRepository struct {
	db *gorm.DB
}

// NewGormPriceSnapshotRepository creates a new GORM price snapshot repository
func NewGormPriceSnapshotRepository(db *gorm.DB) *GormPriceSnapshotRepository {
	return &GormPriceSnapshotRepository{db: db}
}

// RecordSnapshots persists one turn's price snapshots in a single batch
func (r *GormPriceSnapshotRepository) RecordSnapshots(ctx context.Context, snapshots []*market.PriceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	models := make([]PriceSnapshotModel, 0, len(snapshots))
	for _, snapshot := range snapshots {
		models = append(models, PriceSnapshotModel{
			Turn:        snapshot.Turn(),
			SectorID:    snapshot.SectorID(),
			CommodityID: snapshot.CommodityID(),
			Price:       snapshot.Price(),
			Supply:      snapshot.Supply(),
			Demand:      snapshot.Demand(),
			Trend:       string(snapshot.Trend()),
			RecordedAt:  snapshot.RecordedAt(),
		})
	}

	result := r.db.WithContext(ctx).Create(&models)
	if result.Error != nil {
		return fmt.Errorf("failed to record price snapshots: %w", result.Error)
	}
	return nil
}

// GetSnapshots retrieves snapshots for a market, newest first
func (r *GormPriceSnapshotRepository) GetSnapshots(ctx context.Context, sectorID int, commodityID string, limit int) ([]*market.PriceSnapshot, error) {
	var models []PriceSnapshotModel
	query := r.db.WithContext(ctx).
		Where("sector_id = ? AND commodity_id = ?", sectorID, commodityID).
		Order("turn DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get price snapshots: %w", result.Error)
	}

	snapshots := make([]*market.PriceSnapshot, 0, len(models))
	for _, model := range models {
		snapshot, err := market.NewPriceSnapshotWithID(
			model.ID, model.Turn, model.SectorID, model.CommodityID,
			model.Price, model.Supply, model.Demand,
			market.Trend(model.Trend), model.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to convert model to snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}
