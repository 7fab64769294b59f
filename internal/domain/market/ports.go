package market

import "context"

// PriceSnapshotRepository defines persistence operations for per-turn price
// snapshots. The engine never reads these back for simulation; they feed
// analysis queries and external tooling.
type PriceSnapshotRepository interface {
	// RecordSnapshots persists a batch of snapshots taken after one turn
	RecordSnapshots(ctx context.Context, snapshots []*PriceSnapshot) error

	// GetSnapshots retrieves snapshots for a (sector, commodity) pair,
	// newest first, limited to limit entries (0 = no limit)
	GetSnapshots(ctx context.Context, sectorID int, commodityID string, limit int) ([]*PriceSnapshot, error)
}
