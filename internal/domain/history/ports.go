package history

import "context"

// TradeRecordRepository defines persistence for executed trades. The in-
// memory ring is authoritative for the engine's own queries; the repository
// is a durable journal written behind it.
type TradeRecordRepository interface {
	// Record persists one executed trade
	Record(ctx context.Context, record *TradeRecord) error

	// GetRecent retrieves the most recent trades for a sector, newest first
	GetRecent(ctx context.Context, sectorID, limit int) ([]*TradeRecord, error)
}
