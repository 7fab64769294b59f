package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/adapters/persistence"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/test/helpers"
)

func newSnapshot(t *testing.T, turn, sectorID int, commodityID string, price float64) *market.PriceSnapshot {
	t.Helper()
	snapshot, err := market.NewPriceSnapshot(
		turn, sectorID, commodityID, price, 200, 100, market.TrendStable,
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return snapshot
}

func TestGormPriceSnapshotRepository_RecordAndGet(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceSnapshotRepository(db)
	ctx := context.Background()

	batch := []*market.PriceSnapshot{
		newSnapshot(t, 1, 1, "FOOD", 50),
		newSnapshot(t, 2, 1, "FOOD", 53),
		newSnapshot(t, 1, 1, "IRON", 80),
		newSnapshot(t, 1, 2, "FOOD", 48),
	}
	require.NoError(t, repo.RecordSnapshots(ctx, batch))

	snapshots, err := repo.GetSnapshots(ctx, 1, "FOOD", 0)

	require.NoError(t, err)
	require.Len(t, snapshots, 2, "query is scoped to one market")
	assert.Equal(t, 2, snapshots[0].Turn(), "newest turn first")
	assert.Equal(t, float64(53), snapshots[0].Price())
	assert.Equal(t, market.TrendStable, snapshots[0].Trend())
	assert.Equal(t, 1, snapshots[1].Turn())
}

func TestGormPriceSnapshotRepository_HonorsLimit(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceSnapshotRepository(db)
	ctx := context.Background()

	var batch []*market.PriceSnapshot
	for turn := 1; turn <= 6; turn++ {
		batch = append(batch, newSnapshot(t, turn, 1, "FOOD", float64(50+turn)))
	}
	require.NoError(t, repo.RecordSnapshots(ctx, batch))

	snapshots, err := repo.GetSnapshots(ctx, 1, "FOOD", 3)

	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, 6, snapshots[0].Turn())
	assert.Equal(t, 4, snapshots[2].Turn())
}

func TestGormPriceSnapshotRepository_EmptyBatchIsNoop(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPriceSnapshotRepository(db)

	assert.NoError(t, repo.RecordSnapshots(context.Background(), nil))
}
