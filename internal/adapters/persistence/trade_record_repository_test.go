package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/adapters/persistence"
	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
	"github.com/andrescamacho/sectormarket-go/test/helpers"
)

func newRecord(t *testing.T, turn, sectorID, quantity int) *history.TradeRecord {
	t.Helper()
	record, err := history.NewTradeRecord(
		turn, sectorID, "FOOD", trading.SideBuy, quantity, 50,
		shared.MustNewAgentID("trader-1"),
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return record
}

func TestGormTradeRecordRepository_RecordAndGetRecent(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTradeRecordRepository(db)
	ctx := context.Background()

	for turn := 1; turn <= 3; turn++ {
		require.NoError(t, repo.Record(ctx, newRecord(t, turn, 1, turn*10)))
	}
	require.NoError(t, repo.Record(ctx, newRecord(t, 1, 2, 99)))

	records, err := repo.GetRecent(ctx, 1, 0)

	require.NoError(t, err)
	require.Len(t, records, 3, "other sectors must not leak in")
	assert.Equal(t, 3, records[0].Turn(), "newest first")
	assert.Equal(t, 30, records[0].Quantity())
	assert.Equal(t, trading.SideBuy, records[0].Side())
	assert.Equal(t, "trader-1", records[0].AgentID().Value())
	assert.Positive(t, records[0].ID(), "database assigns the id")
	assert.Equal(t, 1, records[2].Turn())
}

func TestGormTradeRecordRepository_GetRecentHonorsLimit(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTradeRecordRepository(db)
	ctx := context.Background()

	for turn := 1; turn <= 5; turn++ {
		require.NoError(t, repo.Record(ctx, newRecord(t, turn, 1, 10)))
	}

	records, err := repo.GetRecent(ctx, 1, 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 5, records[0].Turn())
	assert.Equal(t, 4, records[1].Turn())
}

func TestGormTradeRecordRepository_EmptySector(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTradeRecordRepository(db)

	records, err := repo.GetRecent(context.Background(), 7, 10)

	require.NoError(t, err)
	assert.Empty(t, records)
}
