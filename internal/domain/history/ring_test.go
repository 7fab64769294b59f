package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

func recordAtTurn(t *testing.T, turn int) *history.TradeRecord {
	t.Helper()
	record, err := history.NewTradeRecord(
		turn, 1, "FOOD", trading.SideBuy, 5, 50,
		shared.MustNewAgentID("tester"), time.Now())
	require.NoError(t, err)
	return record
}

func TestRing_ReturnsNewestFirst(t *testing.T) {
	ring := history.NewRing(10)

	for turn := 1; turn <= 3; turn++ {
		ring.Append(recordAtTurn(t, turn))
	}

	recent := ring.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, 3, recent[0].Turn())
	assert.Equal(t, 2, recent[1].Turn())
	assert.Equal(t, 1, recent[2].Turn())
}

func TestRing_EvictsOldestWhenFull(t *testing.T) {
	ring := history.NewRing(3)

	for turn := 1; turn <= 5; turn++ {
		ring.Append(recordAtTurn(t, turn))
	}

	assert.Equal(t, 3, ring.Len())
	recent := ring.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, 5, recent[0].Turn())
	assert.Equal(t, 4, recent[1].Turn())
	assert.Equal(t, 3, recent[2].Turn(), "turns 1 and 2 were evicted")
}

func TestRing_LimitTruncates(t *testing.T) {
	ring := history.NewRing(10)
	for turn := 1; turn <= 6; turn++ {
		ring.Append(recordAtTurn(t, turn))
	}

	recent := ring.Recent(2)

	require.Len(t, recent, 2)
	assert.Equal(t, 6, recent[0].Turn())
	assert.Equal(t, 5, recent[1].Turn())
}

func TestRing_InvalidCapacityFallsBackToDefault(t *testing.T) {
	ring := history.NewRing(0)

	assert.Equal(t, history.DefaultCapacity, ring.Capacity())
}

func TestNewTradeRecord_Validation(t *testing.T) {
	_, err := history.NewTradeRecord(1, 0, "FOOD", trading.SideBuy, 5, 50, shared.MustNewAgentID("a"), time.Now())
	assert.Error(t, err, "sector id must be positive")

	_, err = history.NewTradeRecord(1, 1, "FOOD", trading.SideBuy, 0, 50, shared.MustNewAgentID("a"), time.Now())
	assert.Error(t, err, "quantity must be positive")

	_, err = history.NewTradeRecord(1, 1, "FOOD", "SHORT", 5, 50, shared.MustNewAgentID("a"), time.Now())
	assert.Error(t, err, "side must be BUY or SELL")
}
