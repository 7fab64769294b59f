package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
)

func newTestEntry(t *testing.T) *market.Entry {
	t.Helper()
	catalog := economy.DefaultCatalog()
	food, err := catalog.Get("FOOD")
	require.NoError(t, err)

	entry, err := market.NewEntry(1, food, 100, 40, 0.1, 5.0, 5)
	require.NoError(t, err)
	return entry
}

func TestNewEntry_OpensAtBasePrice(t *testing.T) {
	entry := newTestEntry(t)

	assert.Equal(t, 50.0, entry.Price())
	assert.Equal(t, 50, entry.QuotedPrice())
	assert.Equal(t, 5.0, entry.FloorPrice())
	assert.Equal(t, 250.0, entry.CeilingPrice())
	assert.Equal(t, market.TrendStable, entry.Trend())
}

func TestEntry_ApplyBuy(t *testing.T) {
	entry := newTestEntry(t)

	err := entry.ApplyBuy(10, 2)

	require.NoError(t, err)
	assert.Equal(t, 90, entry.Supply())
	assert.Equal(t, 42, entry.Demand())
}

func TestEntry_ApplyBuy_RejectsOverdraw(t *testing.T) {
	entry := newTestEntry(t)

	err := entry.ApplyBuy(101, 25)

	assert.Error(t, err)
	assert.Equal(t, 100, entry.Supply(), "failed buy must not mutate supply")
}

func TestEntry_ApplySell_FloorsDemandAtZero(t *testing.T) {
	entry := newTestEntry(t)

	err := entry.ApplySell(10, 100)

	require.NoError(t, err)
	assert.Equal(t, 110, entry.Supply())
	assert.Equal(t, 0, entry.Demand())
}

func TestEntry_ApplyTurnUpdate_RejectsOutOfBandPrice(t *testing.T) {
	entry := newTestEntry(t)

	err := entry.ApplyTurnUpdate(1000.0, 100, 40, 0.2, market.TrendRising)

	assert.Error(t, err)
	assert.Equal(t, 50.0, entry.Price(), "failed update must not mutate price")
}

func TestEntry_ApplyTurnUpdate_TracksTrendWindow(t *testing.T) {
	entry := newTestEntry(t)

	prices := []float64{52, 54, 56, 58, 60, 62}
	for _, price := range prices {
		require.NoError(t, entry.ApplyTurnUpdate(price, 100, 40, 0.2, market.TrendRising))
	}

	// Window capacity is 5, so the reference is the fifth most recent price.
	assert.Equal(t, 54.0, entry.ReferencePrice())
}

func TestEntry_CloneIsIndependent(t *testing.T) {
	entry := newTestEntry(t)
	clone := entry.Clone()

	require.NoError(t, entry.ApplyBuy(10, 2))

	assert.Equal(t, 100, clone.Supply())
	assert.Equal(t, 40, clone.Demand())
}
