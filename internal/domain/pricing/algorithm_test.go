package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/pricing"
)

func testFixture(t *testing.T) (*market.Entry, *economy.Commodity, *market.SectorEconomy) {
	t.Helper()
	catalog := economy.DefaultCatalog()
	food, err := catalog.Get("FOOD")
	require.NoError(t, err)

	params := pricing.DefaultParams()
	entry, err := market.NewEntry(1, food, 200, 100, params.FloorFraction, params.CeilingFraction, params.TrendWindow)
	require.NoError(t, err)

	sector, err := market.NewSectorEconomy(1, 1.0, 500000, 1.0, nil, 0, []int{2})
	require.NoError(t, err)

	return entry, food, sector
}

func TestUpdate_IsDeterministic(t *testing.T) {
	entry, food, sector := testFixture(t)
	params := pricing.DefaultParams()
	inputs := pricing.Inputs{Turn: 7, Entry: entry.Clone(), Commodity: food, Sector: sector, EventModifier: 1.0}

	first, err := pricing.Update(inputs, params)
	require.NoError(t, err)
	second, err := pricing.Update(inputs, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdate_KeepsPriceWithinBounds(t *testing.T) {
	entry, food, sector := testFixture(t)
	params := pricing.DefaultParams()

	for turn := 1; turn <= 200; turn++ {
		result, err := pricing.Update(pricing.Inputs{
			Turn: turn, Entry: entry.Clone(), Commodity: food, Sector: sector, EventModifier: 1.0,
		}, params)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Price, entry.FloorPrice())
		assert.LessOrEqual(t, result.Price, entry.CeilingPrice())
		assert.GreaterOrEqual(t, result.Supply, 0)
		assert.GreaterOrEqual(t, result.Demand, 0)
		assert.GreaterOrEqual(t, result.Volatility, 0.0)
		assert.LessOrEqual(t, result.Volatility, 1.0)

		require.NoError(t, entry.ApplyTurnUpdate(result.Price, result.Supply, result.Demand, result.Volatility, result.Trend))
	}
}

func TestUpdate_EventModifierRaisesPrice(t *testing.T) {
	entry, food, sector := testFixture(t)
	params := pricing.DefaultParams()

	baseline, err := pricing.Update(pricing.Inputs{
		Turn: 3, Entry: entry.Clone(), Commodity: food, Sector: sector, EventModifier: 1.0,
	}, params)
	require.NoError(t, err)

	disturbed, err := pricing.Update(pricing.Inputs{
		Turn: 3, Entry: entry.Clone(), Commodity: food, Sector: sector, EventModifier: 1.5,
	}, params)
	require.NoError(t, err)

	assert.Greater(t, disturbed.Price, baseline.Price)
	assert.Greater(t, disturbed.Volatility, baseline.Volatility)
}

func TestUpdate_SpecializationRaisesPrice(t *testing.T) {
	entry, food, _ := testFixture(t)
	params := pricing.DefaultParams()

	foodCategory := economy.CategoryFood
	specialist, err := market.NewSectorEconomy(1, 1.0, 500000, 1.0, &foodCategory, 1.5, nil)
	require.NoError(t, err)
	generalist, err := market.NewSectorEconomy(1, 1.0, 500000, 1.0, nil, 0, nil)
	require.NoError(t, err)

	plain, err := pricing.Update(pricing.Inputs{
		Turn: 3, Entry: entry.Clone(), Commodity: food, Sector: generalist, EventModifier: 1.0,
	}, params)
	require.NoError(t, err)

	boosted, err := pricing.Update(pricing.Inputs{
		Turn: 3, Entry: entry.Clone(), Commodity: food, Sector: specialist, EventModifier: 1.0,
	}, params)
	require.NoError(t, err)

	assert.Greater(t, boosted.Price, plain.Price)
}

func TestUpdate_DampingLimitsMovement(t *testing.T) {
	entry, food, sector := testFixture(t)
	params := pricing.DefaultParams()

	// A violent event cannot move the blended price past the share the
	// target is allowed to contribute.
	result, err := pricing.Update(pricing.Inputs{
		Turn: 3, Entry: entry.Clone(), Commodity: food, Sector: sector, EventModifier: 2.0,
	}, params)
	require.NoError(t, err)

	maxJump := params.DampingOld*entry.Price() + (1-params.DampingOld)*entry.CeilingPrice()
	assert.LessOrEqual(t, result.Price, maxJump)
}

func TestUpdate_SupplyRegeneratesTowardCap(t *testing.T) {
	_, food, sector := testFixture(t)
	params := pricing.DefaultParams()

	depleted, err := market.NewEntry(1, food, 0, 100, params.FloorFraction, params.CeilingFraction, params.TrendWindow)
	require.NoError(t, err)

	result, err := pricing.Update(pricing.Inputs{
		Turn: 1, Entry: depleted.Clone(), Commodity: food, Sector: sector, EventModifier: 1.0,
	}, params)
	require.NoError(t, err)

	assert.Greater(t, result.Supply, 0)
	assert.LessOrEqual(t, result.Supply, params.MaxSupplyBase)
}

func TestUpdate_DemandDecaysTowardBaseline(t *testing.T) {
	_, food, sector := testFixture(t)
	params := pricing.DefaultParams()

	spiked, err := market.NewEntry(1, food, 200, 300, params.FloorFraction, params.CeilingFraction, params.TrendWindow)
	require.NoError(t, err)

	result, err := pricing.Update(pricing.Inputs{
		Turn: 1, Entry: spiked.Clone(), Commodity: food, Sector: sector, EventModifier: 1.0,
	}, params)
	require.NoError(t, err)

	assert.Less(t, result.Demand, 300)
	assert.GreaterOrEqual(t, result.Demand, params.DemandBaseline)
}

func TestUpdate_RejectsNonPositiveEventModifier(t *testing.T) {
	entry, food, sector := testFixture(t)

	_, err := pricing.Update(pricing.Inputs{
		Turn: 1, Entry: entry.Clone(), Commodity: food, Sector: sector, EventModifier: 0,
	}, pricing.DefaultParams())

	assert.Error(t, err)
}
