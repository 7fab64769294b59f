package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
)

func TestDefaultCatalog_ContainsCoreCommodities(t *testing.T) {
	catalog := economy.DefaultCatalog()

	for _, id := range []string{"FOOD", "IRON", "ELECTRONICS", "MEDICINE", "DILITHIUM"} {
		assert.True(t, catalog.Has(id), "expected catalog to contain %s", id)
	}

	food, err := catalog.Get("FOOD")
	require.NoError(t, err)
	assert.Equal(t, 50.0, food.BasePrice())
	assert.Equal(t, economy.CategoryFood, food.Category())
}

func TestCatalog_IDsAreSorted(t *testing.T) {
	catalog := economy.DefaultCatalog()

	ids := catalog.IDs()
	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestCatalog_GetUnknownCommodity(t *testing.T) {
	catalog := economy.DefaultCatalog()

	_, err := catalog.Get("UNOBTAINIUM")

	assert.ErrorIs(t, err, economy.ErrCommodityNotFound)
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	first, err := economy.NewCommodity("ORE", "Ore", economy.CategoryMinerals, 100, 0.2)
	require.NoError(t, err)
	second, err := economy.NewCommodity("ORE", "Ore Again", economy.CategoryMinerals, 120, 0.2)
	require.NoError(t, err)

	_, err = economy.NewCatalog([]*economy.Commodity{first, second})

	assert.ErrorIs(t, err, economy.ErrDuplicateCommodity)
}

func TestCatalog_ByCategory(t *testing.T) {
	catalog := economy.DefaultCatalog()

	minerals := catalog.ByCategory(economy.CategoryMinerals)

	require.NotEmpty(t, minerals)
	for _, commodity := range minerals {
		assert.Equal(t, economy.CategoryMinerals, commodity.Category())
	}
}
