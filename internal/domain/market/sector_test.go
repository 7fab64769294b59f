package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
)

func TestNewSectorEconomy_Validation(t *testing.T) {
	_, err := market.NewSectorEconomy(0, 1.0, 1000, 1.0, nil, 0, nil)
	assert.ErrorIs(t, err, market.ErrInvalidSectorID)

	_, err = market.NewSectorEconomy(1, 0, 1000, 1.0, nil, 0, nil)
	assert.ErrorIs(t, err, market.ErrInvalidWealthLevel)

	food := economy.CategoryFood
	_, err = market.NewSectorEconomy(1, 1.0, 1000, 1.0, &food, 0, nil)
	assert.ErrorIs(t, err, market.ErrInvalidSpecializationModifier,
		"a specialized sector needs a positive modifier")
}

func TestSectorEconomy_NeighborsAreCopied(t *testing.T) {
	neighbors := []int{2, 3}
	sector, err := market.NewSectorEconomy(1, 1.0, 1000, 1.0, nil, 0, neighbors)
	require.NoError(t, err)

	neighbors[0] = 99
	out := sector.Neighbors()
	out[1] = 99

	assert.Equal(t, []int{2, 3}, sector.Neighbors())
}

func TestSectorEconomy_DriftWealthClamps(t *testing.T) {
	sector, err := market.NewSectorEconomy(1, 1.0, 1000, 1.0, nil, 0, nil)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		sector.DriftWealth(0.01)
	}
	assert.Equal(t, 3.0, sector.WealthLevel(), "booms cap at the upper bound")

	for i := 0; i < 1000; i++ {
		sector.DriftWealth(-0.01)
	}
	assert.Equal(t, 0.1, sector.WealthLevel(), "depressions never collapse wealth to zero")
}

func TestSectorEconomy_Specializes(t *testing.T) {
	minerals := economy.CategoryMinerals
	sector, err := market.NewSectorEconomy(1, 1.0, 1000, 1.0, &minerals, 1.25, nil)
	require.NoError(t, err)

	assert.True(t, sector.Specializes(economy.CategoryMinerals))
	assert.False(t, sector.Specializes(economy.CategoryFood))
}
