package market

import (
	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/pkg/utils"
)

// Wealth drift bounds. A sector can decay well below its starting wealth
// during a long depression but never collapses to zero.
const (
	minWealthLevel = 0.1
	maxWealthLevel = 3.0
)

// SectorEconomy is the per-location economic profile. The engine owns every
// instance exclusively; callers receive copies of the neighbor set.
type SectorEconomy struct {
	sectorID               int
	wealthLevel            float64
	population             int
	industrialCapacity     float64
	specialization         *economy.Category
	specializationModifier float64
	neighbors              []int
}

// NewSectorEconomy creates a sector economic profile with validation.
// specialization may be nil for generalist sectors; the modifier is ignored
// in that case but must still be positive when a specialization is set.
func NewSectorEconomy(
	sectorID int,
	wealthLevel float64,
	population int,
	industrialCapacity float64,
	specialization *economy.Category,
	specializationModifier float64,
	neighbors []int,
) (*SectorEconomy, error) {
	if sectorID <= 0 {
		return nil, ErrInvalidSectorID
	}
	if wealthLevel <= 0 {
		return nil, ErrInvalidWealthLevel
	}
	if population < 0 {
		return nil, ErrInvalidPopulation
	}
	if industrialCapacity <= 0 {
		return nil, ErrInvalidIndustrialCapacity
	}
	if specialization != nil {
		if !specialization.IsValid() {
			return nil, economy.ErrInvalidCategory
		}
		if specializationModifier <= 0 {
			return nil, ErrInvalidSpecializationModifier
		}
	}

	neighborsCopy := make([]int, len(neighbors))
	copy(neighborsCopy, neighbors)

	return &SectorEconomy{
		sectorID:               sectorID,
		wealthLevel:            wealthLevel,
		population:             population,
		industrialCapacity:     industrialCapacity,
		specialization:         specialization,
		specializationModifier: specializationModifier,
		neighbors:              neighborsCopy,
	}, nil
}

func (s *SectorEconomy) SectorID() int {
	return s.sectorID
}

func (s *SectorEconomy) WealthLevel() float64 {
	return s.wealthLevel
}

func (s *SectorEconomy) Population() int {
	return s.population
}

func (s *SectorEconomy) IndustrialCapacity() float64 {
	return s.industrialCapacity
}

// Specialization returns the sector's preferred category, or nil
func (s *SectorEconomy) Specialization() *economy.Category {
	if s.specialization == nil {
		return nil
	}
	spec := *s.specialization
	return &spec
}

func (s *SectorEconomy) SpecializationModifier() float64 {
	return s.specializationModifier
}

// Neighbors returns a defensive copy of the connected sector ids
func (s *SectorEconomy) Neighbors() []int {
	out := make([]int, len(s.neighbors))
	copy(out, s.neighbors)
	return out
}

// Specializes reports whether the sector specializes in the given category
func (s *SectorEconomy) Specializes(category economy.Category) bool {
	return s.specialization != nil && *s.specialization == category
}

// DriftWealth nudges the wealth level by a relative delta and clamps the
// result, so a long run of booms or depressions never breaks the invariant.
func (s *SectorEconomy) DriftWealth(relativeDelta float64) {
	s.wealthLevel = utils.Clamp(s.wealthLevel*(1.0+relativeDelta), minWealthLevel, maxWealthLevel)
}
