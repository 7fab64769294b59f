package events

import (
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
)

// Kind is the closed set of macro economic event kinds.
type Kind string

const (
	KindShortage Kind = "SHORTAGE"
	KindBoom     Kind = "BOOM"
	KindWar      Kind = "WAR"
	KindEmbargo  Kind = "EMBARGO"
	KindFestival Kind = "FESTIVAL"
)

var validKinds = map[Kind]bool{
	KindShortage: true,
	KindBoom:     true,
	KindWar:      true,
	KindEmbargo:  true,
	KindFestival: true,
}

// ParseKind converts a string into a Kind, rejecting unknown values
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !validKinds[k] {
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, s)
	}
	return k, nil
}

// IsValid reports whether the kind is a member of the closed set
func (k Kind) IsValid() bool {
	return validKinds[k]
}

func (k Kind) String() string {
	return string(k)
}

// Profile carries the kind-specific generation ranges: how hard the event
// pushes prices, how long it lasts, and which categories it can target.
type Profile struct {
	MinModifier float64
	MaxModifier float64
	MinDuration int
	MaxDuration int
	Categories  []economy.Category // candidate target categories
	Description string
}

// Magnitudes follow the original event tables: scarcity kinds push prices up,
// boom floods the market and pushes them down.
var kindProfiles = map[Kind]Profile{
	KindShortage: {
		MinModifier: 1.3, MaxModifier: 1.8,
		MinDuration: 5, MaxDuration: 20,
		Categories: []economy.Category{
			economy.CategoryMinerals, economy.CategoryFood, economy.CategoryMedical,
		},
		Description: "Critical resource shortage disrupts production across the sector",
	},
	KindBoom: {
		MinModifier: 0.60, MaxModifier: 0.85,
		MinDuration: 5, MaxDuration: 20,
		Categories: []economy.Category{
			economy.CategoryFood, economy.CategoryTechnology, economy.CategoryMinerals,
		},
		Description: "Production boom floods the market with cheap goods",
	},
	KindWar: {
		MinModifier: 1.4, MaxModifier: 2.0,
		MinDuration: 8, MaxDuration: 20,
		Categories: []economy.Category{
			economy.CategoryMedical, economy.CategoryFood, economy.CategoryMinerals,
		},
		Description: "Armed conflict disrupts trade routes and drives up essential goods",
	},
	KindEmbargo: {
		MinModifier: 1.2, MaxModifier: 1.6,
		MinDuration: 5, MaxDuration: 15,
		Categories: []economy.Category{
			economy.CategoryTechnology, economy.CategoryLuxury, economy.CategoryResearch,
		},
		Description: "Trade embargo chokes imports of regulated goods",
	},
	KindFestival: {
		MinModifier: 1.1, MaxModifier: 1.4,
		MinDuration: 3, MaxDuration: 8,
		Categories: []economy.Category{
			economy.CategoryLuxury, economy.CategoryFood,
		},
		Description: "Sector-wide festival spikes demand for luxuries and food",
	},
}

// ProfileFor returns the generation profile for a kind
func ProfileFor(kind Kind) (Profile, error) {
	profile, ok := kindProfiles[kind]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	return profile, nil
}

// Kinds returns all event kinds in a stable order
func Kinds() []Kind {
	return []Kind{KindShortage, KindBoom, KindWar, KindEmbargo, KindFestival}
}
