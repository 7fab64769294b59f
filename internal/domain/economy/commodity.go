package economy

import (
	"fmt"
)

// Category is the closed set of commodity categories. Sector specializations
// reference the same set, so category comparisons are never stringly typed.
type Category string

const (
	CategoryMinerals   Category = "MINERALS"
	CategoryTechnology Category = "TECHNOLOGY"
	CategoryLuxury     Category = "LUXURY"
	CategoryFood       Category = "FOOD"
	CategoryMedical    Category = "MEDICAL"
	CategoryResearch   Category = "RESEARCH"
)

var validCategories = map[Category]bool{
	CategoryMinerals:   true,
	CategoryTechnology: true,
	CategoryLuxury:     true,
	CategoryFood:       true,
	CategoryMedical:    true,
	CategoryResearch:   true,
}

// ParseCategory converts a string into a Category, rejecting unknown values
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !validCategories[c] {
		return "", fmt.Errorf("invalid commodity category: %s", s)
	}
	return c, nil
}

// IsValid reports whether the category is a member of the closed set
func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) String() string {
	return string(c)
}

// Commodity is an immutable tradeable good definition. Base price is the
// reference point every per-sector price orbits; base volatility scales the
// per-turn noise term.
type Commodity struct {
	id             string
	name           string
	category       Category
	basePrice      float64
	baseVolatility float64
}

// NewCommodity creates a new Commodity with validation
func NewCommodity(id, name string, category Category, basePrice, baseVolatility float64) (*Commodity, error) {
	if id == "" {
		return nil, ErrInvalidCommodityID
	}
	if name == "" {
		return nil, ErrInvalidCommodityName
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	if basePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}
	if baseVolatility < 0 || baseVolatility > 1 {
		return nil, ErrInvalidVolatility
	}

	return &Commodity{
		id:             id,
		name:           name,
		category:       category,
		basePrice:      basePrice,
		baseVolatility: baseVolatility,
	}, nil
}

func (c *Commodity) ID() string {
	return c.id
}

func (c *Commodity) Name() string {
	return c.name
}

func (c *Commodity) Category() Category {
	return c.category
}

func (c *Commodity) BasePrice() float64 {
	return c.basePrice
}

func (c *Commodity) BaseVolatility() float64 {
	return c.baseVolatility
}
