package economy

import (
	"fmt"
	"sort"
)

// Catalog is the immutable registry of tradeable commodities. It is built
// once at startup and shared read-only across the engine.
type Catalog struct {
	byID map[string]*Commodity
	ids  []string
}

// NewCatalog builds a catalog from commodity definitions, rejecting duplicates
func NewCatalog(commodities []*Commodity) (*Catalog, error) {
	byID := make(map[string]*Commodity, len(commodities))
	ids := make([]string, 0, len(commodities))

	for _, c := range commodities {
		if c == nil {
			return nil, fmt.Errorf("catalog entry must not be nil")
		}
		if _, exists := byID[c.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommodity, c.ID())
		}
		byID[c.ID()] = c
		ids = append(ids, c.ID())
	}

	sort.Strings(ids)

	return &Catalog{byID: byID, ids: ids}, nil
}

// Get returns the commodity for an id, or ErrCommodityNotFound
func (c *Catalog) Get(id string) (*Commodity, error) {
	commodity, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommodityNotFound, id)
	}
	return commodity, nil
}

// Has reports whether the catalog contains the commodity id
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns all commodity ids in stable (sorted) order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of commodities in the catalog
func (c *Catalog) Len() int {
	return len(c.byID)
}

// ByCategory returns all commodities of the given category in stable order
func (c *Catalog) ByCategory(category Category) []*Commodity {
	var out []*Commodity
	for _, id := range c.ids {
		if c.byID[id].Category() == category {
			out = append(out, c.byID[id])
		}
	}
	return out
}

type commodityDef struct {
	id         string
	name       string
	category   Category
	basePrice  float64
	volatility float64
}

// Base prices and volatilities follow the classic LOGDTW commodity table.
var defaultCommodityDefs = []commodityDef{
	{"FOOD", "Food", CategoryFood, 50, 0.20},
	{"GRAIN", "Grain", CategoryFood, 30, 0.25},
	{"PROTEIN", "Protein", CategoryFood, 80, 0.30},
	{"SPICES", "Spices", CategoryLuxury, 200, 0.40},
	{"IRON", "Iron", CategoryMinerals, 100, 0.15},
	{"COPPER", "Copper", CategoryMinerals, 150, 0.20},
	{"GOLD", "Gold", CategoryLuxury, 1000, 0.30},
	{"TRITIUM", "Tritium", CategoryMinerals, 5000, 0.50},
	{"DILITHIUM", "Dilithium", CategoryMinerals, 8000, 0.60},
	{"AMMOLITE", "Ammolite", CategoryLuxury, 12000, 0.70},
	{"ELECTRONICS", "Electronics", CategoryTechnology, 300, 0.25},
	{"SOFTWARE", "Software", CategoryTechnology, 500, 0.30},
	{"AI_CORES", "AI Cores", CategoryTechnology, 10000, 0.80},
	{"MEDICINE", "Medicine", CategoryMedical, 400, 0.30},
	{"MEDICAL_EQUIPMENT", "Medical Equipment", CategoryMedical, 1500, 0.35},
	{"LAB_SAMPLES", "Lab Samples", CategoryResearch, 900, 0.45},
	{"RESEARCH_DATA", "Research Data", CategoryResearch, 2500, 0.55},
}

// DefaultCatalog returns the stock commodity catalog used by the daemon and
// CLI when no custom catalog is configured.
func DefaultCatalog() *Catalog {
	commodities := make([]*Commodity, 0, len(defaultCommodityDefs))
	for _, def := range defaultCommodityDefs {
		c, err := NewCommodity(def.id, def.name, def.category, def.basePrice, def.volatility)
		if err != nil {
			// Definitions are compile-time constants; a failure here is a bug.
			panic(fmt.Sprintf("invalid default commodity %s: %v", def.id, err))
		}
		commodities = append(commodities, c)
	}

	catalog, err := NewCatalog(commodities)
	if err != nil {
		panic(fmt.Sprintf("invalid default catalog: %v", err))
	}
	return catalog
}
