package economy

import "errors"

// Domain errors for the commodity catalog

var (
	// ErrInvalidCommodityID is returned when a commodity id is empty
	ErrInvalidCommodityID = errors.New("invalid commodity id")

	// ErrInvalidCommodityName is returned when a commodity name is empty
	ErrInvalidCommodityName = errors.New("invalid commodity name")

	// ErrInvalidCategory is returned when a category is not in the closed set
	ErrInvalidCategory = errors.New("invalid commodity category")

	// ErrInvalidBasePrice is returned when a base price is not positive
	ErrInvalidBasePrice = errors.New("base price must be positive")

	// ErrInvalidVolatility is returned when volatility falls outside [0, 1]
	ErrInvalidVolatility = errors.New("volatility must be within [0, 1]")

	// ErrCommodityNotFound is returned when a catalog lookup misses
	ErrCommodityNotFound = errors.New("commodity not found")

	// ErrDuplicateCommodity is returned when a catalog is built with a repeated id
	ErrDuplicateCommodity = errors.New("duplicate commodity id")
)
