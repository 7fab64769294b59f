package market

import "errors"

// Domain errors for sector economies and market entries

var (
	// ErrInvalidSectorID is returned when a sector id is not positive
	ErrInvalidSectorID = errors.New("invalid sector id")

	// ErrInvalidWealthLevel is returned when a wealth level is not positive
	ErrInvalidWealthLevel = errors.New("wealth level must be positive")

	// ErrInvalidPopulation is returned when a population is negative
	ErrInvalidPopulation = errors.New("population must not be negative")

	// ErrInvalidIndustrialCapacity is returned when industrial capacity is not positive
	ErrInvalidIndustrialCapacity = errors.New("industrial capacity must be positive")

	// ErrInvalidSpecializationModifier is returned when the modifier is not positive
	ErrInvalidSpecializationModifier = errors.New("specialization modifier must be positive")

	// ErrInvalidPrice is returned when a price is not positive
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidSupply is returned when a supply value is negative
	ErrInvalidSupply = errors.New("supply must not be negative")

	// ErrInvalidDemand is returned when a demand value is negative
	ErrInvalidDemand = errors.New("demand must not be negative")

	// ErrInvalidVolatility is returned when volatility falls outside [0, 1]
	ErrInvalidVolatility = errors.New("volatility must be within [0, 1]")
)
