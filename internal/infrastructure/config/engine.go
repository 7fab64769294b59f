package config

// EngineConfig holds the economy engine tunables
type EngineConfig struct {
	// Per-turn probability of a random economic event, in [0, 1]
	EventProbability float64 `mapstructure:"event_probability" validate:"min=0,max=1"`

	// Seed for random event generation; same seed, same event sequence
	EventSeed int64 `mapstructure:"event_seed"`

	// Per-sector trade history depth
	HistoryCapacity int `mapstructure:"history_capacity" validate:"min=1"`

	// Per-commodity market stock at sector initialization
	InitialSupply int `mapstructure:"initial_supply" validate:"min=1"`
	InitialDemand int `mapstructure:"initial_demand" validate:"min=0"`

	// Credits per hop charged against route profit
	TransitCostPerHop int `mapstructure:"transit_cost_per_hop" validate:"min=0"`

	// Buys add quantity/divisor to demand, sells remove it
	DemandBumpDivisor int `mapstructure:"demand_bump_divisor" validate:"min=1"`

	// Price formation tunables
	Pricing PricingConfig `mapstructure:"pricing"`
}

// PricingConfig holds the price formation tunables
type PricingConfig struct {
	// Weight of the current price in the damping blend, in [0, 1)
	DampingOld float64 `mapstructure:"damping_old" validate:"min=0,max=0.99"`

	// Peak relative seasonal swing
	SeasonalAmplitude float64 `mapstructure:"seasonal_amplitude" validate:"min=0,max=1"`

	// Turns per seasonal cycle
	SeasonLength int `mapstructure:"season_length" validate:"min=1"`

	// Price floor and ceiling as fractions of base price
	FloorFraction   float64 `mapstructure:"floor_fraction" validate:"gt=0"`
	CeilingFraction float64 `mapstructure:"ceiling_fraction" validate:"gt=0"`

	// Supply regeneration per point of industrial capacity per turn
	RegenRate float64 `mapstructure:"regen_rate" validate:"min=0"`

	// Supply cap per point of industrial capacity
	MaxSupplyBase int `mapstructure:"max_supply_base" validate:"min=1"`

	// Demand equilibrium and per-turn decay toward it
	DemandBaseline  int     `mapstructure:"demand_baseline" validate:"min=0"`
	DemandDecayRate float64 `mapstructure:"demand_decay_rate" validate:"min=0,max=1"`

	// Relative price change below which the trend reads stable
	TrendDeadBand float64 `mapstructure:"trend_dead_band" validate:"min=0"`

	// Turns of price history behind the trend calculation
	TrendWindow int `mapstructure:"trend_window" validate:"min=1"`

	// Seed for the deterministic noise term
	NoiseSeed int64 `mapstructure:"noise_seed"`
}
