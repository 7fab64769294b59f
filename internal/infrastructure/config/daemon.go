package config

import "time"

// DaemonConfig holds economy daemon configuration
type DaemonConfig struct {
	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Wall-clock interval between simulation turns
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"required"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// Autonomous trader agents driving background market activity
	Agents AgentsConfig `mapstructure:"agents"`
}

// AgentsConfig holds the autonomous trading agent pool configuration
type AgentsConfig struct {
	// Number of concurrent trader agents
	Count int `mapstructure:"count" validate:"min=0"`

	// Starting credits per agent
	StartingCredits int `mapstructure:"starting_credits" validate:"min=0"`

	// Trade attempts per second across the pool (token bucket)
	TradesPerSecond float64 `mapstructure:"trades_per_second" validate:"min=0"`

	// Burst size for the trade rate limiter
	Burst int `mapstructure:"burst" validate:"min=0"`
}
