package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "sectormarket"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "sectormarket"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "sectormarket.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/economy-daemon.pid"
	}
	if cfg.Daemon.TickInterval == 0 {
		cfg.Daemon.TickInterval = 10 * time.Second
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Daemon.Agents.Count == 0 {
		cfg.Daemon.Agents.Count = 4
	}
	if cfg.Daemon.Agents.StartingCredits == 0 {
		cfg.Daemon.Agents.StartingCredits = 10000
	}
	if cfg.Daemon.Agents.TradesPerSecond == 0 {
		cfg.Daemon.Agents.TradesPerSecond = 2
	}
	if cfg.Daemon.Agents.Burst == 0 {
		cfg.Daemon.Agents.Burst = 5
	}

	// Engine defaults
	if cfg.Engine.EventProbability == 0 {
		cfg.Engine.EventProbability = 0.05
	}
	if cfg.Engine.EventSeed == 0 {
		cfg.Engine.EventSeed = 1
	}
	if cfg.Engine.HistoryCapacity == 0 {
		cfg.Engine.HistoryCapacity = 100
	}
	if cfg.Engine.InitialSupply == 0 {
		cfg.Engine.InitialSupply = 200
	}
	if cfg.Engine.InitialDemand == 0 {
		cfg.Engine.InitialDemand = 100
	}
	if cfg.Engine.TransitCostPerHop == 0 {
		cfg.Engine.TransitCostPerHop = 5
	}
	if cfg.Engine.DemandBumpDivisor == 0 {
		cfg.Engine.DemandBumpDivisor = 4
	}
	if cfg.Engine.Pricing.DampingOld == 0 {
		cfg.Engine.Pricing.DampingOld = 0.7
	}
	if cfg.Engine.Pricing.SeasonalAmplitude == 0 {
		cfg.Engine.Pricing.SeasonalAmplitude = 0.10
	}
	if cfg.Engine.Pricing.SeasonLength == 0 {
		cfg.Engine.Pricing.SeasonLength = 24
	}
	if cfg.Engine.Pricing.FloorFraction == 0 {
		cfg.Engine.Pricing.FloorFraction = 0.10
	}
	if cfg.Engine.Pricing.CeilingFraction == 0 {
		cfg.Engine.Pricing.CeilingFraction = 5.0
	}
	if cfg.Engine.Pricing.RegenRate == 0 {
		cfg.Engine.Pricing.RegenRate = 4.0
	}
	if cfg.Engine.Pricing.MaxSupplyBase == 0 {
		cfg.Engine.Pricing.MaxSupplyBase = 500
	}
	if cfg.Engine.Pricing.DemandBaseline == 0 {
		cfg.Engine.Pricing.DemandBaseline = 100
	}
	if cfg.Engine.Pricing.DemandDecayRate == 0 {
		cfg.Engine.Pricing.DemandDecayRate = 0.10
	}
	if cfg.Engine.Pricing.TrendDeadBand == 0 {
		cfg.Engine.Pricing.TrendDeadBand = 0.02
	}
	if cfg.Engine.Pricing.TrendWindow == 0 {
		cfg.Engine.Pricing.TrendWindow = 5
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 100 // MB
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 28 // days
	}

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
