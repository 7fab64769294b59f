package cli

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	economyCommands "github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/application/setup"
	"github.com/andrescamacho/sectormarket-go/internal/domain/pricing"
	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/config"
	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/logging"
)

// engine bundles everything a CLI command needs to run against a freshly
// built galaxy.
type engine struct {
	system   *services.DynamicMarketSystem
	mediator common.Mediator
	ctx      context.Context
}

// ServiceConfig converts the engine section of the file configuration into
// the market system's tuning.
func ServiceConfig(cfg *config.EngineConfig) services.Config {
	return services.Config{
		Params: pricing.Params{
			DampingOld:        cfg.Pricing.DampingOld,
			SeasonalAmplitude: cfg.Pricing.SeasonalAmplitude,
			SeasonLength:      cfg.Pricing.SeasonLength,
			FloorFraction:     cfg.Pricing.FloorFraction,
			CeilingFraction:   cfg.Pricing.CeilingFraction,
			RegenRate:         cfg.Pricing.RegenRate,
			MaxSupplyBase:     cfg.Pricing.MaxSupplyBase,
			DemandBaseline:    cfg.Pricing.DemandBaseline,
			DemandDecayRate:   cfg.Pricing.DemandDecayRate,
			TrendDeadBand:     cfg.Pricing.TrendDeadBand,
			TrendWindow:       cfg.Pricing.TrendWindow,
			NoiseSeed:         cfg.Pricing.NoiseSeed,
		},
		EventProbability:  cfg.EventProbability,
		EventSeed:         cfg.EventSeed,
		HistoryCapacity:   cfg.HistoryCapacity,
		InitialSupply:     cfg.InitialSupply,
		InitialDemand:     cfg.InitialDemand,
		TransitCostPerHop: cfg.TransitCostPerHop,
		DemandBumpDivisor: cfg.DemandBumpDivisor,
	}
}

// DefaultSectors is the standard eight-sector galaxy: a ring with two chords
// and a mix of specializations.
func DefaultSectors() []*economyCommands.InitializeSectorCommand {
	return []*economyCommands.InitializeSectorCommand{
		{SectorID: 1, WealthLevel: 1.2, Population: 900000, IndustrialCapacity: 1.4,
			Specialization: "TECHNOLOGY", SpecializationModifier: 1.3, Neighbors: []int{2, 8, 4}},
		{SectorID: 2, WealthLevel: 0.9, Population: 400000, IndustrialCapacity: 1.8,
			Specialization: "MINERALS", SpecializationModifier: 1.25, Neighbors: []int{1, 3}},
		{SectorID: 3, WealthLevel: 1.0, Population: 600000, IndustrialCapacity: 1.0,
			Specialization: "FOOD", SpecializationModifier: 1.2, Neighbors: []int{2, 4}},
		{SectorID: 4, WealthLevel: 1.5, Population: 1200000, IndustrialCapacity: 1.2,
			Specialization: "LUXURY", SpecializationModifier: 1.4, Neighbors: []int{3, 5, 1}},
		{SectorID: 5, WealthLevel: 1.1, Population: 700000, IndustrialCapacity: 1.1,
			Specialization: "MEDICAL", SpecializationModifier: 1.3, Neighbors: []int{4, 6}},
		{SectorID: 6, WealthLevel: 0.8, Population: 300000, IndustrialCapacity: 0.9,
			Neighbors: []int{5, 7}},
		{SectorID: 7, WealthLevel: 1.3, Population: 800000, IndustrialCapacity: 1.0,
			Specialization: "RESEARCH", SpecializationModifier: 1.35, Neighbors: []int{6, 8}},
		{SectorID: 8, WealthLevel: 1.0, Population: 500000, IndustrialCapacity: 1.3,
			Neighbors: []int{7, 1}},
	}
}

// buildEngine loads configuration, creates the market system with the default
// galaxy, registers all handlers and advances the simulation by the --turns
// flag.
func buildEngine() (*engine, error) {
	cfg := config.LoadConfigOrDefault(configPath)

	ctx := context.Background()
	if verbose {
		ctx = common.WithLogger(ctx, logging.NewLogger(&cfg.Logging))
	}

	system, err := services.NewDynamicMarketSystem(nil, ServiceConfig(&cfg.Engine), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create market system: %w", err)
	}

	m := common.NewMediator()
	registry := setup.NewHandlerRegistry(system, nil, nil, nil, nil)
	if err := registry.RegisterEconomyHandlers(m); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	for _, sector := range DefaultSectors() {
		if _, err := m.Send(ctx, sector); err != nil {
			return nil, fmt.Errorf("failed to initialize sector %d: %w", sector.SectorID, err)
		}
	}

	if turnCount > 0 {
		if _, err := m.Send(ctx, &economyCommands.AdvanceTurnCommand{Turns: turnCount}); err != nil {
			return nil, err
		}
	}

	return &engine{system: system, mediator: m, ctx: ctx}, nil
}
