package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/sectormarket-go/internal/adapters/cli"
	"github.com/andrescamacho/sectormarket-go/internal/adapters/metrics"
	"github.com/andrescamacho/sectormarket-go/internal/adapters/persistence"
	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	economyCommands "github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/application/setup"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/config"
	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/database"
	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/logging"
	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/pidfile"
)

func main() {
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	fmt.Println("Sector Economy Daemon v0.1.0")
	fmt.Println("============================")

	cfg := config.MustLoadConfig(*configFlag)

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// Database
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Logging
	logger := logging.NewLogger(&cfg.Logging)
	ctx, cancel := context.WithCancel(common.WithLogger(context.Background(), logger))
	defer cancel()

	// Metrics
	var collector *metrics.EconomyMetricsCollector
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		collector = metrics.NewEconomyMetricsCollector()
		if err := collector.Register(); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}

		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			fmt.Printf("Metrics server listening on %s%s\n", metricsServer.Addr, cfg.Metrics.Path)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Log("error", "Metrics server failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	// Engine and handlers
	system, err := services.NewDynamicMarketSystem(nil, cli.ServiceConfig(&cfg.Engine), nil)
	if err != nil {
		return fmt.Errorf("failed to create market system: %w", err)
	}

	snapshotRepo := persistence.NewGormPriceSnapshotRepository(db)
	recordRepo := persistence.NewGormTradeRecordRepository(db)

	var marketMetrics common.MarketMetrics
	if collector != nil {
		marketMetrics = collector
	}

	m := common.NewMediator()
	registry := setup.NewHandlerRegistry(system, snapshotRepo, recordRepo, marketMetrics, nil)
	if err := registry.RegisterEconomyHandlers(m); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	for _, sector := range cli.DefaultSectors() {
		if _, err := m.Send(ctx, sector); err != nil {
			return fmt.Errorf("failed to initialize sector %d: %w", sector.SectorID, err)
		}
	}
	fmt.Printf("Galaxy initialized: %d sectors, %d commodities\n",
		len(cli.DefaultSectors()), system.Catalog().Len())

	// Autonomous trader agents
	var wg sync.WaitGroup
	if cfg.Daemon.Agents.Count > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.Daemon.Agents.TradesPerSecond), cfg.Daemon.Agents.Burst)
		for i := 0; i < cfg.Daemon.Agents.Count; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				runTraderAgent(ctx, m, system, limiter, cfg.Daemon.Agents, id)
			}(i + 1)
		}
		fmt.Printf("Started %d trader agents\n", cfg.Daemon.Agents.Count)
	}

	// Tick loop
	ticker := time.NewTicker(cfg.Daemon.TickInterval)
	defer ticker.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Advancing one turn every %s\n", cfg.Daemon.TickInterval)
	for {
		select {
		case <-ticker.C:
			if _, err := m.Send(ctx, &economyCommands.AdvanceTurnCommand{}); err != nil {
				logger.Log("error", "Turn advance failed", map[string]interface{}{"error": err.Error()})
			}
		case sig := <-signals:
			fmt.Printf("\nReceived %s, shutting down...\n", sig)
			cancel()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(cfg.Daemon.ShutdownTimeout):
				logger.Log("warn", "Shutdown timeout exceeded", nil)
			}

			if metricsServer != nil {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				_ = metricsServer.Shutdown(shutdownCtx)
				shutdownCancel()
			}
			return nil
		}
	}
}

// runTraderAgent drives background market activity: it buys what looks cheap
// and sells what it holds when the price runs above base, paced by the shared
// rate limiter.
func runTraderAgent(
	ctx context.Context,
	m common.Mediator,
	system *services.DynamicMarketSystem,
	limiter *rate.Limiter,
	cfg config.AgentsConfig,
	id int,
) {
	agentID := fmt.Sprintf("agent-%d", id)
	rng := rand.New(rand.NewSource(int64(id)))
	credits := cfg.StartingCredits
	holdings := make(map[string]int)

	sectors := cli.DefaultSectors()
	commodities := system.Catalog().IDs()

	for {
		if err := limiter.Wait(ctx); err != nil {
			return // context cancelled
		}

		sector := sectors[rng.Intn(len(sectors))].SectorID
		commodity := commodities[rng.Intn(len(commodities))]

		side := trading.SideBuy
		if held := holdings[commodity]; held > 0 && rng.Intn(2) == 0 {
			side = trading.SideSell
		}
		quantity := 1 + rng.Intn(5)
		if side == trading.SideSell && quantity > holdings[commodity] {
			quantity = holdings[commodity]
		}

		response, err := m.Send(ctx, &economyCommands.ExecuteTradeCommand{
			AgentID:     agentID,
			SectorID:    sector,
			CommodityID: commodity,
			Quantity:    quantity,
			Side:        side.String(),
			Credits:     credits,
			Holding:     holdings[commodity],
		})
		if err != nil {
			continue // rejections are normal background noise
		}
		result := response.(*economyCommands.ExecuteTradeResponse).Result
		credits = result.NewCredits
		holdings[commodity] = result.NewHolding
	}
}
