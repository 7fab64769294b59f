package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EconomyMetricsCollector records engine activity: trade throughput, credit
// volume, turn timing and event pressure. Implements the application layer's
// MarketMetrics port.
type EconomyMetricsCollector struct {
	tradesTotal       *prometheus.CounterVec
	tradeCreditsTotal *prometheus.CounterVec
	turnDuration      prometheus.Histogram
	activeEvents      prometheus.Gauge
	turnsTotal        prometheus.Counter
}

// NewEconomyMetricsCollector creates a new economy metrics collector
func NewEconomyMetricsCollector() *EconomyMetricsCollector {
	return &EconomyMetricsCollector{
		tradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trades_total",
				Help:      "Total number of trade attempts by side and outcome",
			},
			[]string{"side", "outcome"},
		),
		tradeCreditsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_credits_total",
				Help:      "Total credit volume of executed trades by side",
			},
			[]string{"side"},
		),
		turnDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "turn_duration_seconds",
				Help:      "Turn advance duration distribution",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
		),
		activeEvents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "active_events",
				Help:      "Number of economic events currently in force",
			},
		),
		turnsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "turns_total",
				Help:      "Total number of simulation turns advanced",
			},
		),
	}
}

// Register registers all economy metrics with the Prometheus registry
func (c *EconomyMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.tradesTotal,
		c.tradeCreditsTotal,
		c.turnDuration,
		c.activeEvents,
		c.turnsTotal,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordTrade records one trade attempt and, for executed trades, its credit
// volume.
func (c *EconomyMetricsCollector) RecordTrade(side, outcome string, credits int) {
	c.tradesTotal.WithLabelValues(side, outcome).Inc()
	if credits > 0 {
		c.tradeCreditsTotal.WithLabelValues(side).Add(float64(credits))
	}
}

// RecordTurn records one turn advance
func (c *EconomyMetricsCollector) RecordTurn(duration time.Duration, activeEvents int) {
	c.turnDuration.Observe(duration.Seconds())
	c.activeEvents.Set(float64(activeEvents))
	c.turnsTotal.Inc()
}
