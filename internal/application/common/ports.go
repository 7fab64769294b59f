package common

import "time"

// MarketMetrics records engine activity for the metrics adapter. A no-op
// implementation backs handlers that run without a metrics registry.
type MarketMetrics interface {
	// RecordTrade counts one trade attempt by side and outcome and, for
	// executed trades, adds the credit volume.
	RecordTrade(side, outcome string, credits int)

	// RecordTurn observes the duration of one turn advance and the number of
	// events active afterwards.
	RecordTurn(duration time.Duration, activeEvents int)
}

// NoopMetrics discards all measurements
type NoopMetrics struct{}

func (NoopMetrics) RecordTrade(side, outcome string, credits int)      {}
func (NoopMetrics) RecordTurn(duration time.Duration, activeEvents int) {}
