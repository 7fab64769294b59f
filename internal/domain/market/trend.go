package market

// Trend is the derived short-term price direction for a market entry.
// It is recomputed every turn and never authoritative.
type Trend string

const (
	TrendRising  Trend = "RISING"
	TrendFalling Trend = "FALLING"
	TrendStable  Trend = "STABLE"
)

func (t Trend) String() string {
	return string(t)
}

// TrendFromPrices derives a trend by comparing the current price with a
// reference price from deadBand turns ago. Moves within the dead band count
// as stable so noise does not flap the label turn over turn.
func TrendFromPrices(current, reference, deadBand float64) Trend {
	if reference <= 0 {
		return TrendStable
	}
	change := (current - reference) / reference
	switch {
	case change > deadBand:
		return TrendRising
	case change < -deadBand:
		return TrendFalling
	default:
		return TrendStable
	}
}
