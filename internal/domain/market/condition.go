package market

// Condition is the derived label summarizing a sector's aggregate price level
// versus its commodities' base prices.
type Condition string

const (
	ConditionDepressed Condition = "DEPRESSED"
	ConditionNormal    Condition = "NORMAL"
	ConditionBooming   Condition = "BOOMING"
)

func (c Condition) String() string {
	return string(c)
}

// Aggregate ratio thresholds for the condition label.
const (
	depressedRatio = 0.85
	boomingRatio   = 1.15
)

// ConditionFromRatio derives the market condition from the mean
// price-to-base-price ratio across a sector's entries.
func ConditionFromRatio(ratio float64) Condition {
	switch {
	case ratio < depressedRatio:
		return ConditionDepressed
	case ratio > boomingRatio:
		return ConditionBooming
	default:
		return ConditionNormal
	}
}

// WealthDrift maps a market condition to the per-turn relative wealth change
// applied to a sector's economy.
func (c Condition) WealthDrift() float64 {
	switch c {
	case ConditionDepressed:
		return -0.01
	case ConditionBooming:
		return 0.01
	default:
		return 0.0
	}
}
