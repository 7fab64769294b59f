package pricing

// Params carries every tunable of the price update algorithm. The ranges in
// the defaults are starting points surfaced through configuration, not
// contractual constants.
type Params struct {
	// DampingOld is the weight of the current price in the blend with the
	// newly computed candidate (0.7 means 70% old / 30% new).
	DampingOld float64

	// SeasonalAmplitude bounds the sinusoidal seasonal term (0.10 = ±10%).
	SeasonalAmplitude float64

	// SeasonLength is the season cycle length in turns.
	SeasonLength int

	// FloorFraction and CeilingFraction bound prices relative to base price.
	FloorFraction   float64
	CeilingFraction float64

	// RegenRate scales passive supply regeneration per unit of sector
	// industrial capacity each turn.
	RegenRate float64

	// MaxSupplyBase caps supply at MaxSupplyBase x industrial capacity.
	MaxSupplyBase int

	// DemandBaseline is the level unmet demand decays toward.
	DemandBaseline int

	// DemandDecayRate is the fraction of the gap to baseline closed per turn.
	DemandDecayRate float64

	// TrendDeadBand is the relative price change below which the trend reads
	// stable, so noise does not flap the label.
	TrendDeadBand float64

	// TrendWindow is how many turns back the trend comparison reaches.
	TrendWindow int

	// NoiseSeed is mixed into the per-(turn, sector, commodity) noise seed
	// so whole simulation runs are reproducible.
	NoiseSeed int64
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		DampingOld:        0.7,
		SeasonalAmplitude: 0.10,
		SeasonLength:      24,
		FloorFraction:     0.10,
		CeilingFraction:   5.0,
		RegenRate:         4.0,
		MaxSupplyBase:     500,
		DemandBaseline:    100,
		DemandDecayRate:   0.10,
		TrendDeadBand:     0.02,
		TrendWindow:       5,
		NoiseSeed:         0,
	}
}
