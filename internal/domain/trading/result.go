package trading

// Result reports a successfully executed trade. Credit and holding values
// are returned to the caller rather than written anywhere: the session layer
// owns agent state and is the sole authority for committing the deltas.
type Result struct {
	Turn        int
	SectorID    int
	CommodityID string
	Side        Side
	Quantity    int
	UnitPrice   int
	Total       int

	// Market state after the trade.
	NewSupply int
	NewDemand int

	// Agent state after the trade, for the caller to commit.
	NewCredits int
	NewHolding int
}
