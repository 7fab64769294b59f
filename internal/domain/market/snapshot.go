package market

// Quote is an immutable per-commodity view handed to callers. No reference
// back into engine-owned state escapes through it.
type Quote struct {
	CommodityID string
	Price       int
	Supply      int
	Demand      int
	Volatility  float64
	Trend       Trend
}

/// SectorSnapshot is the read-only answer to a price query: every quote in a
// sector plus the derived overall condition.
type SectorSnapshot struct {
	SectorID       int
	Turn           int
	Condition      Condition
	Specialization string // empty when the sector is a generalist
	WealthLevel    float64
	Quotes         []Quote
}

// QuoteFor returns the quote for a commodity id, or nil if the sector does
// not trade it.
func (s *SectorSnapshot) QuoteFor(commodityID string) *Quote {
	for i := range s.Quotes {
		if s.Quotes[i].CommodityID == commodityID {
			q := s.Quotes[i]
			return &q
		}
	}
	return nil
}
