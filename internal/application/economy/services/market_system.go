package services

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
	"github.com/andrescamacho/sectormarket-go/internal/domain/events"
	"github.com/andrescamacho/sectormarket-go/internal/domain/history"
	"github.com/andrescamacho/sectormarket-go/internal/domain/market"
	"github.com/andrescamacho/sectormarket-go/internal/domain/pricing"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

// Config holds the tunables of the market system. Zero values are replaced
// with defaults by NewDynamicMarketSystem.
type Config struct {
	Params            pricing.Params
	EventProbability  float64 // per-turn chance of a random economic event
	EventSeed         int64
	HistoryCapacity   int // per-sector trade history depth
	InitialSupply     int // per-commodity supply at initialization, scaled by capacity
	InitialDemand     int // per-commodity demand at initialization, scaled by wealth
	TransitCostPerHop int // credits per hop charged against route profit
	DemandBumpDivisor int // buys add quantity/divisor to demand, sells remove it
}

// DefaultConfig returns the standard engine tuning
func DefaultConfig() Config {
	return Config{
		Params:            pricing.DefaultParams(),
		EventProbability:  0.05,
		EventSeed:         1,
		HistoryCapacity:   history.DefaultCapacity,
		InitialSupply:     200,
		InitialDemand:     100,
		TransitCostPerHop: 5,
		DemandBumpDivisor: 4,
	}
}

// entryState pairs a market entry with the mutex that serializes trades
// against it.
type entryState struct {
	mu    sync.Mutex
	entry *market.Entry
}

// sectorState is everything the engine owns for one sector: its economic
// profile, its market entries and its trade history ring.
type sectorState struct {
	economy *market.SectorEconomy
	entries map[string]*entryState
	histMu  sync.Mutex
	ring    *history.Ring
}

// TurnReport summarizes one turn advance for callers and persistence.
type TurnReport struct {
	Turn         int
	SpawnedEvent *events.EconomicEvent
	Conditions   map[int]market.Condition
	Snapshots    []*market.PriceSnapshot
}

// MarketAnalysis is the per-commodity view a trader asks for before
// committing credits.
type MarketAnalysis struct {
	SectorID          int
	CommodityID       string
	Turn              int
	Price             int
	BasePrice         float64
	PriceRatio        float64 // price relative to base, >1 means expensive here
	Supply            int
	Demand            int
	SupplyDemandRatio float64
	Trend             market.Trend
	Volatility        float64
	Recommendation    string
}

// EconomicSummary is the galaxy-wide aggregate view.
type EconomicSummary struct {
	Turn          int
	Sectors       int
	AverageWealth float64
	ActiveEvents  int
	Conditions    map[market.Condition]int
	TotalSupply   int
	TotalDemand   int
}

// DynamicMarketSystem is the economy engine facade. It owns all sector
// economies, market entries, the event engine and trade history.
//
// Locking model: AdvanceTurn, initialization and event triggers take the
// write lock and are the only mutators of sector topology, event state and
// turn-level prices. Trades take the read lock plus the per-entry mutex, so
// trades on different markets run concurrently while two trades on the same
// (sector, commodity) pair serialize.
type DynamicMarketSystem struct {
	mu       sync.RWMutex
	catalog  *economy.Catalog
	config   Config
	engine   *events.Engine
	analyzer *trading.RouteAnalyzer
	clock    shared.Clock
	turn     int
	sectors  map[int]*sectorState
}

// NewDynamicMarketSystem creates the engine with the given commodity catalog
// and tuning. A nil catalog gets the default commodity set.
func NewDynamicMarketSystem(catalog *economy.Catalog, config Config, clock shared.Clock) (*DynamicMarketSystem, error) {
	if catalog == nil {
		catalog = economy.DefaultCatalog()
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	defaults := DefaultConfig()
	if config.Params == (pricing.Params{}) {
		config.Params = defaults.Params
	}
	if config.HistoryCapacity < 1 {
		config.HistoryCapacity = defaults.HistoryCapacity
	}
	if config.InitialSupply < 1 {
		config.InitialSupply = defaults.InitialSupply
	}
	if config.InitialDemand < 0 {
		config.InitialDemand = defaults.InitialDemand
	}
	if config.DemandBumpDivisor < 1 {
		config.DemandBumpDivisor = defaults.DemandBumpDivisor
	}
	if config.TransitCostPerHop < 0 {
		config.TransitCostPerHop = defaults.TransitCostPerHop
	}

	engine, err := events.NewEngine(config.EventProbability, config.EventSeed)
	if err != nil {
		return nil, err
	}

	return &DynamicMarketSystem{
		catalog:  catalog,
		config:   config,
		engine:   engine,
		analyzer: trading.NewRouteAnalyzer(config.TransitCostPerHop),
		clock:    clock,
		sectors:  make(map[int]*sectorState),
	}, nil
}

// Catalog returns the commodity catalog the engine trades
func (s *DynamicMarketSystem) Catalog() *economy.Catalog {
	return s.catalog
}

// Turn returns the current turn number
func (s *DynamicMarketSystem) Turn() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.turn
}

// InitializeSectorEconomy registers a sector and opens a market entry for
// every catalog commodity at base price. Re-initializing an existing sector
// fails unless reset is set, in which case prices, stock and history start
// over.
func (s *DynamicMarketSystem) InitializeSectorEconomy(ctx context.Context, sector *market.SectorEconomy, reset bool) error {
	if sector == nil {
		return market.ErrInvalidSectorID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sectors[sector.SectorID()]; exists && !reset {
		return trading.NewDuplicateInitializationError(sector.SectorID())
	}

	entries := make(map[string]*entryState, s.catalog.Len())
	for _, id := range s.catalog.IDs() {
		commodity, err := s.catalog.Get(id)
		if err != nil {
			return err
		}
		supply := scaleCount(s.config.InitialSupply, sector.IndustrialCapacity())
		demand := scaleCount(s.config.InitialDemand, sector.WealthLevel())
		entry, err := market.NewEntry(
			sector.SectorID(), commodity,
			supply, demand,
			s.config.Params.FloorFraction, s.config.Params.CeilingFraction,
			s.config.Params.TrendWindow,
		)
		if err != nil {
			return err
		}
		entries[id] = &entryState{entry: entry}
	}

	s.sectors[sector.SectorID()] = &sectorState{
		economy: sector,
		entries: entries,
		ring:    history.NewRing(s.config.HistoryCapacity),
	}

	common.LoggerFromContext(ctx).Log("info", "Sector economy initialized", map[string]interface{}{
		"sector":      sector.SectorID(),
		"commodities": len(entries),
		"reset":       reset,
	})
	return nil
}

// AdvanceTurn moves the simulation forward one turn: every market entry is
// repriced under the events active at the start of the turn, then event
// durations burn down and a new random event may spawn, then sector wealth
// drifts with the sector's condition.
//
// Each sector updates atomically: its entries are recomputed from a
// consistent pre-turn view and committed together.
func (s *DynamicMarketSystem) AdvanceTurn(ctx context.Context) (*TurnReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turn++
	now := s.clock.Now()
	report := &TurnReport{
		Turn:       s.turn,
		Conditions: make(map[int]market.Condition, len(s.sectors)),
	}

	sectorIDs := s.sortedSectorIDs()
	for _, sectorID := range sectorIDs {
		state := s.sectors[sectorID]

		// Compute every entry's next state from the pre-turn view before
		// committing any of them, so a sector never half-updates.
		type pending struct {
			entry  *market.Entry
			result pricing.Result
		}
		updates := make([]pending, 0, len(state.entries))

		for _, id := range s.catalog.IDs() {
			es := state.entries[id]
			commodity, err := s.catalog.Get(id)
			if err != nil {
				return nil, err
			}
			result, err := pricing.Update(pricing.Inputs{
				Turn:          s.turn,
				Entry:         es.entry.Clone(),
				Commodity:     commodity,
				Sector:        state.economy,
				EventModifier: s.engine.ModifierFor(sectorID, commodity.Category()),
			}, s.config.Params)
			if err != nil {
				return nil, err
			}
			updates = append(updates, pending{entry: es.entry, result: result})
		}

		for _, u := range updates {
			if err := u.entry.ApplyTurnUpdate(u.result.Price, u.result.Supply, u.result.Demand, u.result.Volatility, u.result.Trend); err != nil {
				return nil, err
			}
			snapshot, err := market.NewPriceSnapshot(
				s.turn, sectorID, u.entry.CommodityID(),
				u.result.Price, u.result.Supply, u.result.Demand, u.result.Trend, now)
			if err != nil {
				return nil, err
			}
			report.Snapshots = append(report.Snapshots, snapshot)
		}
	}

	spawned, err := s.engine.Tick(s.turn, sectorIDs)
	if err != nil {
		return nil, err
	}
	report.SpawnedEvent = spawned

	logger := common.LoggerFromContext(ctx)
	for _, sectorID := range sectorIDs {
		state := s.sectors[sectorID]
		condition := sectorCondition(state)
		state.economy.DriftWealth(condition.WealthDrift())
		report.Conditions[sectorID] = condition
	}

	metadata := map[string]interface{}{
		"turn":          s.turn,
		"sectors":       len(sectorIDs),
		"active_events": len(s.engine.Active()),
	}
	if spawned != nil {
		metadata["spawned_event"] = string(spawned.Kind())
	}
	logger.Log("info", "Turn advanced", metadata)

	return report, nil
}

// ExecuteTrade validates and atomically applies a buy or sell order. Checks
// run in a fixed order: market existence, quantity, funds, market supply,
// agent inventory. On success the market entry, the agent deltas and the
// history log all reflect the trade; on any failure nothing changes.
//
// Prices only move on turn advances, so every trade in a turn executes at
// the quoted price.
func (s *DynamicMarketSystem) ExecuteTrade(ctx context.Context, order *trading.Order, agent trading.AgentState) (*trading.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sectors[order.SectorID()]
	if !ok {
		return nil, trading.NewUnknownMarketError(order.SectorID(), order.CommodityID())
	}
	es, ok := state.entries[order.CommodityID()]
	if !ok {
		return nil, trading.NewUnknownMarketError(order.SectorID(), order.CommodityID())
	}

	if order.Quantity() <= 0 {
		return nil, trading.NewInvalidQuantityError(order.Quantity())
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	entry := es.entry
	unitPrice := entry.QuotedPrice()
	total := unitPrice * order.Quantity()
	demandDelta := order.Quantity() / s.config.DemandBumpDivisor

	var newCredits, newHolding int
	if order.IsBuy() {
		if total > agent.Credits {
			return nil, trading.NewInsufficientFundsError(total, agent.Credits)
		}
		if order.Quantity() > entry.Supply() {
			return nil, trading.NewInsufficientSupplyError(order.Quantity(), entry.Supply())
		}
		if err := entry.ApplyBuy(order.Quantity(), demandDelta); err != nil {
			return nil, err
		}
		newCredits = agent.Credits - total
		newHolding = agent.Holding + order.Quantity()
	} else {
		if order.Quantity() > agent.Holding {
			return nil, trading.NewInsufficientInventoryError(order.Quantity(), agent.Holding)
		}
		if err := entry.ApplySell(order.Quantity(), demandDelta); err != nil {
			return nil, err
		}
		newCredits = agent.Credits + total
		newHolding = agent.Holding - order.Quantity()
	}

	record, err := history.NewTradeRecord(
		s.turn, order.SectorID(), order.CommodityID(), order.Side(),
		order.Quantity(), unitPrice, order.AgentID(), s.clock.Now())
	if err != nil {
		return nil, shared.NewInternalError("failed to record executed trade: %v", err)
	}
	state.histMu.Lock()
	state.ring.Append(record)
	state.histMu.Unlock()

	common.LoggerFromContext(ctx).Log("info", "Trade executed", map[string]interface{}{
		"sector":    order.SectorID(),
		"commodity": order.CommodityID(),
		"side":      order.Side().String(),
		"quantity":  order.Quantity(),
		"price":     unitPrice,
		"total":     total,
	})

	return &trading.Result{
		Turn:        s.turn,
		SectorID:    order.SectorID(),
		CommodityID: order.CommodityID(),
		Side:        order.Side(),
		Quantity:    order.Quantity(),
		UnitPrice:   unitPrice,
		Total:       total,
		NewSupply:   entry.Supply(),
		NewDemand:   entry.Demand(),
		NewCredits:  newCredits,
		NewHolding:  newHolding,
	}, nil
}

// GetPrices returns the full quote board for a sector
func (s *DynamicMarketSystem) GetPrices(ctx context.Context, sectorID int) (*market.SectorSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sectors[sectorID]
	if !ok {
		return nil, trading.NewUnknownSectorError(sectorID)
	}
	return s.snapshotSector(sectorID, state), nil
}

// BestRoutes ranks profitable buy-here/sell-there opportunities starting
// from the origin sector within the hop budget.
func (s *DynamicMarketSystem) BestRoutes(ctx context.Context, originSector, maxHops, cargoCapacity int) ([]*trading.RouteSuggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sectors[originSector]; !ok {
		return nil, trading.NewUnknownSectorError(originSector)
	}

	snapshots := make(map[int]*market.SectorSnapshot, len(s.sectors))
	neighbors := make(map[int][]int, len(s.sectors))
	for id, state := range s.sectors {
		snapshots[id] = s.snapshotSector(id, state)
		neighbors[id] = state.economy.Neighbors()
	}

	return s.analyzer.BestRoutes(originSector, maxHops, cargoCapacity, snapshots, neighbors), nil
}

// GetHistory returns up to limit trades in a sector, newest first
func (s *DynamicMarketSystem) GetHistory(ctx context.Context, sectorID, limit int) ([]*history.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sectors[sectorID]
	if !ok {
		return nil, trading.NewUnknownSectorError(sectorID)
	}

	state.histMu.Lock()
	defer state.histMu.Unlock()
	return state.ring.Recent(limit), nil
}

// TriggerEvent activates a scripted economic event against the target
// sectors, drawing magnitude and duration from the kind's profile.
func (s *DynamicMarketSystem) TriggerEvent(ctx context.Context, kind events.Kind, sectorIDs []int) (*events.EconomicEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sectorIDs {
		if _, ok := s.sectors[id]; !ok {
			return nil, trading.NewUnknownSectorError(id)
		}
	}

	event, err := s.engine.Trigger(kind, sectorIDs, s.turn)
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log("info", "Economic event triggered", map[string]interface{}{
		"kind":     string(event.Kind()),
		"sectors":  sectorIDs,
		"modifier": event.Modifier(),
		"duration": event.RemainingTurns(),
	})
	return event, nil
}

// TriggerEventWith activates an event with exact magnitudes, for scripted
// world content.
func (s *DynamicMarketSystem) TriggerEventWith(ctx context.Context, kind events.Kind, sectorIDs []int, categories []economy.Category, modifier float64, duration int) (*events.EconomicEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sectorIDs {
		if _, ok := s.sectors[id]; !ok {
			return nil, trading.NewUnknownSectorError(id)
		}
	}
	return s.engine.TriggerWith(kind, sectorIDs, categories, modifier, duration, s.turn)
}

// ActiveEvents returns the economic events currently in force
func (s *DynamicMarketSystem) ActiveEvents() []*events.EconomicEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Active()
}

// MarketAnalysis reports the trading position of one commodity in one sector
func (s *DynamicMarketSystem) MarketAnalysis(ctx context.Context, sectorID int, commodityID string) (*MarketAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sectors[sectorID]
	if !ok {
		return nil, trading.NewUnknownSectorError(sectorID)
	}
	es, ok := state.entries[commodityID]
	if !ok {
		return nil, trading.NewUnknownMarketError(sectorID, commodityID)
	}

	es.mu.Lock()
	entry := es.entry.Clone()
	es.mu.Unlock()

	priceRatio := entry.Price() / entry.BasePrice()
	sdRatio := float64(entry.Supply())
	if entry.Demand() > 0 {
		sdRatio = float64(entry.Supply()) / float64(entry.Demand())
	}

	recommendation := "HOLD"
	switch {
	case priceRatio < 0.8:
		recommendation = "BUY"
	case priceRatio > 1.2:
		recommendation = "SELL"
	}

	return &MarketAnalysis{
		SectorID:          sectorID,
		CommodityID:       commodityID,
		Turn:              s.turn,
		Price:             entry.QuotedPrice(),
		BasePrice:         entry.BasePrice(),
		PriceRatio:        priceRatio,
		Supply:            entry.Supply(),
		Demand:            entry.Demand(),
		SupplyDemandRatio: sdRatio,
		Trend:             entry.Trend(),
		Volatility:        entry.Volatility(),
		Recommendation:    recommendation,
	}, nil
}

// EconomicSummary aggregates the state of every initialized sector
func (s *DynamicMarketSystem) EconomicSummary(ctx context.Context) (*EconomicSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &EconomicSummary{
		Turn:         s.turn,
		Sectors:      len(s.sectors),
		ActiveEvents: len(s.engine.Active()),
		Conditions:   make(map[market.Condition]int),
	}

	totalWealth := 0.0
	for _, state := range s.sectors {
		totalWealth += state.economy.WealthLevel()
		summary.Conditions[sectorCondition(state)]++
		for _, es := range state.entries {
			es.mu.Lock()
			summary.TotalSupply += es.entry.Supply()
			summary.TotalDemand += es.entry.Demand()
			es.mu.Unlock()
		}
	}
	if len(s.sectors) > 0 {
		summary.AverageWealth = totalWealth / float64(len(s.sectors))
	}
	return summary, nil
}

// snapshotSector builds an immutable snapshot of a sector's quote board.
// Caller must hold at least the read lock.
func (s *DynamicMarketSystem) snapshotSector(sectorID int, state *sectorState) *market.SectorSnapshot {
	quotes := make([]market.Quote, 0, len(state.entries))
	for _, id := range s.catalog.IDs() {
		es, ok := state.entries[id]
		if !ok {
			continue
		}
		es.mu.Lock()
		quotes = append(quotes, market.Quote{
			CommodityID: id,
			Price:       es.entry.QuotedPrice(),
			Supply:      es.entry.Supply(),
			Demand:      es.entry.Demand(),
			Volatility:  es.entry.Volatility(),
			Trend:       es.entry.Trend(),
		})
		es.mu.Unlock()
	}

	specialization := ""
	if spec := state.economy.Specialization(); spec != nil {
		specialization = spec.String()
	}

	return &market.SectorSnapshot{
		SectorID:       sectorID,
		Turn:           s.turn,
		Condition:      sectorCondition(state),
		Specialization: specialization,
		WealthLevel:    state.economy.WealthLevel(),
		Quotes:         quotes,
	}
}

// sectorCondition derives the sector's condition from the mean price-to-base
// ratio across its markets.
func sectorCondition(state *sectorState) market.Condition {
	if len(state.entries) == 0 {
		return market.ConditionNormal
	}
	total := 0.0
	count := 0
	for _, es := range state.entries {
		es.mu.Lock()
		total += es.entry.Price() / es.entry.BasePrice()
		count++
		es.mu.Unlock()
	}
	return market.ConditionFromRatio(total / float64(count))
}

func (s *DynamicMarketSystem) sortedSectorIDs() []int {
	ids := make([]int, 0, len(s.sectors))
	for id := range s.sectors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// scaleCount scales a base count by a positive factor, never below 1
func scaleCount(base int, factor float64) int {
	scaled := int(float64(base) * factor)
	if scaled < 1 {
		return 1
	}
	return scaled
}
