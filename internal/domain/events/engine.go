package events

import (
	"fmt"
	"math/rand"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
)

// Engine owns the active economic event set. It is mutated only during the
// turn advance, which is single-writer by contract, so it carries no locking
// of its own.
type Engine struct {
	probability float64 // per-turn chance of spawning a random event
	rng         *rand.Rand
	active      []*EconomicEvent
}

// NewEngine creates an event engine. probability is the per-turn trigger
// chance in [0, 1]; seed makes random event generation reproducible.
func NewEngine(probability float64, seed int64) (*Engine, error) {
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("event probability must be within [0, 1], got %0.3f", probability)
	}
	return &Engine{
		probability: probability,
		rng:         rand.New(rand.NewSource(seed)),
	}, nil
}

// Active returns the currently active events. Callers must treat the
// returned events as read-only.
func (g *Engine) Active() []*EconomicEvent {
	out := make([]*EconomicEvent, len(g.active))
	copy(out, g.active)
	return out
}

// ModifierFor returns the product of all active event modifiers targeting
// the (sector, category) pair. 1.0 when nothing applies.
func (g *Engine) ModifierFor(sectorID int, category economy.Category) float64 {
	modifier := 1.0
	for _, event := range g.active {
		if event.Targets(sectorID, category) {
			modifier *= event.Modifier()
		}
	}
	return modifier
}

// Tick advances the event set by one turn: burn durations, purge expired
// events, then roll for a new random event against the given sector ids.
// Returns the spawned event, if any. Expired events are purged before the
// next price update so they cannot leak influence.
func (g *Engine) Tick(turn int, sectorIDs []int) (*EconomicEvent, error) {
	survivors := g.active[:0]
	for _, event := range g.active {
		expired, err := event.TickDuration()
		if err != nil {
			return nil, err
		}
		if !expired {
			survivors = append(survivors, event)
		}
	}
	g.active = survivors

	if len(sectorIDs) == 0 || g.rng.Float64() >= g.probability {
		return nil, nil
	}
	return g.spawnRandom(turn, sectorIDs)
}

// Trigger creates and activates a scripted event of the given kind against
// the target sectors, drawing magnitude and duration from the kind profile.
// Exposed so mission and world systems can cause market disturbances.
func (g *Engine) Trigger(kind Kind, sectorIDs []int, turn int) (*EconomicEvent, error) {
	profile, err := ProfileFor(kind)
	if err != nil {
		return nil, err
	}
	return g.spawn(kind, profile, sectorIDs, turn)
}

func (g *Engine) spawnRandom(turn int, sectorIDs []int) (*EconomicEvent, error) {
	kinds := Kinds()
	kind := kinds[g.rng.Intn(len(kinds))]
	profile, err := ProfileFor(kind)
	if err != nil {
		return nil, err
	}

	target := []int{sectorIDs[g.rng.Intn(len(sectorIDs))]}
	return g.spawn(kind, profile, target, turn)
}

func (g *Engine) spawn(kind Kind, profile Profile, sectorIDs []int, turn int) (*EconomicEvent, error) {
	modifier := profile.MinModifier + g.rng.Float64()*(profile.MaxModifier-profile.MinModifier)
	duration := profile.MinDuration
	if profile.MaxDuration > profile.MinDuration {
		duration += g.rng.Intn(profile.MaxDuration - profile.MinDuration + 1)
	}

	// Pick one target category from the kind's candidate pool.
	var categories []economy.Category
	if len(profile.Categories) > 0 {
		categories = []economy.Category{profile.Categories[g.rng.Intn(len(profile.Categories))]}
	}

	event, err := NewEvent(kind, sectorIDs, categories, modifier, duration, turn)
	if err != nil {
		return nil, err
	}
	if err := event.Activate(); err != nil {
		return nil, err
	}
	g.active = append(g.active, event)
	return event, nil
}

// TriggerWith creates and activates an event with explicit modifier,
// duration and categories, bypassing the random ranges. Used by scripted
// world content and tests that need exact magnitudes.
func (g *Engine) TriggerWith(kind Kind, sectorIDs []int, categories []economy.Category, modifier float64, duration, turn int) (*EconomicEvent, error) {
	event, err := NewEvent(kind, sectorIDs, categories, modifier, duration, turn)
	if err != nil {
		return nil, err
	}
	if err := event.Activate(); err != nil {
		return nil, err
	}
	g.active = append(g.active, event)
	return event, nil
}
