package events

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/sectormarket-go/internal/domain/economy"
)

// Status tracks the event lifecycle: Pending -> Active -> Expired.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
)

// EconomicEvent is a time-bounded macro modifier affecting price formation
// in one or more sectors for one or more commodity categories. Its modifier
// is recomputed into prices from the live active set every turn; nothing is
// ever subtracted back out, so expiry cannot drift.
type EconomicEvent struct {
	id           string
	kind         Kind
	sectorIDs    []int
	categories   []economy.Category // empty = all categories
	modifier     float64
	remaining    int
	creationTurn int
	status       Status
	description  string
}

// NewEvent creates a pending economic event with validation. An empty
// category list means the event affects every category.
func NewEvent(kind Kind, sectorIDs []int, categories []economy.Category, modifier float64, duration, creationTurn int) (*EconomicEvent, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if len(sectorIDs) == 0 {
		return nil, ErrNoTargetSectors
	}
	if modifier <= 0 {
		return nil, ErrInvalidModifier
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	for _, c := range categories {
		if !c.IsValid() {
			return nil, economy.ErrInvalidCategory
		}
	}

	profile, err := ProfileFor(kind)
	if err != nil {
		return nil, err
	}

	sectorsCopy := make([]int, len(sectorIDs))
	copy(sectorsCopy, sectorIDs)
	categoriesCopy := make([]economy.Category, len(categories))
	copy(categoriesCopy, categories)

	return &EconomicEvent{
		id:           uuid.New().String(),
		kind:         kind,
		sectorIDs:    sectorsCopy,
		categories:   categoriesCopy,
		modifier:     modifier,
		remaining:    duration,
		creationTurn: creationTurn,
		status:       StatusPending,
		description:  profile.Description,
	}, nil
}

func (e *EconomicEvent) ID() string {
	return e.id
}

func (e *EconomicEvent) Kind() Kind {
	return e.kind
}

// SectorIDs returns a defensive copy of the targeted sector ids
func (e *EconomicEvent) SectorIDs() []int {
	out := make([]int, len(e.sectorIDs))
	copy(out, e.sectorIDs)
	return out
}

// Categories returns a defensive copy of the targeted categories; empty
// means all categories
func (e *EconomicEvent) Categories() []economy.Category {
	out := make([]economy.Category, len(e.categories))
	copy(out, e.categories)
	return out
}

func (e *EconomicEvent) Modifier() float64 {
	return e.modifier
}

func (e *EconomicEvent) RemainingTurns() int {
	return e.remaining
}

func (e *EconomicEvent) CreationTurn() int {
	return e.creationTurn
}

func (e *EconomicEvent) Status() Status {
	return e.status
}

func (e *EconomicEvent) Description() string {
	return e.description
}

// Targets reports whether the event applies to the given sector and category
func (e *EconomicEvent) Targets(sectorID int, category economy.Category) bool {
	if e.status != StatusActive {
		return false
	}
	found := false
	for _, id := range e.sectorIDs {
		if id == sectorID {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if len(e.categories) == 0 {
		return true
	}
	for _, c := range e.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Activate transitions a pending event into the active set
func (e *EconomicEvent) Activate() error {
	if e.status != StatusPending {
		return ErrNotPending
	}
	e.status = StatusActive
	return nil
}

// TickDuration burns one turn of remaining duration, expiring the event when
// it reaches zero. Duration never goes negative.
func (e *EconomicEvent) TickDuration() (expired bool, err error) {
	if e.status == StatusExpired {
		return true, ErrAlreadyExpired
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.status = StatusExpired
		return true, nil
	}
	return false, nil
}
