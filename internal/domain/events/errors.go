package events

import "errors"

// Domain errors for economic events

var (
	// ErrInvalidKind is returned when an event kind is not in the closed set
	ErrInvalidKind = errors.New("invalid event kind")

	// ErrInvalidModifier is returned when a price modifier is not positive
	ErrInvalidModifier = errors.New("event price modifier must be positive")

	// ErrInvalidDuration is returned when a duration is not positive
	ErrInvalidDuration = errors.New("event duration must be positive")

	// ErrNoTargetSectors is returned when an event targets no sectors
	ErrNoTargetSectors = errors.New("event must target at least one sector")

	// ErrNotPending is returned when activating an event twice
	ErrNotPending = errors.New("event is not pending")

	// ErrAlreadyExpired is returned when ticking an expired event
	ErrAlreadyExpired = errors.New("event already expired")
)
