package scenario

import "errors"

// Failure kinds raised while loading or playing events. Callers match them
// with errors.Is; the wrapping error carries the detail.
var (
	// ErrInvalidChoice means the player's answer was not a number in range.
	// It is recoverable: the player is asked again.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrUnknownStat means an option names a stat the character lacks.
	ErrUnknownStat = errors.New("unknown stat")

	// ErrMalformedEventData means an event definition is missing a field.
	ErrMalformedEventData = errors.New("malformed event data")

	// ErrNoEventsAvailable means a selection pool was empty.
	ErrNoEventsAvailable = errors.New("no events available")
)
