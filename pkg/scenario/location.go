package scenario

import (
	"fmt"

	"github.com/jwebster45206/wizard-trials/pkg/dice"
)

// Location is a named pool of events that selection draws from.
type Location struct {
	Name   string  `json:"name"`
	Events []Event `json:"events"`
}

// RandomEvent returns a uniformly random event from the whole pool.
func (l *Location) RandomEvent(src dice.Source) (*Event, error) {
	return l.pick(src, func(*Event) bool { return true }, "")
}

// RandomRegularEvent returns a uniformly random non-boss event.
func (l *Location) RandomRegularEvent(src dice.Source) (*Event, error) {
	return l.pick(src, func(e *Event) bool { return !e.IsBoss }, "regular ")
}

// RandomBossEvent returns a uniformly random boss event.
func (l *Location) RandomBossEvent(src dice.Source) (*Event, error) {
	return l.pick(src, func(e *Event) bool { return e.IsBoss }, "boss ")
}

// RegularEvents returns the non-boss subset of the pool.
func (l *Location) RegularEvents() []*Event {
	return l.filter(func(e *Event) bool { return !e.IsBoss })
}

// BossEvents returns the boss subset of the pool.
func (l *Location) BossEvents() []*Event {
	return l.filter(func(e *Event) bool { return e.IsBoss })
}

func (l *Location) filter(keep func(*Event) bool) []*Event {
	var out []*Event
	for i := range l.Events {
		if keep(&l.Events[i]) {
			out = append(out, &l.Events[i])
		}
	}
	return out
}

func (l *Location) pick(src dice.Source, keep func(*Event) bool, pool string) (*Event, error) {
	events := l.filter(keep)
	idx, ok := dice.Pick(src, len(events))
	if !ok {
		return nil, fmt.Errorf("%w: location %q has no %sevents", ErrNoEventsAvailable, l.Name, pool)
	}
	return events[idx], nil
}

// RandomLocation returns a uniformly random location.
func RandomLocation(src dice.Source, locations []*Location) (*Location, error) {
	idx, ok := dice.Pick(src, len(locations))
	if !ok {
		return nil, fmt.Errorf("%w: no locations loaded", ErrNoEventsAvailable)
	}
	return locations[idx], nil
}

// Merge combines several locations into one pool under the given name.
func Merge(name string, locations ...*Location) *Location {
	merged := &Location{Name: name}
	for _, l := range locations {
		merged.Events = append(merged.Events, l.Events...)
	}
	return merged
}
