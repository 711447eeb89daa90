package actor

import "fmt"

// Default bounds for a Statistic.
const (
	DefaultStatMin = 0
	DefaultStatMax = 100
)

// Statistic is a bounded numeric attribute of a character.
// The value always stays within [Min, Max] and only changes through Modify.
type Statistic struct {
	Name        string
	Description string
	value       int
	min         int
	max         int
}

// NewStatistic creates a statistic with the default bounds. The initial
// value is clamped into range.
func NewStatistic(name string, value int) *Statistic {
	return NewBoundedStatistic(name, value, DefaultStatMin, DefaultStatMax)
}

// NewBoundedStatistic creates a statistic with custom bounds. Swapped
// bounds are reordered and the initial value is clamped into range.
func NewBoundedStatistic(name string, value, lo, hi int) *Statistic {
	if lo > hi {
		lo, hi = hi, lo
	}
	s := &Statistic{Name: name, min: lo, max: hi}
	s.value = s.clamp(value)
	return s
}

func (s *Statistic) Value() int { return s.value }
func (s *Statistic) Min() int   { return s.min }
func (s *Statistic) Max() int   { return s.max }

// Modify adds amount to the value, saturating at Min and Max.
func (s *Statistic) Modify(amount int) {
	// min <= value <= max holds, so max-value and min-value cannot overflow
	switch {
	case amount > 0 && amount > s.max-s.value:
		s.value = s.max
	case amount < 0 && amount < s.min-s.value:
		s.value = s.min
	default:
		s.value += amount
	}
}

func (s *Statistic) set(v int) {
	s.value = s.clamp(v)
}

func (s *Statistic) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *Statistic) String() string {
	return fmt.Sprintf("%s: %d", s.Name, s.value)
}
