// Package dice provides the randomness used by the game: a Source for
// uniform picks and Rollers for die faces. Both are injectable so that
// event selection and skill checks can be replayed from a seed or scripted
// outright in tests.
package dice

import (
	"fmt"

	"github.com/jwebster45206/d20"
)

// D6 is the number of faces on the die used for skill checks.
const D6 = 6

// Source is the randomness provider for picks.
type Source interface {
	// IntN returns a non-negative random int in [0, n). n must be > 0.
	IntN(n int) int
}

// NewSource returns a Source whose picks are reproducible from seed.
func NewSource(seed int64) Source {
	return NewDie(D6, seed)
}

// Roller produces one die face per call.
type Roller interface {
	Roll() (int, error)
}

// Die is a fair die backed by a d20 roller. It doubles as a Source so one
// seeded roller drives both event selection and skill checks.
type Die struct {
	Sides  int
	roller *d20.Roller
}

// NewDie returns a die whose rolls are reproducible from seed.
func NewDie(sides int, seed int64) *Die {
	return newDie(sides, d20.NewRoller(seed))
}

// NewRandomDie returns an unseeded die.
func NewRandomDie(sides int) *Die {
	return newDie(sides, d20.NewRandomRoller())
}

func newDie(sides int, roller *d20.Roller) *Die {
	if sides <= 0 {
		sides = D6
	}
	return &Die{Sides: sides, roller: roller}
}

// Roll returns a face in [1, Sides].
func (d *Die) Roll() (int, error) {
	out, err := d.roller.Dice(1, uint(d.Sides)).Roll()
	if err != nil {
		return 0, fmt.Errorf("roll 1d%d: %w", d.Sides, err)
	}
	return out.Value, nil
}

// IntN rolls a 1dn and shifts it to [0, n). It returns 0 when n is not
// positive.
func (d *Die) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	out, err := d.roller.Dice(1, uint(n)).Roll()
	if err != nil {
		return 0
	}
	return out.Value - 1
}

// LoadedDie returns its faces in order, wrapping around when exhausted.
// It is used to replay or script skill checks.
type LoadedDie struct {
	faces []int
	next  int
}

// NewLoadedDie returns a die that rolls the given faces in sequence.
func NewLoadedDie(faces ...int) *LoadedDie {
	return &LoadedDie{faces: faces}
}

// Roll returns the next scripted face. An empty die always rolls 1.
func (d *LoadedDie) Roll() (int, error) {
	if len(d.faces) == 0 {
		return 1, nil
	}
	face := d.faces[d.next%len(d.faces)]
	d.next++
	return face, nil
}

// Rolled reports how many faces have been rolled so far.
func (d *LoadedDie) Rolled() int {
	return d.next
}

// Pick returns a uniformly random index in [0, n). It returns false when
// n is not positive so callers can report an empty pool before sampling.
func Pick(src Source, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return src.IntN(n), true
}
