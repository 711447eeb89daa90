package scenario

// Skill check constants.
const (
	BaseThreshold   = 4  // Minimum roll for a full pass
	HighStatValue   = 10 // Stat values at or above this lower the threshold
	HighStatBonus   = 1
	PartialPassSlop = 1 // How far below threshold a secondary-stat roll may land
)

// Threshold returns the minimum die roll for a full pass with a stat of
// the given value.
func Threshold(value int) int {
	t := BaseThreshold
	if value >= HighStatValue {
		t -= HighStatBonus
	}
	return t
}

// Resolve maps a chosen stat, the event's privileged attributes and a die
// roll to an outcome. It is a pure function.
//
// The checks are ordered: a stat equal to primary can only Pass or Fail,
// even when primary and secondary name the same stat and the roll would
// have met the partial threshold.
func Resolve(statName string, statValue int, primary, secondary string, roll int) Status {
	threshold := Threshold(statValue)
	if roll >= threshold && statName == primary {
		return StatusPass
	}
	if roll >= threshold-PartialPassSlop && statName == secondary && statName != primary {
		return StatusPartialPass
	}
	return StatusFail
}
