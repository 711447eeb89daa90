package actor

import (
	"fmt"
	"sort"
	"strings"
)

// CharacterSpec is the serializable definition of a playable character.
// Stats holds per-character overrides applied on top of the archetype
// preset; keys must name stats the preset declares.
type CharacterSpec struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name"`
	Archetype Archetype      `json:"archetype,omitempty"`
	Stats     map[string]int `json:"stats,omitempty"`
}

// Character is the runtime representation of a player character.
// It owns its statistics exclusively; the set of stats is fixed at
// construction and only their values change.
type Character struct {
	Name      string
	Archetype Archetype
	stats     []*Statistic
}

// NewCharacterFromSpec builds a Character by starting from the archetype
// preset and applying the spec's stat overrides.
func NewCharacterFromSpec(spec *CharacterSpec) (*Character, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec cannot be nil")
	}
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, fmt.Errorf("character name is required")
	}

	archetype, err := ParseArchetype(string(spec.Archetype))
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", name, err)
	}

	c := &Character{
		Name:      name,
		Archetype: archetype,
	}
	for _, p := range archetype.Presets() {
		stat := NewStatistic(p.Name, p.Value)
		stat.Description = p.Description
		c.stats = append(c.stats, stat)
	}

	// Apply overrides in key order so errors are reported deterministically
	keys := make([]string, 0, len(spec.Stats))
	for k := range spec.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		stat, ok := c.Stat(k)
		if !ok {
			return nil, fmt.Errorf("character %q: override for unknown stat %q", name, k)
		}
		stat.set(spec.Stats[k])
	}

	return c, nil
}

// NewCharacter creates a character from a preset without overrides.
func NewCharacter(name string, archetype Archetype) (*Character, error) {
	return NewCharacterFromSpec(&CharacterSpec{Name: name, Archetype: archetype})
}

// Stats returns the character's stats in declaration order.
func (c *Character) Stats() []*Statistic {
	out := make([]*Statistic, len(c.stats))
	copy(out, c.stats)
	return out
}

// Stat finds a stat by exact name.
func (c *Character) Stat(name string) (*Statistic, bool) {
	for _, s := range c.stats {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func (c *Character) String() string {
	parts := make([]string, 0, len(c.stats))
	for _, s := range c.stats {
		parts = append(parts, s.String())
	}
	return fmt.Sprintf("Character: %s (%s)\nStats: %s", c.Name, c.Archetype.Title(), strings.Join(parts, ", "))
}
