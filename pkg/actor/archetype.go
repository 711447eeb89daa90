package actor

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Archetype selects the preset stat table a character starts from.
type Archetype string

const (
	ArchetypeStudent   Archetype = "student"
	ArchetypeProfessor Archetype = "professor"
)

// StatPreset is one default stat of an archetype.
type StatPreset struct {
	Name        string
	Value       int
	Description string
}

// presets maps each archetype to its stats in declaration order.
// Every archetype declares the same stat names so any event can be played
// by any character.
var presets = map[Archetype][]StatPreset{
	ArchetypeStudent: {
		{Name: "Strength", Value: 5, Description: "Physical power of the student."},
		{Name: "Intelligence", Value: 10, Description: "Student's cognitive ability."},
		{Name: "Agility", Value: 12, Description: "Student's agility in movement."},
	},
	ArchetypeProfessor: {
		{Name: "Strength", Value: 10, Description: "Physical power of the professor."},
		{Name: "Intelligence", Value: 15, Description: "Professor's cognitive ability."},
		{Name: "Agility", Value: 8, Description: "Professor's agility in movement."},
	},
}

// ParseArchetype normalizes a name such as "Student" into an Archetype.
// An empty name selects the student preset.
func ParseArchetype(name string) (Archetype, error) {
	a := Archetype(strings.ToLower(strings.TrimSpace(name)))
	if a == "" {
		return ArchetypeStudent, nil
	}
	if _, ok := presets[a]; !ok {
		return "", fmt.Errorf("unknown archetype %q", name)
	}
	return a, nil
}

// Presets returns a copy of the archetype's stat table.
func (a Archetype) Presets() []StatPreset {
	p := presets[a]
	out := make([]StatPreset, len(p))
	copy(out, p)
	return out
}

// Title returns the display name, e.g. "Professor".
func (a Archetype) Title() string {
	return cases.Title(language.English).String(string(a))
}

// Archetypes lists the known archetypes in sorted order.
func Archetypes() []Archetype {
	out := make([]Archetype, 0, len(presets))
	for a := range presets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StatNames returns every stat name declared by any archetype, sorted.
func StatNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range presets {
		for _, s := range p {
			if !seen[s.Name] {
				seen[s.Name] = true
				names = append(names, s.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}
