package actor

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Roster is the ordered list of characters offered at selection time.
type Roster []CharacterSpec

// DefaultRoster returns the built-in protagonists. They share the student
// preset but each carries distinct overrides.
func DefaultRoster() Roster {
	return Roster{
		{ID: "harry_potter", Name: "Harry Potter", Archetype: ArchetypeStudent, Stats: map[string]int{"Strength": 7, "Agility": 14}},
		{ID: "hermione_granger", Name: "Hermione Granger", Archetype: ArchetypeStudent, Stats: map[string]int{"Intelligence": 15, "Agility": 9}},
		{ID: "ron_weasley", Name: "Ron Weasley", Archetype: ArchetypeStudent, Stats: map[string]int{"Strength": 10, "Intelligence": 7}},
	}
}

// ParseRoster decodes a JSON array of character specs and validates it.
func ParseRoster(data []byte) (Roster, error) {
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadRoster reads a roster from a JSON file.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return ParseRoster(data)
}

// Validate checks that every spec builds and that names are unique.
func (r Roster) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("roster is empty")
	}
	fold := cases.Fold()
	seen := make(map[string]bool)
	for i := range r {
		if _, err := NewCharacterFromSpec(&r[i]); err != nil {
			return fmt.Errorf("roster entry %d: %w", i+1, err)
		}
		key := fold.String(strings.TrimSpace(r[i].Name))
		if seen[key] {
			return fmt.Errorf("roster entry %d: duplicate name %q", i+1, r[i].Name)
		}
		seen[key] = true
	}
	return nil
}

// Names returns the display names in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, s := range r {
		names[i] = s.Name
	}
	return names
}

// Find resolves a player's answer to a roster entry. The answer may be a
// 1-based number, a name or an ID; names and IDs match case-insensitively.
func (r Roster) Find(answer string) (*CharacterSpec, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, false
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(r) {
			return nil, false
		}
		return &r[n-1], true
	}

	fold := cases.Fold()
	want := fold.String(answer)
	for i := range r {
		if fold.String(strings.TrimSpace(r[i].Name)) == want || (r[i].ID != "" && fold.String(r[i].ID) == want) {
			return &r[i], true
		}
	}
	return nil, false
}
