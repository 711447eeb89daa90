package actor

import (
	"reflect"
	"strings"
	"testing"
)

func statValues(c *Character) map[string]int {
	out := make(map[string]int)
	for _, s := range c.Stats() {
		out[s.Name] = s.Value()
	}
	return out
}

func TestNewCharacter_Presets(t *testing.T) {
	tests := []struct {
		archetype Archetype
		want      map[string]int
	}{
		{ArchetypeStudent, map[string]int{"Strength": 5, "Intelligence": 10, "Agility": 12}},
		{ArchetypeProfessor, map[string]int{"Strength": 10, "Intelligence": 15, "Agility": 8}},
	}
	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			c, err := NewCharacter("Someone", tt.archetype)
			if err != nil {
				t.Fatalf("NewCharacter() error = %v", err)
			}
			if got := statValues(c); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("stats = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharacter_StatsDeclarationOrder(t *testing.T) {
	c, err := NewCharacter("Minerva", ArchetypeProfessor)
	if err != nil {
		t.Fatalf("NewCharacter() error = %v", err)
	}
	var names []string
	for _, s := range c.Stats() {
		names = append(names, s.Name)
	}
	want := []string{"Strength", "Intelligence", "Agility"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("Stats() order = %v, want %v", names, want)
	}
}

func TestNewCharacterFromSpec_Overrides(t *testing.T) {
	c, err := NewCharacterFromSpec(&CharacterSpec{
		Name:      "Neville",
		Archetype: "Student",
		Stats:     map[string]int{"Strength": 11, "Intelligence": 500},
	})
	if err != nil {
		t.Fatalf("NewCharacterFromSpec() error = %v", err)
	}
	want := map[string]int{"Strength": 11, "Intelligence": DefaultStatMax, "Agility": 12}
	if got := statValues(c); !reflect.DeepEqual(got, want) {
		t.Errorf("stats = %v, want %v", got, want)
	}
	if c.Archetype != ArchetypeStudent {
		t.Errorf("Archetype = %q, want %q", c.Archetype, ArchetypeStudent)
	}
}

func TestNewCharacterFromSpec_Errors(t *testing.T) {
	tests := []struct {
		name    string
		spec    *CharacterSpec
		wantErr string
	}{
		{"nil spec", nil, "spec cannot be nil"},
		{"missing name", &CharacterSpec{Name: "  "}, "name is required"},
		{"unknown archetype", &CharacterSpec{Name: "Filch", Archetype: "caretaker"}, "unknown archetype"},
		{"unknown stat", &CharacterSpec{Name: "Luna", Stats: map[string]int{"Charisma": 3}}, "unknown stat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharacterFromSpec(tt.spec)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCharacter_StatIsExactMatch(t *testing.T) {
	c, _ := NewCharacter("Ginny", ArchetypeStudent)
	if _, ok := c.Stat("Agility"); !ok {
		t.Error("Stat(Agility) not found")
	}
	if _, ok := c.Stat("agility"); ok {
		t.Error("Stat(agility) matched, want exact-case lookup")
	}
}

func TestCharacter_StatsShareValues(t *testing.T) {
	c, _ := NewCharacter("Ginny", ArchetypeStudent)
	c.Stats()[0].Modify(3)
	if s, _ := c.Stat("Strength"); s.Value() != 8 {
		t.Errorf("Strength = %d after Modify, want 8", s.Value())
	}
}

func TestCharacter_String(t *testing.T) {
	c, _ := NewCharacter("Severus", ArchetypeProfessor)
	want := "Character: Severus (Professor)\nStats: Strength: 10, Intelligence: 15, Agility: 8"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStatNames(t *testing.T) {
	want := []string{"Agility", "Intelligence", "Strength"}
	if got := StatNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("StatNames() = %v, want %v", got, want)
	}
}

func TestParseArchetype(t *testing.T) {
	for in, want := range map[string]Archetype{"": ArchetypeStudent, "Professor": ArchetypeProfessor, " student ": ArchetypeStudent} {
		got, err := ParseArchetype(in)
		if err != nil || got != want {
			t.Errorf("ParseArchetype(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseArchetype("auror"); err == nil {
		t.Error("ParseArchetype(auror) succeeded, want error")
	}
}

func TestArchetype_Title(t *testing.T) {
	for a, want := range map[Archetype]string{ArchetypeStudent: "Student", ArchetypeProfessor: "Professor", "": ""} {
		if got := a.Title(); got != want {
			t.Errorf("Archetype(%q).Title() = %q, want %q", string(a), got, want)
		}
	}
}
