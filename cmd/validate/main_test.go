package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validEvents = `[
	{
		"primary_attribute": "Agility",
		"secondary_attribute": "Strength",
		"prompt_text": "A bludger is heading your way.",
		"options": [
			{"choice_text": "Dodge", "associated_stat": "Agility"},
			{"choice_text": "Bat it away", "associated_stat": "Strength"}
		],
		"pass": {"message": "It sails past."},
		"fail": {"message": "Ouch."},
		"partial_pass": {"message": "It clips your broom."}
	},
	{
		"primary_attribute": "Intelligence",
		"secondary_attribute": "Agility",
		"prompt_text": "Voldemort attacks.",
		"options": [
			{"choice_text": "Shield charm", "associated_stat": "Intelligence"},
			{"choice_text": "Dive", "associated_stat": "Agility"}
		],
		"pass": {"message": "Blocked."},
		"fail": {"message": "Hit."},
		"partial_pass": {"message": "Partly blocked."},
		"is_voldemort_event": true
	}
]`

func writeEvents(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestValidateFile_Valid(t *testing.T) {
	path := writeEvents(t, "quidditch_pitch.json", validEvents)
	if err := NewEventValidator().validateFile(path); err != nil {
		t.Fatalf("validateFile() error = %v", err)
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  string
	}{
		{
			name:     "bad filename",
			filename: "Quidditch-Pitch.json",
			content:  validEvents,
			wantErr:  "lowercase snake_case",
		},
		{
			name:     "invalid json",
			filename: "broken.json",
			content:  `[{`,
			wantErr:  "invalid JSON",
		},
		{
			name:     "unknown field",
			filename: "extra.json",
			content:  strings.Replace(validEvents, `"prompt_text"`, `"difficulty": 3, "prompt_text"`, 1),
			wantErr:  "strict JSON",
		},
		{
			name:     "missing field",
			filename: "missing.json",
			content:  strings.Replace(validEvents, `"fail": {"message": "Ouch."},`, ``, 1),
			wantErr:  "missing fail",
		},
		{
			name:     "unknown stat",
			filename: "charm.json",
			content:  strings.Replace(validEvents, `"associated_stat": "Strength"`, `"associated_stat": "Charm"`, 1),
			wantErr:  "uses stat 'Charm'",
		},
		{
			name:     "secondary not offered",
			filename: "offered.json",
			content:  strings.Replace(validEvents, `"secondary_attribute": "Strength"`, `"secondary_attribute": "Intelligence"`, 1),
			wantErr:  "secondary_attribute 'Intelligence' is not offered",
		},
		{
			name:     "no boss events",
			filename: "calm.json",
			content:  strings.Replace(validEvents, `"is_voldemort_event": true`, `"is_voldemort_event": false`, 1),
			wantErr:  "no boss events",
		},
		{
			name:     "conflicting boss flags",
			filename: "conflict.json",
			content:  strings.Replace(validEvents, `"is_voldemort_event": true`, `"is_voldemort_event": true, "is_boss_event": false`, 1),
			wantErr:  "different values",
		},
		{
			name:     "empty",
			filename: "empty.json",
			content:  `[]`,
			wantErr:  "no events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEvents(t, tt.filename, tt.content)
			err := NewEventValidator().validateFile(path)
			if err == nil {
				t.Fatalf("validateFile() succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validateFile() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidLocationFilename(t *testing.T) {
	tests := map[string]bool{
		"great_hall":   true,
		"x.great_hall": true,
		"a":            true,
		"GreatHall":    false,
		"great-hall":   false,
		"great_hall_":  false,
	}
	for name, want := range tests {
		if got := isValidLocationFilename(name); got != want {
			t.Errorf("isValidLocationFilename(%q) = %v, want %v", name, got, want)
		}
	}
}
