package scenario

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validEvents = `[
	{
		"primary_attribute": "Agility",
		"secondary_attribute": "Intelligence",
		"prompt_text": "A bludger is heading straight for you!",
		"options": [
			{"choice_text": "Dodge it", "associated_stat": "Agility"},
			{"choice_text": "Cast a shield charm", "associated_stat": "Intelligence"}
		],
		"pass": {"message": "You dodge with ease."},
		"fail": {"message": "The bludger knocks you flat."},
		"partial_pass": {"message": "The charm flickers but holds."}
	},
	{
		"primary_attribute": "Intelligence",
		"secondary_attribute": "Strength",
		"prompt_text": "The Dark Lord raises his wand.",
		"options": [{"choice_text": "Expelliarmus", "associated_stat": "Intelligence"}],
		"pass": {"message": "His wand flies away."},
		"fail": {"message": "Your spell is deflected."},
		"partial_pass": {"message": "The spells lock together."},
		"is_boss_event": true
	},
	{
		"primary_attribute": "Strength",
		"secondary_attribute": "Agility",
		"prompt_text": "Legacy boss flag.",
		"options": [{"choice_text": "Push", "associated_stat": "Strength"}],
		"pass": {"message": "p"},
		"fail": {"message": "f"},
		"partial_pass": {"message": "pp"},
		"is_voldemort_event": true
	}
]`

func TestParseEvents(t *testing.T) {
	events, err := ParseEvents([]byte(validEvents))
	if err != nil {
		t.Fatalf("ParseEvents() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	e := events[0]
	if e.PrimaryAttribute != "Agility" || e.SecondaryAttribute != "Intelligence" {
		t.Errorf("attributes = %q/%q", e.PrimaryAttribute, e.SecondaryAttribute)
	}
	if len(e.Options) != 2 || e.Options[1].Stat != "Intelligence" || e.Options[1].Text != "Cast a shield charm" {
		t.Errorf("options = %+v", e.Options)
	}
	if e.IsBoss {
		t.Error("first event is_boss defaulted to true")
	}
	if e.Message(StatusPartialPass) != "The charm flickers but holds." {
		t.Errorf("partial message = %q", e.Message(StatusPartialPass))
	}
	if !events[1].IsBoss {
		t.Error("is_boss_event not decoded")
	}
	if !events[2].IsBoss {
		t.Error("is_voldemort_event alias not decoded")
	}
}

func TestParseEvents_Malformed(t *testing.T) {
	base := map[string]any{
		"primary_attribute":   "Agility",
		"secondary_attribute": "Intelligence",
		"prompt_text":         "p",
		"options":             []any{map[string]any{"choice_text": "c", "associated_stat": "Agility"}},
		"pass":                map[string]any{"message": "p"},
		"fail":                map[string]any{"message": "f"},
		"partial_pass":        map[string]any{"message": "pp"},
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{"missing primary", func(m map[string]any) { delete(m, "primary_attribute") }, "primary_attribute"},
		{"missing secondary", func(m map[string]any) { delete(m, "secondary_attribute") }, "secondary_attribute"},
		{"missing prompt", func(m map[string]any) { delete(m, "prompt_text") }, "prompt_text"},
		{"missing options", func(m map[string]any) { delete(m, "options") }, "options"},
		{"empty options", func(m map[string]any) { m["options"] = []any{} }, "options"},
		{"missing pass", func(m map[string]any) { delete(m, "pass") }, "pass"},
		{"missing fail message", func(m map[string]any) { m["fail"] = map[string]any{} }, "fail.message"},
		{"missing partial", func(m map[string]any) { delete(m, "partial_pass") }, "partial_pass"},
		{"option without stat", func(m map[string]any) {
			m["options"] = []any{map[string]any{"choice_text": "c"}}
		}, "options[0].associated_stat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := make(map[string]any)
			for k, v := range base {
				rec[k] = v
			}
			tt.mutate(rec)
			data, _ := json.Marshal([]any{base, rec})

			_, err := ParseEvents(data)
			if !errors.Is(err, ErrMalformedEventData) {
				t.Fatalf("error = %v, want ErrMalformedEventData", err)
			}
			if !strings.Contains(err.Error(), "event 1") || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name event 1 and %s", err, tt.field)
			}
		})
	}
}

func TestParseEvents_InvalidJSON(t *testing.T) {
	if _, err := ParseEvents([]byte(`{"not": "an array"}`)); !errors.Is(err, ErrMalformedEventData) {
		t.Errorf("error = %v, want ErrMalformedEventData", err)
	}
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	events, err := ParseEvents([]byte(validEvents))
	if err != nil {
		t.Fatalf("ParseEvents() error = %v", err)
	}
	data, err := json.Marshal(events)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	again, err := ParseEvents(data)
	if err != nil {
		t.Fatalf("ParseEvents(marshaled) error = %v", err)
	}
	if len(again) != len(events) || again[1].Prompt != events[1].Prompt || !again[2].IsBoss {
		t.Errorf("round trip mismatch: %+v", again)
	}
}

func TestEvent_OptionStats(t *testing.T) {
	e := Event{Options: []Option{{Stat: "Agility"}, {Stat: "Strength"}, {Stat: "Agility"}}}
	got := e.OptionStats()
	if len(got) != 2 || got[0] != "Agility" || got[1] != "Strength" {
		t.Errorf("OptionStats() = %v", got)
	}
}

func TestLoadLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "great_hall.json")
	if err := os.WriteFile(path, []byte(validEvents), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	loc, err := LoadLocation(path)
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	if loc.Name != "great_hall" || len(loc.Events) != 3 {
		t.Errorf("LoadLocation() = %s with %d events", loc.Name, len(loc.Events))
	}

	if _, err := LoadLocation(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadLocation(missing) succeeded")
	}
}
