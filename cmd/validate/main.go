package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <events.json> [more.json...]\n", os.Args[0])
		os.Exit(1)
	}

	validator := NewEventValidator()
	failed := false
	for _, filename := range os.Args[1:] {
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}

	fmt.Println("Event files are valid!")
}

// EventValidator checks event files beyond what loading requires.
type EventValidator struct {
	knownStats map[string]bool
	errors     []string
}

func NewEventValidator() *EventValidator {
	known := make(map[string]bool)
	for _, name := range actor.StatNames() {
		known[name] = true
	}
	return &EventValidator{knownStats: known}
}

func (v *EventValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("event file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidLocationFilename(nameWithoutExt) {
		return fmt.Errorf("event filename '%s' must be lowercase snake_case (e.g., great_hall.json, not great-hall.json or GreatHall.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var records []scenario.Record
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&records); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateRecords(records)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *EventValidator) validateRecords(records []scenario.Record) {
	if len(records) == 0 {
		v.addError("file contains no events")
		return
	}

	var regular, boss int
	for i := range records {
		r := &records[i]
		if r.IsBossEvent != nil && r.IsVoldemortEvent != nil && *r.IsBossEvent != *r.IsVoldemortEvent {
			v.addError(fmt.Sprintf("event %d sets is_boss_event and is_voldemort_event to different values", i))
		}

		e, err := r.Event(i)
		if err != nil {
			v.addError(err.Error())
			continue
		}
		if e.IsBoss {
			boss++
		} else {
			regular++
		}
		v.validateEvent(&e, i)
	}

	if regular == 0 {
		v.addError("file has no regular events")
	}
	if boss == 0 {
		v.addError("file has no boss events")
	}
}

func (v *EventValidator) validateEvent(e *scenario.Event, index int) {
	if strings.TrimSpace(e.Prompt) == "" {
		v.addError(fmt.Sprintf("event %d has an empty prompt_text", index))
	}

	offered := make(map[string]bool)
	for i, o := range e.Options {
		if strings.TrimSpace(o.Text) == "" {
			v.addError(fmt.Sprintf("event %d option %d has an empty choice_text", index, i+1))
		}
		if !v.knownStats[o.Stat] {
			v.addError(fmt.Sprintf("event %d option %d uses stat '%s', which no archetype has (known: %s)",
				index, i+1, o.Stat, strings.Join(actor.StatNames(), ", ")))
		}
		offered[o.Stat] = true
	}

	if !offered[e.PrimaryAttribute] {
		v.addError(fmt.Sprintf("event %d primary_attribute '%s' is not offered by any option", index, e.PrimaryAttribute))
	}
	if !offered[e.SecondaryAttribute] {
		v.addError(fmt.Sprintf("event %d secondary_attribute '%s' is not offered by any option", index, e.SecondaryAttribute))
	}
	if e.PrimaryAttribute == e.SecondaryAttribute {
		v.addError(fmt.Sprintf("event %d uses '%s' as both primary and secondary attribute, so it can never partially pass", index, e.PrimaryAttribute))
	}
}

func (v *EventValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidLocationFilename(name string) bool {
	// Allow 'x.' prefix for experimental locations
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
