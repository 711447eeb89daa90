package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the outcome of one execution of an event.
type Status int

const (
	StatusUnresolved Status = iota
	StatusPass
	StatusFail
	StatusPartialPass
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusPartialPass:
		return "partial_pass"
	default:
		return "unresolved"
	}
}

// Option is one choice offered by an event.
type Option struct {
	Text string `json:"choice_text"`     // Shown to the player
	Stat string `json:"associated_stat"` // Character stat tested when chosen
}

// Event is an immutable scripted encounter. The outcome of playing it is
// returned by Execute rather than stored, because the same Event may be
// drawn many times from a pool.
type Event struct {
	PrimaryAttribute   string
	SecondaryAttribute string
	Prompt             string
	Options            []Option
	PassMessage        string
	FailMessage        string
	PartialPassMessage string
	IsBoss             bool
}

// Message returns the narration for a resolved status.
func (e *Event) Message(s Status) string {
	switch s {
	case StatusPass:
		return e.PassMessage
	case StatusPartialPass:
		return e.PartialPassMessage
	case StatusFail:
		return e.FailMessage
	default:
		return ""
	}
}

// OptionStats returns the distinct stats the options test, in order.
func (e *Event) OptionStats() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range e.Options {
		if !seen[o.Stat] {
			seen[o.Stat] = true
			out = append(out, o.Stat)
		}
	}
	return out
}

type outcomeRecord struct {
	Message *string `json:"message"`
}

// Record is the wire format of one event definition. Pointer fields let
// the decoder tell an absent field from an empty one.
type Record struct {
	PrimaryAttribute   *string        `json:"primary_attribute"`
	SecondaryAttribute *string        `json:"secondary_attribute"`
	PromptText         *string        `json:"prompt_text"`
	Options            []optionRecord `json:"options"`
	Pass               *outcomeRecord `json:"pass"`
	Fail               *outcomeRecord `json:"fail"`
	PartialPass        *outcomeRecord `json:"partial_pass"`
	IsBossEvent        *bool          `json:"is_boss_event,omitempty"`
	IsVoldemortEvent   *bool          `json:"is_voldemort_event,omitempty"` // Legacy alias of is_boss_event
}

type optionRecord struct {
	ChoiceText     *string `json:"choice_text"`
	AssociatedStat *string `json:"associated_stat"`
}

// Event converts the record into an Event, reporting every missing field.
// index is the record's position and only used in errors.
func (r *Record) Event(index int) (Event, error) {
	var missing []string
	need := func(field string, v *string) string {
		if v == nil {
			missing = append(missing, field)
			return ""
		}
		return *v
	}
	message := func(field string, o *outcomeRecord) string {
		if o == nil {
			missing = append(missing, field)
			return ""
		}
		return need(field+".message", o.Message)
	}

	e := Event{
		PrimaryAttribute:   need("primary_attribute", r.PrimaryAttribute),
		SecondaryAttribute: need("secondary_attribute", r.SecondaryAttribute),
		Prompt:             need("prompt_text", r.PromptText),
		PassMessage:        message("pass", r.Pass),
		FailMessage:        message("fail", r.Fail),
		PartialPassMessage: message("partial_pass", r.PartialPass),
	}
	if r.Options == nil {
		missing = append(missing, "options")
	} else if len(r.Options) == 0 {
		return Event{}, fmt.Errorf("%w: event %d: options must not be empty", ErrMalformedEventData, index)
	}
	for i, o := range r.Options {
		e.Options = append(e.Options, Option{
			Text: need(fmt.Sprintf("options[%d].choice_text", i), o.ChoiceText),
			Stat: need(fmt.Sprintf("options[%d].associated_stat", i), o.AssociatedStat),
		})
	}
	switch {
	case r.IsBossEvent != nil:
		e.IsBoss = *r.IsBossEvent
	case r.IsVoldemortEvent != nil:
		e.IsBoss = *r.IsVoldemortEvent
	}

	if len(missing) > 0 {
		return Event{}, fmt.Errorf("%w: event %d: missing %s", ErrMalformedEventData, index, strings.Join(missing, ", "))
	}
	return e, nil
}

// Record converts an Event back into its wire format.
func (e *Event) Record() Record {
	str := func(s string) *string { return &s }
	r := Record{
		PrimaryAttribute:   str(e.PrimaryAttribute),
		SecondaryAttribute: str(e.SecondaryAttribute),
		PromptText:         str(e.Prompt),
		Pass:               &outcomeRecord{Message: str(e.PassMessage)},
		Fail:               &outcomeRecord{Message: str(e.FailMessage)},
		PartialPass:        &outcomeRecord{Message: str(e.PartialPassMessage)},
	}
	r.Options = make([]optionRecord, 0, len(e.Options))
	for _, o := range e.Options {
		r.Options = append(r.Options, optionRecord{ChoiceText: str(o.Text), AssociatedStat: str(o.Stat)})
	}
	if e.IsBoss {
		boss := true
		r.IsBossEvent = &boss
	}
	return r
}

// MarshalJSON writes the event in its definition format.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}

// UnmarshalJSON reads one event definition, failing with
// ErrMalformedEventData when a required field is absent.
func (e *Event) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEventData, err)
	}
	ev, err := r.Event(0)
	if err != nil {
		return err
	}
	*e = ev
	return nil
}
