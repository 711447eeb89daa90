package scenario

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/dice"
	"github.com/jwebster45206/wizard-trials/pkg/narration"
)

// ChoicePrompt is shown when asking the player to pick an option.
const ChoicePrompt = "Enter the number of your choice: "

// Result describes one resolved execution of an event.
type Result struct {
	Event     *Event
	Choice    int    // 1-based index of the chosen option
	Stat      string // Name of the stat tested
	StatValue int
	Roll      int
	Threshold int
	Status    Status
}

// Play carries the collaborators needed to run an event.
type Play struct {
	Character *actor.Character
	Input     narration.Input
	Output    narration.Sink
	Die       dice.Roller
	Narrator  string // Speaker of the event prompt
}

// ParseChoice converts a 1-based answer into a 0-based option index.
func ParseChoice(answer string, options int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidChoice, strings.TrimSpace(answer))
	}
	if n < 1 || n > options {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidChoice, n, options)
	}
	return n - 1, nil
}

// Execute presents the event, asks for a choice, rolls the die and
// resolves the check. Invalid answers are reported and asked again; any
// other input error aborts the event.
func (e *Event) Execute(ctx context.Context, p Play) (Result, error) {
	out := p.Output
	if out == nil {
		out = narration.Discard
	}
	if len(e.Options) == 0 {
		return Result{}, fmt.Errorf("%w: event has no options", ErrMalformedEventData)
	}

	out.Emit(narration.Line{Kind: narration.KindNarrator, Speaker: p.Narrator, Text: e.Prompt})
	out.Emit(narration.Line{Kind: narration.KindPrompt, Text: "What will you do?"})
	for i, o := range e.Options {
		out.Emit(narration.Line{Kind: narration.KindOption, Text: fmt.Sprintf("%d. %s", i+1, o.Text)})
	}

	idx, err := readChoice(ctx, p.Input, out, len(e.Options))
	if err != nil {
		return Result{}, err
	}
	option := e.Options[idx]

	stat, ok := p.Character.Stat(option.Stat)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q is not a stat of %s", ErrUnknownStat, option.Stat, p.Character.Name)
	}

	roll, err := p.Die.Roll()
	if err != nil {
		return Result{}, err
	}
	out.Emit(narration.Line{Kind: narration.KindRoll, Text: fmt.Sprintf("Dice roll: %d", roll)})
	out.Emit(narration.Line{Kind: narration.KindRoll, Text: fmt.Sprintf("Attempting to solve the challenge with %s...", stat.Name)})

	status := Resolve(stat.Name, stat.Value(), e.PrimaryAttribute, e.SecondaryAttribute, roll)
	if status == StatusFail {
		out.Emit(narration.Line{Kind: narration.KindResult, Text: fmt.Sprintf("%s attempted to use %s but failed.", p.Character.Name, stat.Name)})
	}
	out.Emit(narration.Line{Kind: narration.KindResult, Text: e.Message(status)})

	return Result{
		Event:     e,
		Choice:    idx + 1,
		Stat:      stat.Name,
		StatValue: stat.Value(),
		Roll:      roll,
		Threshold: Threshold(stat.Value()),
		Status:    status,
	}, nil
}

func readChoice(ctx context.Context, in narration.Input, out narration.Sink, options int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		answer, err := in.ReadLine(ctx, ChoicePrompt)
		if err != nil {
			return 0, fmt.Errorf("read choice: %w", err)
		}
		idx, err := ParseChoice(answer, options)
		if errors.Is(err, ErrInvalidChoice) {
			out.Emit(narration.Line{Kind: narration.KindError, Text: fmt.Sprintf("Invalid input. Please enter a number between 1 and %d.", options)})
			continue
		}
		return idx, err
	}
}
