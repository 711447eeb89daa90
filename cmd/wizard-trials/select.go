package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/narration"
)

const characterPrompt = "Enter the number or name of your character: "

// selectCharacter lists the roster and asks until the answer names or
// numbers one of its characters.
func selectCharacter(ctx context.Context, roster actor.Roster, in narration.Input, out narration.Sink) (*actor.CharacterSpec, error) {
	out.Emit(narration.Line{Kind: narration.KindPrompt, Text: "Choose your character:"})
	for i, spec := range roster {
		out.Emit(narration.Line{Kind: narration.KindOption, Text: fmt.Sprintf("%d. %s", i+1, spec.Name)})
	}

	for {
		answer, err := in.ReadLine(ctx, characterPrompt)
		if err != nil {
			return nil, fmt.Errorf("read character: %w", err)
		}
		if spec, ok := roster.Find(answer); ok {
			return spec, nil
		}
		out.Emit(narration.Line{
			Kind: narration.KindError,
			Text: fmt.Sprintf("Invalid input. Please enter either the number or name of a character (%s).", strings.Join(roster.Names(), ", ")),
		})
	}
}
