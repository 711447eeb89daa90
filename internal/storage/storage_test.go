package storage

import (
	"io"
	"log/slog"
)

const testEvents = `[
	{
		"primary_attribute": "Agility",
		"secondary_attribute": "Intelligence",
		"prompt_text": "Peeves drops a water balloon.",
		"options": [{"choice_text": "Jump aside", "associated_stat": "Agility"}],
		"pass": {"message": "You stay dry."},
		"fail": {"message": "You are soaked."},
		"partial_pass": {"message": "Only your shoes get wet."}
	},
	{
		"primary_attribute": "Intelligence",
		"secondary_attribute": "Agility",
		"prompt_text": "The Dark Lord appears.",
		"options": [{"choice_text": "Duel", "associated_stat": "Intelligence"}],
		"pass": {"message": "You win the exchange."},
		"fail": {"message": "You are thrown back."},
		"partial_pass": {"message": "Stalemate."},
		"is_boss_event": true
	}
]`

const malformedEvents = `[{"primary_attribute": "Agility"}]`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
