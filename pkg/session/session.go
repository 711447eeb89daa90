// Package session runs one playthrough: regular events until enough have
// been passed, then a fixed number of boss rounds that decide the outcome.
//
// A Session is single threaded. Each Step blocks on the player's input and
// performs exactly one event.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/dice"
	"github.com/jwebster45206/wizard-trials/pkg/narration"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
)

const (
	// RequiredEventsToTriggerBoss is how many regular events must be
	// passed before the boss encounter starts.
	RequiredEventsToTriggerBoss = 3

	// BossRounds is the fixed length of the boss encounter.
	BossRounds = 2
)

// State is the position of a session in its state machine.
type State int

const (
	StatePlaying State = iota
	StateBossEncounter
	StateFinished
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateBossEncounter:
		return "boss_encounter"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is the final result of a session.
type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "undecided"
	}
}

// Turn records one executed event.
type Turn struct {
	Number    int    // 1-based across the whole session
	Location  string // Location the event was drawn from
	BossRound int    // 1-based boss round, 0 for regular events
	Result    scenario.Result
}

// Options configures a new Session.
type Options struct {
	ID        uuid.UUID // Generated when zero
	Character *actor.Character
	Locations []*scenario.Location
	Campaign  scenario.Campaign
	Input     narration.Input
	Output    narration.Sink
	Source    dice.Source // Used for location and event selection
	Die       dice.Roller // Defaults to an unseeded d6
	Logger    *slog.Logger
}

// Session sequences events for one character.
type Session struct {
	id        uuid.UUID
	character *actor.Character
	locations []*scenario.Location
	campaign  scenario.Campaign
	in        narration.Input
	out       narration.Sink
	src       dice.Source
	die       dice.Roller
	logger    *slog.Logger

	state           State
	eventsCompleted int
	successCount    int
	bossRound       int
	bossDefeated    bool
	history         []Turn
}

// New validates the options and returns a session in the playing state.
func New(opts Options) (*Session, error) {
	if opts.Character == nil {
		return nil, WithStage(StageLoad, fmt.Errorf("character is required"))
	}
	if opts.Input == nil {
		return nil, WithStage(StageLoad, fmt.Errorf("input is required"))
	}
	if len(opts.Locations) == 0 {
		return nil, WithStage(StageLoad, fmt.Errorf("%w: no locations loaded", scenario.ErrNoEventsAvailable))
	}

	src, die := opts.Source, opts.Die
	if src == nil || die == nil {
		d := dice.NewRandomDie(dice.D6)
		if src == nil {
			src = d
		}
		if die == nil {
			die = d
		}
	}
	out := opts.Output
	if out == nil {
		out = narration.Discard
	}
	id := opts.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		id:        id,
		character: opts.Character,
		locations: opts.Locations,
		campaign:  opts.Campaign.WithDefaults(),
		in:        opts.Input,
		out:       out,
		src:       src,
		die:       die,
		logger:    logger.With("session_id", id.String()),
		state:     StatePlaying,
	}, nil
}

func (s *Session) ID() uuid.UUID               { return s.id }
func (s *Session) Character() *actor.Character { return s.character }
func (s *Session) State() State                { return s.state }
func (s *Session) EventsCompleted() int        { return s.eventsCompleted }
func (s *Session) SuccessCount() int           { return s.successCount }
func (s *Session) BossDefeated() bool          { return s.bossDefeated }

// History returns every executed turn in order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Outcome reports the result once finished, OutcomeUndecided before.
func (s *Session) Outcome() Outcome {
	if s.state != StateFinished {
		return OutcomeUndecided
	}
	if s.bossDefeated {
		return OutcomeWon
	}
	return OutcomeLost
}

// Run steps the session until it finishes or an event fails.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	s.logger.Info("Session started",
		"character", s.character.Name,
		"archetype", s.character.Archetype,
		"locations", len(s.locations))

	for s.state != StateFinished {
		if err := s.Step(ctx); err != nil {
			s.logger.Error("Session aborted", "state", s.state, "error", err)
			return OutcomeUndecided, err
		}
	}

	s.logger.Info("Session finished", "outcome", s.Outcome(), "turns", len(s.history))
	return s.Outcome(), nil
}

// Step performs exactly one event: a regular event while playing or one
// round of the boss encounter.
func (s *Session) Step(ctx context.Context) error {
	switch s.state {
	case StatePlaying:
		return s.playRegular(ctx)
	case StateBossEncounter:
		return s.playBossRound(ctx)
	default:
		return ErrFinished
	}
}

func (s *Session) playRegular(ctx context.Context) error {
	loc, ev, err := s.selectEvent(false)
	if err != nil {
		return err
	}
	res, err := s.execute(ctx, loc, ev, 0)
	if err != nil {
		return err
	}

	if res.Status == scenario.StatusPass {
		s.eventsCompleted++
		s.emit(narration.KindProgress, "", fmt.Sprintf("Completed events: %d/%d", s.eventsCompleted, RequiredEventsToTriggerBoss))
	}
	if s.eventsCompleted >= RequiredEventsToTriggerBoss {
		s.transition(StateBossEncounter)
		s.emit(narration.KindNarrator, s.campaign.Narrator, s.say(s.campaign.BossIntro))
	}
	return nil
}

func (s *Session) playBossRound(ctx context.Context) error {
	loc, ev, err := s.selectEvent(true)
	if err != nil {
		return err
	}
	res, err := s.execute(ctx, loc, ev, s.bossRound+1)
	if err != nil {
		return err
	}
	s.bossRound++

	switch res.Status {
	case scenario.StatusPass:
		s.successCount++
	case scenario.StatusFail:
		s.successCount--
	}

	if s.successCount > 0 {
		s.emit(narration.KindProgress, "", s.say(s.campaign.UpperHand))
	} else {
		s.emit(narration.KindProgress, "", s.say(s.campaign.LosingHand))
	}

	if s.bossRound >= BossRounds {
		s.bossDefeated = s.successCount > 0
		if s.bossDefeated {
			s.emit(narration.KindSystem, "", s.say(s.campaign.Victory))
		} else {
			s.emit(narration.KindSystem, "", s.say(s.campaign.Defeat))
		}
		s.transition(StateFinished)
		s.emit(narration.KindSystem, "", "Game Over.")
	}
	return nil
}

// selectEvent picks a random location and a random event from its boss or
// regular subset.
func (s *Session) selectEvent(boss bool) (*scenario.Location, *scenario.Event, error) {
	loc, err := scenario.RandomLocation(s.src, s.locations)
	if err != nil {
		return nil, nil, WithStage(StageSelection, err)
	}
	var ev *scenario.Event
	if boss {
		ev, err = loc.RandomBossEvent(s.src)
	} else {
		ev, err = loc.RandomRegularEvent(s.src)
	}
	if err != nil {
		return nil, nil, WithStage(StageSelection, err)
	}
	return loc, ev, nil
}

func (s *Session) execute(ctx context.Context, loc *scenario.Location, ev *scenario.Event, bossRound int) (scenario.Result, error) {
	res, err := ev.Execute(ctx, scenario.Play{
		Character: s.character,
		Input:     s.in,
		Output:    s.out,
		Die:       s.die,
		Narrator:  s.campaign.Narrator,
	})
	if err != nil {
		return scenario.Result{}, WithStage(StageResolution, err)
	}

	turn := Turn{
		Number:    len(s.history) + 1,
		Location:  loc.Name,
		BossRound: bossRound,
		Result:    res,
	}
	s.history = append(s.history, turn)
	s.logger.Debug("Event resolved",
		"turn", turn.Number,
		"location", loc.Name,
		"boss_round", bossRound,
		"stat", res.Stat,
		"roll", res.Roll,
		"threshold", res.Threshold,
		"status", res.Status)
	return res, nil
}

func (s *Session) transition(to State) {
	s.logger.Info("Session state changed", "from", s.state, "to", to)
	s.state = to
}

func (s *Session) say(msg string) string {
	return s.campaign.Say(msg, s.character.Name)
}

func (s *Session) emit(kind narration.Kind, speaker, text string) {
	s.out.Emit(narration.Line{Kind: kind, Speaker: speaker, Text: text})
}
