package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/wizard-trials/internal/config"
	"github.com/jwebster45206/wizard-trials/internal/logger"
	istorage "github.com/jwebster45206/wizard-trials/internal/storage"
	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/dice"
	"github.com/jwebster45206/wizard-trials/pkg/narration"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
	"github.com/jwebster45206/wizard-trials/pkg/session"
	"github.com/jwebster45206/wizard-trials/pkg/storage"
)

// mergedLocationName names the single pool built by -merge.
const mergedLocationName = "all"

type flags struct {
	events []string
	merge  bool
	roster string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("wizard-trials", flag.ContinueOnError)
	fs.SetOutput(stderr)
	events := fs.String("events", "", "comma-separated event files to load instead of the configured store")
	merge := fs.Bool("merge", false, "merge all loaded event files into one location")
	roster := fs.String("roster", "", "roster file to load instead of the configured store")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	f := &flags{merge: *merge, roster: *roster}
	for _, p := range strings.Split(*events, ",") {
		if p = strings.TrimSpace(p); p != "" {
			f.events = append(f.events, p)
		}
	}
	return f, nil
}

// run plays one game and returns the process exit code. Every fatal error
// is printed as "<stage> failed: <err>".
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, session.WithStage(session.StageLoad, err))
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, session.WithStage(session.StageLoad, err))
		return 1
	}

	logOut, closeLog, err := logger.Output(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, session.WithStage(session.StageLoad, err))
		return 1
	}
	defer func() {
		_ = closeLog()
	}()
	log := logger.Setup(cfg, logOut)

	if err := play(ctx, cfg, f, log, stdin, stdout); err != nil {
		logger.WithError(log, err).Debug("Game aborted")
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func play(ctx context.Context, cfg *config.Config, f *flags, log *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return session.WithStage(session.StageLoad, err)
	}
	defer func() {
		_ = store.Close()
	}()

	locations, err := loadLocations(ctx, store, f)
	if err != nil {
		return session.WithStage(session.StageLoad, err)
	}
	warnUnknownStats(log, locations)

	roster, err := loadRoster(ctx, store, f)
	if err != nil {
		return session.WithStage(session.StageLoad, err)
	}
	campaign, err := store.GetCampaign(ctx)
	if err != nil {
		return session.WithStage(session.StageLoad, err)
	}
	log.Info("Game data loaded", "locations", len(locations), "characters", len(roster), "campaign", campaign.Name)

	recorder := narration.NewRecorder()
	out := narration.Tee(newConsoleSink(stdout, wrapWidth), recorder)
	in := newLineInput(stdin, stdout)

	out.Emit(narration.Line{Kind: narration.KindNarrator, Speaker: campaign.Narrator, Text: campaign.Say(campaign.Welcome, "")})

	var spec *actor.CharacterSpec
	if cfg.UI == config.UITUI {
		spec, err = runPicker(ctx, "Choose your character", roster, stdin, stdout)
	} else {
		spec, err = selectCharacter(ctx, roster, in, out)
	}
	if err != nil {
		return session.WithStage(session.StageSelection, err)
	}
	character, err := actor.NewCharacterFromSpec(spec)
	if err != nil {
		return session.WithStage(session.StageSelection, err)
	}

	out.Emit(narration.Line{Kind: narration.KindSystem, Text: "You have chosen: " + character.Name})
	_, _ = fmt.Fprintln(stdout, renderStatSheet(lipgloss.NewRenderer(stdout), character))
	recorder.Emit(narration.Line{Kind: narration.KindSystem, Text: character.String()})

	die := dice.NewRandomDie(dice.D6)
	if cfg.HasSeed {
		die = dice.NewDie(dice.D6, cfg.Seed)
	}

	s, err := session.New(session.Options{
		Character: character,
		Locations: locations,
		Campaign:  campaign,
		Input:     in,
		Output:    out,
		Source:    die,
		Die:       die,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	if cfg.HasSeed {
		logger.WithSessionID(log, s.ID().String()).Info("Dice seeded", "seed", cfg.Seed)
	}

	outcome, err := s.Run(ctx)
	if err != nil {
		return err
	}
	log.Debug("Game complete", "outcome", outcome.String(), "events_completed", s.EventsCompleted())

	if cfg.CopyTranscript {
		if err := clipboard.WriteAll(recorder.Transcript()); err != nil {
			logger.WithError(log, err).Warn("Failed to copy transcript to clipboard")
		} else {
			_, _ = fmt.Fprintln(stdout, "Transcript copied to clipboard.")
		}
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	switch cfg.EventStore {
	case config.StoreRedis:
		rs, err := istorage.NewRedisStorage(cfg.RedisURL, log)
		if err != nil {
			return nil, err
		}
		if err := rs.WaitForConnection(ctx, 5, 500*time.Millisecond); err != nil {
			_ = rs.Close()
			return nil, err
		}
		return rs, nil
	default:
		return istorage.NewFileStorage(cfg.DataDir, log), nil
	}
}

// loadLocations reads the -events files when given, otherwise every
// location in the store. Each file is its own location unless merged.
func loadLocations(ctx context.Context, store storage.Storage, f *flags) ([]*scenario.Location, error) {
	var locations []*scenario.Location
	if len(f.events) > 0 {
		for _, path := range f.events {
			loc, err := scenario.LoadLocation(path)
			if err != nil {
				return nil, err
			}
			locations = append(locations, loc)
		}
	} else {
		var err error
		if locations, err = storage.LoadLocations(ctx, store); err != nil {
			return nil, err
		}
	}

	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: no locations loaded", scenario.ErrNoEventsAvailable)
	}
	if f.merge {
		return []*scenario.Location{scenario.Merge(mergedLocationName, locations...)}, nil
	}
	return locations, nil
}

func loadRoster(ctx context.Context, store storage.Storage, f *flags) (actor.Roster, error) {
	if f.roster != "" {
		return actor.LoadRoster(f.roster)
	}
	return store.GetRoster(ctx)
}

// warnUnknownStats logs options that no archetype can ever resolve. Such
// an event still loads; choosing the option aborts the session.
func warnUnknownStats(log *slog.Logger, locations []*scenario.Location) {
	known := make(map[string]bool)
	for _, name := range actor.StatNames() {
		known[name] = true
	}
	for _, loc := range locations {
		for i := range loc.Events {
			for _, stat := range loc.Events[i].OptionStats() {
				if !known[stat] {
					log.Warn("Event option uses a stat no archetype has",
						"location", loc.Name,
						"event", i,
						"stat", stat)
				}
			}
		}
	}
}
