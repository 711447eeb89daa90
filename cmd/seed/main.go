package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jwebster45206/wizard-trials/internal/config"
	"github.com/jwebster45206/wizard-trials/internal/logger"
	"github.com/jwebster45206/wizard-trials/internal/storage"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
)

func main() {
	prune := flag.Bool("prune", false, "delete published locations that no longer exist on disk")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logOut, closeLog, err := logger.Output(cfg)
	if err != nil {
		log.Fatal("Failed to open log output:", err)
	}
	defer func() {
		_ = closeLog()
	}()
	l := logger.Setup(cfg, logOut)

	rs, err := storage.NewRedisStorage(cfg.RedisURL, l)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	defer func() {
		_ = rs.Close()
	}()

	ctx := context.Background()
	if err := rs.WaitForConnection(ctx, 10, time.Second); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	fmt.Println("Connected to Redis successfully!")

	res, err := publish(ctx, rs, cfg.DataDir, *prune)
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range res.locations {
		fmt.Printf("✅ Published location: %s\n", name)
	}
	for _, name := range res.pruned {
		fmt.Printf("🗑  Removed location: %s\n", name)
	}
	if res.roster {
		fmt.Println("✅ Published roster")
	}
	if res.campaign {
		fmt.Println("✅ Published campaign")
	}
	fmt.Printf("\n📊 %d locations published from %s\n", len(res.locations), cfg.DataDir)
	fmt.Println("\n💡 Now play against Redis:")
	fmt.Println("   Run: EVENT_STORE=redis go run ./cmd/wizard-trials")
}

type publishResult struct {
	locations []string
	pruned    []string
	roster    bool
	campaign  bool
}

// publish copies the data directory into Redis, validating every file
// before it is written.
func publish(ctx context.Context, rs *storage.RedisStorage, dataDir string, prune bool) (*publishResult, error) {
	res := &publishResult{}

	paths, err := filepath.Glob(filepath.Join(dataDir, "locations", "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list location files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no location files in %s", scenario.ErrNoEventsAvailable, dataDir)
	}
	sort.Strings(paths)

	onDisk := make(map[string]bool)
	for _, path := range paths {
		name := scenario.LocationName(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := rs.PutLocation(ctx, name, data); err != nil {
			return nil, fmt.Errorf("failed to publish %s: %w", path, err)
		}
		onDisk[name] = true
		res.locations = append(res.locations, name)
	}

	if prune {
		published, err := rs.ListLocations(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range published {
			if onDisk[name] {
				continue
			}
			if err := rs.DeleteLocation(ctx, name); err != nil {
				return nil, err
			}
			res.pruned = append(res.pruned, name)
		}
	}

	if data, err := readOptional(filepath.Join(dataDir, "roster.json")); err != nil {
		return nil, err
	} else if data != nil {
		if err := rs.PutRoster(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to publish roster: %w", err)
		}
		res.roster = true
	}

	if data, err := readOptional(filepath.Join(dataDir, "campaign.json")); err != nil {
		return nil, err
	} else if data != nil {
		if err := rs.PutCampaign(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to publish campaign: %w", err)
		}
		res.campaign = true
	}

	return res, nil
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
