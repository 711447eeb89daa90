package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
	"github.com/jwebster45206/wizard-trials/pkg/storage"
)

const (
	locationsDir = "locations"
	rosterFile   = "roster.json"
	campaignFile = "campaign.json"
)

// FileStorage serves game definitions from a data directory:
//
//	<dataDir>/locations/<name>.json  event pools
//	<dataDir>/roster.json            optional roster
//	<dataDir>/campaign.json          optional campaign voice
type FileStorage struct {
	dataDir string
	logger  *slog.Logger
}

// Ensure FileStorage implements Storage interface
var _ storage.Storage = (*FileStorage)(nil)

// NewFileStorage creates a filesystem-backed store rooted at dataDir.
func NewFileStorage(dataDir string, logger *slog.Logger) *FileStorage {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &FileStorage{
		dataDir: dataDir,
		logger:  logger,
	}
}

func (f *FileStorage) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dataDir)
	if err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", f.dataDir)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) ListLocations(ctx context.Context) ([]string, error) {
	dir := filepath.Join(f.dataDir, locationsDir)
	var names []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}
		names = append(names, scenario.LocationName(path))
		return nil
	})
	if err != nil {
		f.logger.Error("Failed to walk locations directory", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

func (f *FileStorage) GetLocation(ctx context.Context, name string) (*scenario.Location, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	path := filepath.Join(f.dataDir, locationsDir, name+".json")
	f.logger.Debug("Loading location", "name", name, "full_path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("location %q: %w", name, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read location file: %w", err)
	}
	return scenario.ParseLocation(name, data)
}

func (f *FileStorage) GetRoster(ctx context.Context) (actor.Roster, error) {
	path := filepath.Join(f.dataDir, rosterFile)
	r, err := actor.LoadRoster(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("No roster file, using default roster", "path", path)
		return actor.DefaultRoster(), nil
	}
	return r, err
}

func (f *FileStorage) GetCampaign(ctx context.Context) (scenario.Campaign, error) {
	path := filepath.Join(f.dataDir, campaignFile)
	c, err := scenario.LoadCampaign(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("No campaign file, using default campaign", "path", path)
		return scenario.DefaultCampaign(), nil
	}
	return c, err
}

// validateName rejects names that would escape the locations directory.
func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid location name %q", name)
	}
	return nil
}
