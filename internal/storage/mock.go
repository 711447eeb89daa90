package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
	"github.com/jwebster45206/wizard-trials/pkg/storage"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	locations map[string]*scenario.Location
	roster    actor.Roster
	campaign  *scenario.Campaign
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ storage.Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		locations: make(map[string]*scenario.Location),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

// AddLocation registers a location under its name
func (m *MockStorage) AddLocation(loc *scenario.Location) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[loc.Name] = loc
}

// SetRoster replaces the roster returned by GetRoster
func (m *MockStorage) SetRoster(r actor.Roster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roster = r
}

// SetCampaign replaces the campaign returned by GetCampaign
func (m *MockStorage) SetCampaign(c scenario.Campaign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaign = &c
}

func (m *MockStorage) ListLocations(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.locations))
	for name := range m.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockStorage) GetLocation(ctx context.Context, name string) (*scenario.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	loc, ok := m.locations[name]
	if !ok {
		return nil, fmt.Errorf("location %q: %w", name, storage.ErrNotFound)
	}
	return loc, nil
}

func (m *MockStorage) GetRoster(ctx context.Context) (actor.Roster, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.roster == nil {
		return actor.DefaultRoster(), nil
	}
	return m.roster, nil
}

func (m *MockStorage) GetCampaign(ctx context.Context) (scenario.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.campaign == nil {
		return scenario.DefaultCampaign(), nil
	}
	return *m.campaign, nil
}
