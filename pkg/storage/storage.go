package storage

import (
	"context"
	"errors"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Storage defines a unified interface for loading game definitions.
// Implementations serve event pools, the character roster and the campaign
// voice; none of them hold progress between runs.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Location operations
	ListLocations(ctx context.Context) ([]string, error)
	GetLocation(ctx context.Context, name string) (*scenario.Location, error)

	// Roster operations. A store without a roster returns actor.DefaultRoster.
	GetRoster(ctx context.Context) (actor.Roster, error)

	// Campaign operations. A store without a campaign returns
	// scenario.DefaultCampaign.
	GetCampaign(ctx context.Context) (scenario.Campaign, error)
}

// LoadLocations fetches every location the store lists, in listing order.
func LoadLocations(ctx context.Context, s Storage) ([]*scenario.Location, error) {
	names, err := s.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	locations := make([]*scenario.Location, 0, len(names))
	for _, name := range names {
		loc, err := s.GetLocation(ctx, name)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}
