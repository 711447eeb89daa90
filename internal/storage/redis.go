package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
	"github.com/jwebster45206/wizard-trials/pkg/storage"
	"github.com/redis/go-redis/v9"
)

// Redis keys
const (
	locationsKey      = "locations"
	locationKeyPrefix = "location:"
	rosterKey         = "roster"
	campaignKey       = "campaign"
)

// RedisStorage serves game definitions published to Redis. Each location
// is stored as its raw event JSON under location:<name>, and the set
// "locations" indexes them.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a Redis-backed store from a redis:// URL.
func NewRedisStorage(redisURL string, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
	}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Debug("Redis connection closed")
	return nil
}

// WaitForConnection retries Ping until Redis answers or attempts run out.
func (r *RedisStorage) WaitForConnection(ctx context.Context, attempts int, delay time.Duration) error {
	for i := 0; i < attempts; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(delay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", attempts)
}

func (r *RedisStorage) ListLocations(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, locationsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStorage) GetLocation(ctx context.Context, name string) (*scenario.Location, error) {
	data, err := r.client.Get(ctx, locationKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("location %q: %w", name, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	return scenario.ParseLocation(name, data)
}

// PutLocation validates raw event JSON and publishes it under name.
func (r *RedisStorage) PutLocation(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	if _, err := scenario.ParseLocation(name, data); err != nil {
		return err
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, locationKeyPrefix+name, data, 0)
		pipe.SAdd(ctx, locationsKey, name)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save location", "name", name, "error", err)
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// DeleteLocation removes a published location.
func (r *RedisStorage) DeleteLocation(ctx context.Context, name string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, locationKeyPrefix+name)
		pipe.SRem(ctx, locationsKey, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func (r *RedisStorage) GetRoster(ctx context.Context) (actor.Roster, error) {
	data, err := r.client.Get(ctx, rosterKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return actor.DefaultRoster(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return actor.ParseRoster(data)
}

// PutRoster validates and publishes a roster.
func (r *RedisStorage) PutRoster(ctx context.Context, data []byte) error {
	if _, err := actor.ParseRoster(data); err != nil {
		return err
	}
	if err := r.client.Set(ctx, rosterKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

func (r *RedisStorage) GetCampaign(ctx context.Context) (scenario.Campaign, error) {
	data, err := r.client.Get(ctx, campaignKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return scenario.DefaultCampaign(), nil
	}
	if err != nil {
		return scenario.Campaign{}, fmt.Errorf("failed to load campaign: %w", err)
	}
	return scenario.ParseCampaign(data)
}

// PutCampaign validates and publishes a campaign.
func (r *RedisStorage) PutCampaign(ctx context.Context, data []byte) error {
	if _, err := scenario.ParseCampaign(data); err != nil {
		return err
	}
	if err := r.client.Set(ctx, campaignKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}
	return nil
}
