package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jwebster45206/wizard-trials/pkg/actor"
	"github.com/jwebster45206/wizard-trials/pkg/scenario"
	"github.com/jwebster45206/wizard-trials/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	rs, err := NewRedisStorage("redis://"+mr.Addr(), testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}
	t.Cleanup(func() {
		_ = rs.Close()
		mr.Close()
	})
	return rs, mr
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	_, err := NewRedisStorage("not a url", testLogger())
	assert.Error(t, err)
}

func TestRedisStorage_PutAndGetLocation(t *testing.T) {
	rs, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, rs.Ping(ctx))

	require.NoError(t, rs.PutLocation(ctx, "great_hall", []byte(testEvents)))
	require.NoError(t, rs.PutLocation(ctx, "astronomy_tower", []byte(testEvents)))

	assert.True(t, mr.Exists("location:great_hall"))

	names, err := rs.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"astronomy_tower", "great_hall"}, names)

	loc, err := rs.GetLocation(ctx, "great_hall")
	require.NoError(t, err)
	assert.Len(t, loc.Events, 2)
	assert.Equal(t, "Peeves drops a water balloon.", loc.Events[0].Prompt)

	locs, err := storage.LoadLocations(ctx, rs)
	require.NoError(t, err)
	assert.Len(t, locs, 2)

	require.NoError(t, rs.DeleteLocation(ctx, "great_hall"))
	_, err = rs.GetLocation(ctx, "great_hall")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	names, err = rs.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"astronomy_tower"}, names)
}

func TestRedisStorage_PutRejectsMalformed(t *testing.T) {
	rs, mr := setupTestRedis(t)
	ctx := context.Background()

	err := rs.PutLocation(ctx, "broken", []byte(malformedEvents))
	assert.ErrorIs(t, err, scenario.ErrMalformedEventData)
	assert.False(t, mr.Exists("location:broken"))

	assert.Error(t, rs.PutLocation(ctx, "../x", []byte(testEvents)))
	assert.Error(t, rs.PutRoster(ctx, []byte(`[]`)))
	assert.Error(t, rs.PutCampaign(ctx, []byte(`{`)))
}

func TestRedisStorage_MalformedStoredLocation(t *testing.T) {
	rs, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("location:bad", malformedEvents))
	_, err := rs.GetLocation(context.Background(), "bad")
	assert.ErrorIs(t, err, scenario.ErrMalformedEventData)
}

func TestRedisStorage_RosterAndCampaign(t *testing.T) {
	rs, _ := setupTestRedis(t)
	ctx := context.Background()

	r, err := rs.GetRoster(ctx)
	require.NoError(t, err)
	assert.Equal(t, actor.DefaultRoster().Names(), r.Names())

	c, err := rs.GetCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dumbledore", c.Narrator)

	require.NoError(t, rs.PutRoster(ctx, []byte(`[{"name":"Luna Lovegood","stats":{"Intelligence":13}}]`)))
	require.NoError(t, rs.PutCampaign(ctx, []byte(`{"adversary":"Grindelwald"}`)))

	r, err = rs.GetRoster(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Luna Lovegood"}, r.Names())

	c, err = rs.GetCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grindelwald", c.Adversary)
	assert.Equal(t, "Dumbledore", c.Narrator)
}

func TestRedisStorage_WaitForConnection(t *testing.T) {
	rs, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, rs.WaitForConnection(ctx, 3, 10*time.Millisecond))

	mr.Close()
	assert.Error(t, rs.WaitForConnection(ctx, 2, 10*time.Millisecond))
}
