package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaapco/snaap_api/internal/config"
)

func newTestSessionCache(t *testing.T) (*SessionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(&config.RedisConfig{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return NewSessionCache(client), mr
}

func TestSessionRoundTrip(t *testing.T) {
	sessions, _ := newTestSessionCache(t)
	ctx := context.Background()

	id, err := sessions.Create(ctx, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	alive, err := sessions.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, alive)

	require.NoError(t, sessions.Revoke(ctx, id))

	alive, err = sessions.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestSessionExpiresWithTTL(t *testing.T) {
	sessions, mr := newTestSessionCache(t)
	ctx := context.Background()

	id, err := sessions.Create(ctx, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	alive, err := sessions.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestSessionRevokeUnknownIsNoOp(t *testing.T) {
	sessions, _ := newTestSessionCache(t)
	assert.NoError(t, sessions.Revoke(context.Background(), "never-issued"))
}

func TestSessionIDsAreUnique(t *testing.T) {
	sessions, _ := newTestSessionCache(t)
	ctx := context.Background()

	first, err := sessions.Create(ctx, time.Hour)
	require.NoError(t, err)
	second, err := sessions.Create(ctx, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
