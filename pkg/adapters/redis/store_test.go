package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/handshake/pkg/adapters/redis"
	"github.com/aretw0/handshake/pkg/ports"
	"github.com/aretw0/handshake/pkg/protocol"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunSessionStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	sessionID := "session-ttl"

	sess := protocol.NewSession(protocol.StateClosed)
	sess.CurrentState = protocol.StateListen

	err := store.Save(ctx, sessionID, sess)
	assert.NoError(t, err)

	sessions, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, sessions, sessionID)

	// Advance miniredis past the TTL: value expires and List prunes
	// the index entry.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, sessionID)
	assert.ErrorIs(t, err, protocol.ErrSessionNotFound)

	sessions, err = store.List(ctx)
	assert.NoError(t, err)
	assert.NotContains(t, sessions, sessionID)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("verifier:run:"))
	ctx := context.Background()

	err := store.Save(ctx, "abc", protocol.NewSession(protocol.StateClosed))
	require.NoError(t, err)

	assert.True(t, mr.Exists("verifier:run:abc"), "Session key should use the configured prefix")
}
