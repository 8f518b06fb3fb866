package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/handshake/pkg/adapters/redis"
	"github.com/stretchr/testify/assert"
)

func TestRedisLocker_LockUnlock(t *testing.T) {
	mr, client := newTestClient(t)

	locker := redis.NewLocker(client, "test:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session1", 5*time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, unlock)

	assert.True(t, mr.Exists("test:lock:session1"), "Lock key should be set in Redis")

	err = unlock(ctx)
	assert.NoError(t, err)

	assert.False(t, mr.Exists("test:lock:session1"), "Lock key should be removed after unlock")
}

func TestRedisLocker_ContentionTimesOut(t *testing.T) {
	_, client := newTestClient(t)

	locker := redis.NewLocker(client, "test:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "busy", 30*time.Second)
	assert.NoError(t, err)
	defer func() { _ = unlock(context.Background()) }()

	// A second holder cannot acquire while the first one is live; give up
	// via context timeout.
	timeoutCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(timeoutCtx, "busy", 30*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
