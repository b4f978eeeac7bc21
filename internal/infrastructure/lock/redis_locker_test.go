package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLockerMutualExclusion(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "P100")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "P100")
	assert.ErrorIs(t, err, shared.ErrImportInProgress)

	otherRelease, err := locker.Acquire(ctx, "P200")
	require.NoError(t, err)
	otherRelease()

	release()

	again, err := locker.Acquire(ctx, "P100")
	require.NoError(t, err)
	again()
}

func TestRedisLockerReleaseIdempotent(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute)

	release, err := locker.Acquire(context.Background(), "P100")
	require.NoError(t, err)
	release()
	release()

	again, err := locker.Acquire(context.Background(), "P100")
	require.NoError(t, err)
	again()
}

func TestRedisLockerExpiredLockNotReleasedByStaleOwner(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute)
	ctx := context.Background()

	staleRelease, err := locker.Acquire(ctx, "P100")
	require.NoError(t, err)

	// TTL elapses, another node takes over
	mr.FastForward(2 * time.Minute)
	_, err = locker.Acquire(ctx, "P100")
	require.NoError(t, err)

	// the stale owner's release must not free the new owner's lock
	staleRelease()
	_, err = locker.Acquire(ctx, "P100")
	assert.ErrorIs(t, err, shared.ErrImportInProgress)
}

func TestRedisLockerKeyHasTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute)

	_, err := locker.Acquire(context.Background(), "P100")
	require.NoError(t, err)

	ttl := mr.TTL("bom:import:lock:P100")
	assert.Greater(t, ttl, time.Duration(0))
}
