package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 5 * time.Minute

// releaseScript deletes the lock key only when it still holds our token,
// so a lock that expired and was re-acquired elsewhere is never released
// by the stale owner.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is the multi-node ProjectLocker backed by SetNX with a
// TTL. The TTL bounds how long a crashed importer can wedge a project.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker creates a redis-backed project locker. A non-positive
// ttl falls back to the default.
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl}
}

// Acquire takes the project's lock or fails with ErrImportInProgress
func (l *RedisLocker) Acquire(ctx context.Context, noProject string) (func(), error) {
	key := l.key(noProject)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire import lock for %s: %w", noProject, err)
	}
	if !ok {
		return nil, shared.ErrImportInProgress
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// the request context may already be cancelled on error paths
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
		})
	}
	return release, nil
}

func (l *RedisLocker) key(noProject string) string {
	return "bom:import:lock:" + noProject
}

var _ ProjectLocker = (*RedisLocker)(nil)
