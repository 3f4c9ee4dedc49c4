package lock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLocker implements Locker with one SET NX key per booking resource, for
// deployments running more than one API instance. Keys are acquired in sorted
// order; if any key is already held the whole attempt fails with
// ErrLockNotAcquired and the caller is expected to retry.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
	}
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	token := uuid.NewString()

	var acquired []string
	for _, key := range sorted {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			l.releaseAll(ctx, acquired, token)
			return fmt.Errorf("acquire booking lock %s: %w", key, err)
		}
		if !ok {
			l.releaseAll(ctx, acquired, token)
			return ErrLockNotAcquired
		}
		acquired = append(acquired, key)
	}

	defer l.releaseAll(ctx, acquired, token)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

func (l *RedisLocker) releaseAll(ctx context.Context, keys []string, token string) {
	for i := len(keys) - 1; i >= 0; i-- {
		if _, err := unlockScript.Run(ctx, l.client, []string{keys[i]}, token).Result(); err != nil && !errors.Is(err, redis.Nil) {
			// held keys expire via TTL if the release fails
			continue
		}
	}
}
