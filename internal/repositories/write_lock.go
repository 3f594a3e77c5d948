package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
)

// ErrLockNotHeld is returned by the unlock func when the key expired or was taken over.
var ErrLockNotHeld = errors.New("write lock is no longer held")

// releaseLockScript deletes the key only while it still holds the caller's token.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// WriteLockRepository is a Redis lock that lets one writer at a time
// run a read-modify-write cycle, across every process sharing the key.
type WriteLockRepository struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration // lock expiration, bounds how long a crashed holder blocks others
	retry  time.Duration // pause between acquisition attempts
}

// NewWriteLockRepository creates a lock on key with the given expiration.
func NewWriteLockRepository(client redis.UniversalClient, key string, ttl time.Duration) *WriteLockRepository {
	return &WriteLockRepository{
		client: client,
		key:    key,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
	}
}

// Lock blocks until the lock is acquired or ctx is done.
// The returned func releases the lock.
func (r *WriteLockRepository) Lock(ctx context.Context) (func(context.Context) error, error) {
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, r.key, token, r.ttl).Result()
		if err != nil {
			logger.Log.Errorw("failed to acquire write lock", "key", r.key, "error", err)
			return nil, err
		}
		if ok {
			logger.Log.Debugw("write lock acquired", "key", r.key, "token", token)
			return r.unlockFunc(token), nil
		}

		select {
		case <-ctx.Done():
			logger.Log.Warnw("gave up waiting for write lock", "key", r.key, "error", ctx.Err())
			return nil, ctx.Err()
		case <-time.After(r.retry):
		}
	}
}

func (r *WriteLockRepository) unlockFunc(token string) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := releaseLockScript.Run(ctx, r.client, []string{r.key}, token).Int()

		logger.Log.Debugw("write lock released",
			"key", r.key,
			"token", token,
			"result", n,
			"error", err,
		)

		if err != nil {
			return err
		}
		if n == 0 {
			return ErrLockNotHeld
		}
		return nil
	}
}
