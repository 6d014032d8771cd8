package hold

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker serializes booking attempts for the same room slot. Acquire
// returns false when another request currently holds an overlapping-key
// slot, which short-circuits the check-then-insert sequence before it
// races. The database exclusion constraint remains the authority; the
// hold just keeps concurrent requests from both paying for one slot.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// SlotKey builds the hold key for a booking attempt. Start and end are
// minutes since midnight, so two requests for the exact same slot always
// collide on the key.
func SlotKey(roomID, date string, startMinute, endMinute int) string {
	return fmt.Sprintf("hold:%s:%s:%d-%d", roomID, date, startMinute, endMinute)
}

type redisLocker struct {
	client redis.UniversalClient
}

// NewRedisLocker returns a Locker backed by redis SET NX with expiry.
func NewRedisLocker(client redis.UniversalClient) Locker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire hold %s: %w", key, err)
	}
	return ok, nil
}

func (l *redisLocker) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release hold %s: %w", key, err)
	}
	return nil
}

type noopLocker struct{}

// NewNoopLocker returns a Locker that always grants the hold. Used when
// redis is not configured; the exclusion constraint still guards inserts.
func NewNoopLocker() Locker {
	return noopLocker{}
}

func (noopLocker) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (noopLocker) Release(context.Context, string) error                        { return nil }
