// Package locking serializes promotion cycles across worker instances.
// Two workers ticking over the same slot boundary would otherwise race
// their read-then-write promotion sequences.
package locking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens and pings a Redis client
func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

// SlotLock is a slot-keyed mutex backed by Redis SETNX. The lock is not
// released early: it expires with its TTL, and the settled-counterpart
// check keeps any late re-run harmless.
type SlotLock struct {
	client *redis.Client
	ttl    time.Duration
	owner  string
	logger *slog.Logger
}

func NewSlotLock(logger *slog.Logger, client *redis.Client, ttl time.Duration, owner string) *SlotLock {
	return &SlotLock{
		client: client,
		ttl:    ttl,
		owner:  owner,
		logger: logger,
	}
}

// Key builds the lock key for a slot boundary
func Key(slotKey time.Time) string {
	return "settlement:slot:" + slotKey.UTC().Format(time.RFC3339)
}

// Acquire attempts to take the lock for a slot boundary. Returns false
// when another instance already holds it.
func (l *SlotLock) Acquire(ctx context.Context, slotKey time.Time) (bool, error) {
	key := Key(slotKey)

	ok, err := l.client.SetNX(ctx, key, l.owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire slot lock %s: %w", key, err)
	}

	if !ok {
		l.logger.Debug("Slot lock already held", "key", key)
		return false, nil
	}

	l.logger.Debug("Acquired slot lock", "key", key, "owner", l.owner, "ttl", l.ttl.String())
	return true, nil
}
