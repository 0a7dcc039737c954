package cache

import (
	"context"
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/platform/obs"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisScheduleCache keeps computed allocations in Redis with an expiry.
// It is safe for concurrent use.
type RedisScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{client: client, ttl: ttl}
}

func (r *RedisScheduleCache) Get(ctx context.Context, key string) (_ *domain.Allocation, _ bool, err error) {
	defer obs.Time(ctx, "schedule.cache.redis.Get")(&err)

	if r.client == nil {
		return nil, false, errors.New("redis schedule cache: client is nil")
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis schedule cache: get %q: %w", key, err)
	}

	alloc, err := decodeAllocation(data)
	if err != nil {
		return nil, false, fmt.Errorf("redis schedule cache: key=%q: %w", key, err)
	}
	return alloc, true, nil
}

func (r *RedisScheduleCache) Put(ctx context.Context, key string, alloc *domain.Allocation) (err error) {
	defer obs.Time(ctx, "schedule.cache.redis.Put")(&err)

	if r.client == nil {
		return errors.New("redis schedule cache: client is nil")
	}
	if alloc == nil {
		return errors.New("redis schedule cache: allocation is nil")
	}

	data, err := encodeAllocation(alloc)
	if err != nil {
		return fmt.Errorf("redis schedule cache: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis schedule cache: set %q: %w", key, err)
	}
	return nil
}
