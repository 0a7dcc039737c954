package cache

import (
	"context"
	"database/sql"
	"bed-scheduler-service/internal/adapters/repositories"
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLScheduleCache stores computed allocations in the schedule_cache table.
// Entries older than TTL are treated as missing; a zero TTL keeps them forever.
type SQLScheduleCache struct {
	DB      *sql.DB
	Dialect repositories.Dialect
	TTL     time.Duration

	now func() time.Time
}

func NewSQLScheduleCache(db *sql.DB, dialect repositories.Dialect, ttl time.Duration) *SQLScheduleCache {
	return &SQLScheduleCache{DB: db, Dialect: dialect, TTL: ttl, now: time.Now}
}

func (s *SQLScheduleCache) Get(ctx context.Context, key string) (_ *domain.Allocation, _ bool, err error) {
	defer obs.Time(ctx, "schedule.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("schedule cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get schedule cache: key must not be empty")
	}

	q := fmt.Sprintf(`
	SELECT payload, created_at
	FROM schedule_cache
	WHERE cache_key = %s;
	`, s.Dialect.Bind(1))

	var payload string
	var createdAt int64
	if err := s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get schedule cache: query schedule_cache table: %w", err)
	}

	if s.TTL > 0 && s.now().Sub(time.Unix(createdAt, 0)) > s.TTL {
		return nil, false, nil
	}

	alloc, err := decodeAllocation([]byte(payload))
	if err != nil {
		return nil, false, fmt.Errorf("get schedule cache key=%q: %w", key, err)
	}
	return alloc, true, nil
}

func (s *SQLScheduleCache) Put(ctx context.Context, key string, alloc *domain.Allocation) (err error) {
	defer obs.Time(ctx, "schedule.cache.sql.Put")(&err)

	if s.DB == nil {
		return errors.New("schedule cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert schedule cache: key must not be empty")
	}
	if alloc == nil {
		return errors.New("insert schedule cache: allocation is nil")
	}

	payload, err := encodeAllocation(alloc)
	if err != nil {
		return fmt.Errorf("insert schedule cache: %w", err)
	}

	q := fmt.Sprintf(`
	INSERT INTO schedule_cache (cache_key, payload, created_at)
	VALUES (%s, %s, %s)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = excluded.payload,
		created_at = excluded.created_at;
	`, s.Dialect.Bind(1), s.Dialect.Bind(2), s.Dialect.Bind(3))

	if _, err := s.DB.ExecContext(ctx, q, key, string(payload), s.now().Unix()); err != nil {
		return fmt.Errorf("insert schedule cache key=%q: %w", key, err)
	}

	return nil
}
