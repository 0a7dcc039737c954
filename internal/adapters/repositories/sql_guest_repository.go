package repositories

import (
	"context"
	"database/sql"
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQLGuestRepository is the Postgres-backed GuestWindowRepository.
type SQLGuestRepository struct{ DB *sql.DB }

func NewSQLGuestRepository(db *sql.DB) *SQLGuestRepository {
	return &SQLGuestRepository{DB: db}
}

func (s *SQLGuestRepository) ListGuests(ctx context.Context) (_ []domain.Guest, err error) {
	defer obs.Time(ctx, "guests.sql.ListGuests")(&err)

	if s.DB == nil {
		return nil, errors.New("sql guest repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT guest_id, start_day, end_day
	FROM guests
	ORDER BY guest_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list guests: query guests table: %w", err)
	}

	return scanGuests(rows, "list guests")
}

func (s *SQLGuestRepository) ListGuestsInWindow(ctx context.Context, from, to int) (_ []domain.Guest, err error) {
	defer obs.Time(ctx, "guests.sql.ListGuestsInWindow")(&err)

	if s.DB == nil {
		return nil, errors.New("sql guest repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT guest_id, start_day, end_day
	FROM guests
	WHERE start_day >= $1
		AND end_day <= $2
	ORDER BY guest_id;
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list guests in window: query guests table: %w", err)
	}

	return scanGuests(rows, "list guests in window")
}
