package repositories

import (
	"context"
	"database/sql"
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the GuestWindowRepository port.
type SqliteGuestRepository struct{ DB *sql.DB }

func NewSqliteGuestRepository(db *sql.DB) *SqliteGuestRepository {
	return &SqliteGuestRepository{DB: db}
}

// Return all guests stored in the database, ordered by id.
func (s *SqliteGuestRepository) ListGuests(ctx context.Context) (_ []domain.Guest, err error) {
	defer obs.Time(ctx, "guests.sqlite.ListGuests")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite guest repository: DB is nil")
	}

	query := `
	SELECT
		guest_id,
		start_day,
		end_day
	FROM guests
	ORDER BY guest_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list guests: query guests table: %w", err)
	}

	return scanGuests(rows, "list guests")
}

// Return guests staying entirely within [from, to], ordered by id.
func (s *SqliteGuestRepository) ListGuestsInWindow(ctx context.Context, from, to int) (_ []domain.Guest, err error) {
	defer obs.Time(ctx, "guests.sqlite.ListGuestsInWindow")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite guest repository: DB is nil")
	}

	query := `
	SELECT
		guest_id,
		start_day,
		end_day
	FROM guests
	WHERE start_day >= ?
		AND end_day <= ?
	ORDER BY guest_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list guests in window: query guests table: %w", err)
	}

	return scanGuests(rows, "list guests in window")
}
