package repositories

import (
	"database/sql"
	"bed-scheduler-service/internal/domain"
	"errors"
	"fmt"
)

// Initialize the database schema. The statements are valid for both
// SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGuestsQuery := `
	CREATE TABLE IF NOT EXISTS guests (
		guest_id INTEGER PRIMARY KEY,
		start_day INTEGER NOT NULL,
		end_day INTEGER NOT NULL,
		CHECK (start_day < end_day)
	);
	`

	createScheduleCacheQuery := `
	CREATE TABLE IF NOT EXISTS schedule_cache (
		cache_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		created_at BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_guests_start_end
	ON guests(start_day, end_day);
	`

	statements := []string{
		createGuestsQuery,
		createScheduleCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Insert or update guests. Guests are validated first so a bad row never
// reaches the database.
func SeedGuests(db *sql.DB, dialect Dialect, guests []domain.Guest) error {
	if db == nil {
		return errors.New("seed guests: DB is nil")
	}

	if err := domain.ValidateRequest(0, guests); err != nil {
		return fmt.Errorf("seed guests: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed guests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO guests (
		guest_id,
		start_day,
		end_day
	)
	VALUES (%s, %s, %s)
	ON CONFLICT (guest_id) DO UPDATE
	SET start_day = excluded.start_day,
		end_day = excluded.end_day;
	`, dialect.Bind(1), dialect.Bind(2), dialect.Bind(3))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed guests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range guests {
		if _, err := stmt.Exec(g.GuestID, g.Start, g.End); err != nil {
			return fmt.Errorf("seed guests: insert guest_id=%d: %w", g.GuestID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed guests: commit tx: %w", err)
	}

	return nil
}

func scanGuests(rows *sql.Rows, op string) ([]domain.Guest, error) {
	defer rows.Close()

	guests := make([]domain.Guest, 0, 64)
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.GuestID, &g.Start, &g.End); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: row iteration: %w", op, err)
	}

	return guests, nil
}
