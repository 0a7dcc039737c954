package repositories

import (
	"context"
	"database/sql"
	"bed-scheduler-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func TestSqliteGuestRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seed := []domain.Guest{
		domain.NewGuest(2, 5, 9),
		domain.NewGuest(1, 1, 5),
		domain.NewGuest(3, 8, 12),
	}
	require.NoError(t, SeedGuests(db, SQLite, seed))

	// Seeding again updates in place.
	require.NoError(t, SeedGuests(db, SQLite, []domain.Guest{domain.NewGuest(3, 8, 10)}))

	repo := NewSqliteGuestRepository(db)

	all, err := repo.ListGuests(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Guest{
		domain.NewGuest(1, 1, 5),
		domain.NewGuest(2, 5, 9),
		domain.NewGuest(3, 8, 10),
	}, all)

	window, err := repo.ListGuestsInWindow(ctx, 4, 10)
	require.NoError(t, err)
	require.Equal(t, []domain.Guest{
		domain.NewGuest(2, 5, 9),
		domain.NewGuest(3, 8, 10),
	}, window)
}

func TestSeedGuestsRejectsInvalidGuests(t *testing.T) {
	db := openTestDB(t)

	err := SeedGuests(db, SQLite, []domain.Guest{domain.NewGuest(1, 5, 5)})
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))

	guests, err := NewSqliteGuestRepository(db).ListGuests(context.Background())
	require.NoError(t, err)
	require.Empty(t, guests)
}

func TestDialectBind(t *testing.T) {
	require.Equal(t, "?", SQLite.Bind(3))
	require.Equal(t, "$3", Postgres.Bind(3))
	require.Equal(t, Postgres, DialectFor("pgx"))
	require.Equal(t, SQLite, DialectFor("sqlite"))
}
