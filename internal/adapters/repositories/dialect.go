package repositories

import "strconv"

// Dialect selects the bind parameter style for a SQL backend.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Bind returns the placeholder for the n-th (1-based) parameter.
func (d Dialect) Bind(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func DialectFor(driver string) Dialect {
	if driver == "pgx" || driver == "postgres" {
		return Postgres
	}
	return SQLite
}
