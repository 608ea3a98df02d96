package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteDriverName = "sqlite"

//nolint:gochecknoinits
func init() {
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// NewSQLite opens a private in-memory SQLite database with foreign keys
// enforced, applies the migration files and closes it when the test ends.
func NewSQLite(tb testing.TB, migrations ...string) *sqlx.DB {
	tb.Helper()

	db, err := sqlx.Open(sqliteDriverName, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		tb.Fatalf("sqlx.Open: %v", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	tb.Cleanup(func() {
		if err := db.Close(); err != nil {
			tb.Errorf("db.Close: %v", err)
		}
	})

	if err = MigrateFromFile(db, migrations...); err != nil {
		tb.Fatalf("MigrateFromFile: %v", err)
	}

	return db
}
