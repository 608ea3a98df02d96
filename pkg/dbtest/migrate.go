package dbtest

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// MigrateFromFile applies the SQL files in order inside one transaction, so
// a broken file leaves the database untouched.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("db.Beginx: %w", err)
	}

	for _, fileName := range fileNames {
		script, err := os.ReadFile(fileName)
		if err != nil {
			return rollback(tx, fmt.Errorf("os.ReadFile: %w", err))
		}

		if _, err = tx.Exec(string(script)); err != nil {
			return rollback(tx, fmt.Errorf("%s: tx.Exec: %w", fileName, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}

func rollback(tx *sqlx.Tx, cause error) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("%w (tx.Rollback: %v)", cause, err) //nolint:errorlint
	}

	return cause
}
