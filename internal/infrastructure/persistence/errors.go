package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation      = "23503"
	pgNumericValueOutOfRange   = "22003"
	sqliteConstraintForeignKey = 787
)

// isForeignKeyViolation recognizes FK failures from both pgx and the SQLite
// driver used in tests.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code() == sqliteConstraintForeignKey
	}

	return false
}

// isOutOfRange reports a value the column type cannot hold. Only Postgres
// raises it; SQLite integers are 64-bit.
func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgNumericValueOutOfRange
}
