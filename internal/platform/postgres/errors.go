package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harwoodm/newsdesk/internal/store"
)

// PostgreSQL error codes surfaced by this schema.
const (
	// invalidTextRepresentationCode is raised when a value cannot be
	// coerced to the column type, e.g. a non-numeric article id.
	invalidTextRepresentationCode = "22P02"

	// notNullViolationCode is raised when a required column is left null.
	notNullViolationCode = "23502"

	// foreignKeyViolationCode is raised when a write references a row
	// that does not exist.
	foreignKeyViolationCode = "23503"

	// uniqueViolationCode is raised when an insert duplicates a primary
	// key or unique constraint.
	uniqueViolationCode = "23505"

	// undefinedColumnCode is raised when a query names a column that does
	// not exist.
	undefinedColumnCode = "42703"
)

// MapError maps a database error to the store error set, wrapping the
// original error so callers can still unwrap it for logging. Every store
// method routes its failures through here so classification happens in
// exactly one place.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
		case notNullViolationCode:
			return fmt.Errorf("%w (%s): %v", store.ErrNotNull, pgErr.ColumnName, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w (%s): %v", store.ErrForeignKey, pgErr.ConstraintName, err)
		case uniqueViolationCode:
			return fmt.Errorf("%w (%s): %v", store.ErrDuplicate, pgErr.ConstraintName, err)
		case undefinedColumnCode:
			return fmt.Errorf("%w: %v", store.ErrUndefinedColumn, err)
		}
	}

	return err
}

// checkRowsAffected returns notFoundErr when a mutation touched zero rows.
// Useful for UPDATE and DELETE, where zero affected rows means the target
// does not exist.
func checkRowsAffected(result sql.Result, notFoundErr error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundErr
	}
	return nil
}

// nullIfEmpty converts an empty string to NULL so that missing request
// fields reach the engine as nulls and trip NOT NULL constraints, instead
// of being stored as empty strings.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
