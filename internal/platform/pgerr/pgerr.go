// Package pgerr sorts PostgreSQL driver errors into the shared error kinds.
package pgerr

import (
	"errors"
	"fmt"
	"strings"

	"anirex/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Wrap marks failures to reach the database as apperr.ErrNetwork. No rows
// and errors reported by the server for the statement itself pass through,
// so callers can still map them to NotFound or Conflict.
func Wrap(err error) error {
	if err == nil || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperr.ErrNetwork) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && !connectionClass(pgErr.Code) {
		return err
	}
	return fmt.Errorf("%w: %w", apperr.ErrNetwork, err)
}

// IsUniqueViolation reports a duplicate key.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Class 08 is connection exceptions; 57P0x is the server going away.
func connectionClass(code string) bool {
	return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P0")
}
