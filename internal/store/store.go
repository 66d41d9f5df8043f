package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrInvalidContact indicates validation or constraint failure for contact
// data.
var ErrInvalidContact = errors.New("invalid contact")

// Store provides contact persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Version reports the database server version string. Used as a
// connectivity check at startup.
func (s *Store) Version(ctx context.Context) (string, error) {
	var version string
	if err := s.db.QueryRowContext(ctx, sqlVersion).Scan(&version); err != nil {
		return "", fmt.Errorf("select version: %w", err)
	}
	return version, nil
}

// EnsureSchema creates the contacts table when absent. Idempotent, safe to
// call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqlCreateTable); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	return nil
}

// Class 23 covers integrity constraint violations (not-null, length,
// unique).
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}
