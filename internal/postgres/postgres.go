// Package postgres implements core.Store against a PostgreSQL database.
//
// Connection discipline: every method dials one connection, uses it for a
// single statement, and closes it on every exit path. Nothing is pooled,
// retried, or shared across operations.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/studentdesk/studentctl/internal/config"
	"github.com/studentdesk/studentctl/internal/core"
)

// Store holds the connection string; connections themselves live only for
// the duration of a single call.
type Store struct {
	dsn string
}

// New creates a Store from the database configuration.
func New(cfg config.DatabaseConfig) *Store {
	return &Store{dsn: cfg.DSN()}
}

// connect dials a fresh connection. Callers must close it.
func (s *Store) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return conn, nil
}

// Ping verifies connectivity using the same scoped acquisition the record
// operations use. The startup check calls this once before the menu runs.
func (s *Store) Ping(ctx context.Context) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return conn.Ping(ctx)
}

// uniqueViolation is the PostgreSQL SQLSTATE for a unique-constraint error.
const uniqueViolation = "23505"

// translateError maps driver-level failures onto the core taxonomy.
// The students schema has exactly one unique constraint (email), so every
// unique violation is a duplicate email.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return core.ErrDuplicateEmail
	}
	return err
}
