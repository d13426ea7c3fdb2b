package postgres

import (
	"context"
	"fmt"

	"github.com/studentdesk/studentctl/internal/logging"
)

// schema is the full schema this tool manages. CREATE TABLE IF NOT EXISTS
// keeps the statement idempotent, so migrate is safe to run repeatedly.
const schema = `
CREATE TABLE IF NOT EXISTS students (
    student_id      SERIAL PRIMARY KEY,
    first_name      TEXT NOT NULL,
    last_name       TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    enrollment_date DATE NOT NULL
)`

// Migrate creates the students table if it does not already exist.
func (s *Store) Migrate(ctx context.Context) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	logging.FromContext(ctx).Info("schema applied")
	return nil
}
