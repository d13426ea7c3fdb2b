package postgres

import (
	"context"
	"fmt"

	"github.com/studentdesk/studentctl/internal/core"
	"github.com/studentdesk/studentctl/internal/logging"
)

const (
	listQuery = `
		SELECT student_id, first_name, last_name, email, enrollment_date
		FROM students
		ORDER BY student_id`

	insertQuery = `
		INSERT INTO students (first_name, last_name, email, enrollment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING student_id`

	updateEmailQuery = `UPDATE students SET email = $1 WHERE student_id = $2`

	deleteQuery = `DELETE FROM students WHERE student_id = $1`
)

// ListStudents returns every student ordered by ID ascending.
func (s *Store) ListStudents(ctx context.Context) ([]core.Student, error) {
	conn, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := make([]core.Student, 0)
	for rows.Next() {
		var st core.Student
		if err := rows.Scan(&st.ID, &st.FirstName, &st.LastName, &st.Email, &st.EnrollmentDate); err != nil {
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate student rows: %w", err)
	}

	logging.FromContext(ctx).Debug("listed students", "count", len(students))
	return students, nil
}

// InsertStudent adds one record and returns the store-assigned ID.
func (s *Store) InsertStudent(ctx context.Context, p core.CreateParams) (int64, error) {
	conn, err := s.connect(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close(ctx)

	var id int64
	err = conn.QueryRow(ctx, insertQuery,
		p.FirstName, p.LastName, p.Email, p.EnrollmentDate,
	).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}

	logging.FromContext(ctx).Debug("inserted student", "id", id)
	return id, nil
}

// UpdateStudentEmail sets the email of the student with the given ID.
// A zero-row update means the ID does not exist.
func (s *Store) UpdateStudentEmail(ctx context.Context, id int64, email string) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	tag, err := conn.Exec(ctx, updateEmailQuery, email, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}

	logging.FromContext(ctx).Debug("updated student email", "id", id)
	return nil
}

// DeleteStudent permanently removes the student with the given ID.
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	tag, err := conn.Exec(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}

	logging.FromContext(ctx).Debug("deleted student", "id", id)
	return nil
}
