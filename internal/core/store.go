package core

import "context"

// Store is the persistence contract for student records.
//
// Implementations translate their backend's failures into the taxonomy in
// errors.go: a uniqueness violation on email becomes ErrDuplicateEmail,
// and an update or delete that matched no row becomes ErrNotFound. The
// postgres implementation acquires one connection per call and releases
// it before returning; nothing is shared across calls.
type Store interface {
	// ListStudents returns every student ordered by ID ascending.
	// It returns an empty slice, not nil, when the table is empty.
	ListStudents(ctx context.Context) ([]Student, error)

	// InsertStudent adds one record and returns the store-assigned ID.
	// Params are validated before this is called.
	InsertStudent(ctx context.Context, p CreateParams) (int64, error)

	// UpdateStudentEmail sets the email of the student with the given ID.
	UpdateStudentEmail(ctx context.Context, id int64, email string) error

	// DeleteStudent permanently removes the student with the given ID.
	DeleteStudent(ctx context.Context, id int64) error

	// Ping verifies connectivity using the same acquisition contract as
	// the record operations.
	Ping(ctx context.Context) error
}
