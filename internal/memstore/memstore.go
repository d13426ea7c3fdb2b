// Package memstore provides an in-memory implementation of core.Store.
// It mirrors the constraints the real schema enforces (generated IDs,
// unique email) so service and menu tests run without a database.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/studentdesk/studentctl/internal/core"
)

// Store keeps student records in memory. IDs are assigned from a
// monotonic counter and never reused, matching SERIAL behavior.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	students map[int64]core.Student
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		nextID:   1,
		students: make(map[int64]core.Student),
	}
}

// ListStudents returns every student ordered by ID ascending.
func (s *Store) ListStudents(ctx context.Context) ([]core.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// InsertStudent adds one record, enforcing email uniqueness the way the
// database constraint would.
func (s *Store) InsertStudent(ctx context.Context, p core.CreateParams) (int64, error) {
	enrolled, err := time.Parse(core.EnrollmentDateLayout, p.EnrollmentDate)
	if err != nil {
		return 0, fmt.Errorf("insert student: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.students {
		if st.Email == p.Email {
			return 0, core.ErrDuplicateEmail
		}
	}

	id := s.nextID
	s.nextID++
	s.students[id] = core.Student{
		ID:             id,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		EnrollmentDate: enrolled,
	}
	return id, nil
}

// UpdateStudentEmail sets the email of one student.
func (s *Store) UpdateStudentEmail(ctx context.Context, id int64, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[id]
	if !ok {
		return core.ErrNotFound
	}

	for otherID, other := range s.students {
		if otherID != id && other.Email == email {
			return core.ErrDuplicateEmail
		}
	}

	st.Email = email
	s.students[id] = st
	return nil
}

// DeleteStudent removes one student permanently.
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.students, id)
	return nil
}

// Ping always succeeds; there is nothing to connect to.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
