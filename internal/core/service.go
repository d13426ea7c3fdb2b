package core

import (
	"context"
	"fmt"

	"github.com/studentdesk/studentctl/internal/logging"
)

// Service implements the four record operations the menu dispatches to.
// It validates input, delegates persistence to the Store, and returns
// errors from the taxonomy in errors.go.
type Service struct {
	store Store
}

// NewService creates a new Service instance.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns all students ordered by ID ascending.
func (s *Service) List(ctx context.Context) ([]Student, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create validates the supplied fields and inserts a new student record,
// returning the store-assigned ID. Nothing reaches the store unless
// validation passes.
func (s *Service) Create(ctx context.Context, p CreateParams) (int64, error) {
	if err := ValidateCreate(p); err != nil {
		return 0, err
	}

	id, err := s.store.InsertStudent(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("add student: %w", err)
	}

	logging.FromContext(ctx).Info("student created", "id", id)
	return id, nil
}

// UpdateEmail sets a new email on the student identified by rawID.
// rawID is parsed before the store is contacted; a zero-row update
// surfaces as ErrNotFound.
func (s *Service) UpdateEmail(ctx context.Context, rawID, newEmail string) error {
	id, err := ParseStudentID(rawID)
	if err != nil {
		return err
	}

	if err := s.store.UpdateStudentEmail(ctx, id, newEmail); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("student email updated", "id", id)
	return nil
}

// Delete permanently removes the student identified by rawID.
// Deletion is unconditional: no dependent records exist in this model.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := ParseStudentID(rawID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteStudent(ctx, id); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("student deleted", "id", id)
	return nil
}
