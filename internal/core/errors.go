package core

import "errors"

// Sentinel errors forming the operation-level taxonomy. Callers test for
// them with errors.Is; wrapped variants carry extra detail for logs.
var (
	// ErrNotFound means an update or delete matched zero rows.
	ErrNotFound = errors.New("no student found with that ID")

	// ErrDuplicateEmail means the store rejected an insert or update
	// because the email is already taken.
	ErrDuplicateEmail = errors.New("email is already in use")

	// ErrInvalidDate means the enrollment date is not a real calendar
	// date in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid enrollment date")

	// ErrInvalidID means the student ID could not be parsed as an integer.
	ErrInvalidID = errors.New("invalid student ID")

	// ErrMissingField means a required creation field was left empty.
	ErrMissingField = errors.New("required field is empty")
)
