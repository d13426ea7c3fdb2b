// Package core provides the business logic for managing student records:
// input validation, the four record operations, the error taxonomy, and
// the mapping of technical errors to operator-facing messages.
package core

import "time"

// Student is a single row of the students table.
//
// ID is assigned by the store on insert and never reused. Email is the
// only field this system ever updates; everything else is immutable after
// creation.
type Student struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	EnrollmentDate time.Time
}

// CreateParams carries the operator-supplied fields for a new student
// record. EnrollmentDate stays raw text until validation has confirmed it
// is a real calendar date in YYYY-MM-DD form.
type CreateParams struct {
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	Email          string `validate:"required"`
	EnrollmentDate string `validate:"required,datetime=2006-01-02"`
}

// EnrollmentDateLayout is the only accepted input form for enrollment dates.
const EnrollmentDateLayout = "2006-01-02"
