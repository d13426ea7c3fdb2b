package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every call; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// fieldLabels maps struct field names to the wording used in prompts.
var fieldLabels = map[string]string{
	"FirstName":      "first name",
	"LastName":       "last name",
	"Email":          "email",
	"EnrollmentDate": "enrollment date",
}

// ValidateCreate checks the operator-supplied creation fields before any
// store contact. The first failing field decides the returned error.
func ValidateCreate(p CreateParams) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrMissingField, label)
	case "datetime":
		return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, p.EnrollmentDate)
	default:
		return fmt.Errorf("field %s is invalid", label)
	}
}

// ParseStudentID converts raw operator input into a student ID.
// Anything that is not a plain base-10 integer is rejected before the
// store is contacted.
func ParseStudentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidID, raw)
	}
	return id, nil
}
