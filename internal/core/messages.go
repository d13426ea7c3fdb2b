package core

// messages.go maps technical errors onto operator-facing messages.
//
// Error codes are grouped by category:
//
//	VAL001 - Invalid date: enrollment date is not a real YYYY-MM-DD date
//	VAL002 - Invalid ID: student ID is not a whole number
//	VAL003 - Missing field: a required creation field was left empty
//	REC001 - Duplicate email: that email already belongs to a student
//	REC002 - Not found: no student row matched the given ID
//	DB001  - Connection refused: unable to reach the database
//	DB002  - Connection reset: the database connection was interrupted
//	DB003  - Timeout: the operation did not finish in time
//	ERR000 - Fallback: any other store failure; the message keeps the
//	         store's own diagnostic text
//
// Sentinel errors are matched with errors.Is first; connection-level
// failures fall back to case-insensitive substring matching because they
// arrive from the network stack without useful types.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides operator-facing error information with actionable
// guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Code for support reference
}

// sentinelMessage pairs one taxonomy error with its user message.
type sentinelMessage struct {
	target error
	msg    UserMessage
}

var sentinelMessages = []sentinelMessage{
	{
		target: ErrInvalidDate,
		msg: UserMessage{
			Message: "Invalid enrollment date",
			Action:  "Use YYYY-MM-DD, e.g. 2023-09-01",
			Code:    "VAL001",
		},
	},
	{
		target: ErrInvalidID,
		msg: UserMessage{
			Message: "Invalid student ID",
			Action:  "Enter a whole number, e.g. 42",
			Code:    "VAL002",
		},
	},
	{
		target: ErrMissingField,
		msg: UserMessage{
			Message: "A required field is empty",
			Action:  "Fill in every prompted field",
			Code:    "VAL003",
		},
	},
	{
		target: ErrDuplicateEmail,
		msg: UserMessage{
			Message: "That email is already in use",
			Action:  "Use a different email address",
			Code:    "REC001",
		},
	},
	{
		target: ErrNotFound,
		msg: UserMessage{
			Message: "No student found with that ID",
			Action:  "Choose option 1 to see the current IDs",
			Code:    "REC002",
		},
	},
}

// errorPattern defines a substring to match and its corresponding message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is consulted after the sentinels; first match wins, so
// more specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to the database",
			Action:  "Check that PostgreSQL is running and DB_HOST/DB_PORT are correct",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Check connectivity and try again",
			Code:    "DB003",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Check connectivity and try again",
			Code:    "DB003",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "Unexpected database error",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-facing message.
// Taxonomy sentinels are checked first, then known connection-failure
// substrings. Anything else gets the ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.target) {
			return sm.msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return UserMessage{
			Message: "Operation timed out",
			Action:  "Check connectivity and try again",
			Code:    "DB003",
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates the line the menu prints for a failed operation.
//
// Mapped errors read: "Message (Code: XXX). Action"
// Unmapped store errors keep the store's diagnostic text:
// "Unexpected database error: <diagnostic> (Code: ERR000)"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	if msg.Code == defaultMessage.Code {
		return fmt.Sprintf("%s: %v (Code: %s)", msg.Message, err, msg.Code)
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
