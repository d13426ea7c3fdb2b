// Package cli implements the interactive menu that drives the record
// operations. The loop reads one choice at a time, collects the raw text
// fields the chosen operation needs, and dispatches; every failure is
// reported and returns the operator to the menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/studentdesk/studentctl/internal/core"
	"github.com/studentdesk/studentctl/internal/logging"
)

var (
	titleLine   = color.New(color.FgCyan, color.Bold)
	successLine = color.New(color.FgGreen)
	errorLine   = color.New(color.FgRed)
	noticeLine  = color.New(color.FgYellow)
)

// Menu is the interactive loop. Input and output are plain reader/writer
// so scripted sessions can drive it in tests.
type Menu struct {
	svc *core.Service
	in  *bufio.Reader
	out io.Writer
}

// NewMenu creates a menu bound to the given service and streams.
func NewMenu(svc *core.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run loops until the operator chooses to exit or input reaches EOF.
// The loop itself validates nothing; each operation checks its own input.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printOptions()

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out)
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			m.listStudents(logging.WithOperationID(ctx))
		case "2":
			m.addStudent(logging.WithOperationID(ctx))
		case "3":
			m.updateEmail(logging.WithOperationID(ctx))
		case "4":
			m.deleteStudent(logging.WithOperationID(ctx))
		case "0":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			noticeLine.Fprintln(m.out, "Invalid option. Please try again.")
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) printOptions() {
	titleLine.Fprintln(m.out, "--- Students Menu ---")
	fmt.Fprintln(m.out, "1. List all students")
	fmt.Fprintln(m.out, "2. Add a student")
	fmt.Fprintln(m.out, "3. Update a student's email")
	fmt.Fprintln(m.out, "4. Delete a student")
	fmt.Fprintln(m.out, "0. Exit")
}

// prompt writes a label and reads one trimmed line. A final line without
// a trailing newline still counts.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)

	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// fail reports an operation failure: full detail in the log, mapped
// message for the operator.
func (m *Menu) fail(ctx context.Context, op string, err error) {
	logging.FromContext(ctx).Error(op+" failed", "error", err)
	errorLine.Fprintln(m.out, formatFailure(err))
}

func (m *Menu) listStudents(ctx context.Context) {
	students, err := m.svc.List(ctx)
	if err != nil {
		m.fail(ctx, "list students", err)
		return
	}
	renderStudents(m.out, students)
}

func (m *Menu) addStudent(ctx context.Context) {
	var p core.CreateParams
	fields := []struct {
		label string
		dst   *string
	}{
		{"First name: ", &p.FirstName},
		{"Last name: ", &p.LastName},
		{"Email: ", &p.Email},
		{"Enrollment date (YYYY-MM-DD): ", &p.EnrollmentDate},
	}
	for _, f := range fields {
		value, err := m.prompt(f.label)
		if err != nil {
			return
		}
		*f.dst = value
	}

	id, err := m.svc.Create(ctx, p)
	if err != nil {
		m.fail(ctx, "add student", err)
		return
	}
	successLine.Fprintf(m.out, "Student added with ID %d.\n", id)
}

func (m *Menu) updateEmail(ctx context.Context) {
	rawID, err := m.prompt("Student ID: ")
	if err != nil {
		return
	}
	newEmail, err := m.prompt("New email: ")
	if err != nil {
		return
	}

	if err := m.svc.UpdateEmail(ctx, rawID, newEmail); err != nil {
		m.fail(ctx, "update email", err)
		return
	}
	successLine.Fprintln(m.out, "Email updated successfully.")
}

func (m *Menu) deleteStudent(ctx context.Context) {
	rawID, err := m.prompt("Student ID to delete: ")
	if err != nil {
		return
	}

	if err := m.svc.Delete(ctx, rawID); err != nil {
		m.fail(ctx, "delete student", err)
		return
	}
	successLine.Fprintln(m.out, "Student deleted successfully.")
}
