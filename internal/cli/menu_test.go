package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/studentdesk/studentctl/internal/core"
	"github.com/studentdesk/studentctl/internal/memstore"
)

func TestMain(m *testing.M) {
	// Escape codes would make output assertions depend on the terminal.
	color.NoColor = true
	m.Run()
}

// runSession feeds a scripted input to a fresh menu over an in-memory
// store and returns everything it printed.
func runSession(t *testing.T, input string) string {
	t.Helper()

	svc := core.NewService(memstore.New())
	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader(input), &out)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestRun_ExitImmediately(t *testing.T) {
	out := runSession(t, "0\n")

	if !strings.Contains(out, "--- Students Menu ---") {
		t.Error("output should contain the menu header")
	}
	if !strings.Contains(out, "Goodbye.") {
		t.Error("output should contain the goodbye line")
	}
}

func TestRun_InvalidOption(t *testing.T) {
	out := runSession(t, "9\n0\n")

	if !strings.Contains(out, "Invalid option. Please try again.") {
		t.Errorf("output should contain the invalid-option notice, got:\n%s", out)
	}
	// The loop must return to the menu after the notice.
	if strings.Count(out, "--- Students Menu ---") != 2 {
		t.Errorf("menu header should appear twice, got:\n%s", out)
	}
}

func TestRun_EOFExitsCleanly(t *testing.T) {
	out := runSession(t, "")

	if !strings.Contains(out, "Choose an option: ") {
		t.Errorf("menu should prompt before seeing EOF, got:\n%s", out)
	}
}

func TestRun_ListEmpty(t *testing.T) {
	out := runSession(t, "1\n0\n")

	if !strings.Contains(out, "No students found.") {
		t.Errorf("output should contain the empty notice, got:\n%s", out)
	}
}

func TestRun_AddThenList(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"2",
		"Ada",
		"Lovelace",
		"ada@x.com",
		"1843-12-10",
		"1",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "Student added with ID 1.") {
		t.Errorf("output should report the new ID, got:\n%s", out)
	}
	if !strings.Contains(out, "All Students:") {
		t.Errorf("output should contain the table header, got:\n%s", out)
	}
	for _, want := range []string{"Ada", "Lovelace", "ada@x.com", "1843-12-10"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_AddInvalidDate(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"2",
		"Ada",
		"Lovelace",
		"ada@x.com",
		"2023-13-01",
		"1",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "Invalid enrollment date") {
		t.Errorf("output should report the invalid date, got:\n%s", out)
	}
	if !strings.Contains(out, "No students found.") {
		t.Errorf("nothing should have been inserted, got:\n%s", out)
	}
}

func TestRun_AddDuplicateEmail(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"2", "Ada", "Lovelace", "ada@x.com", "1843-12-10",
		"2", "Augusta", "King", "ada@x.com", "1844-01-01",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "That email is already in use") {
		t.Errorf("output should contain the duplicate-email message, got:\n%s", out)
	}
}

func TestRun_UpdateEmail(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"2", "Ada", "Lovelace", "ada@x.com", "1843-12-10",
		"3", "1", "ada2@x.com",
		"1",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "Email updated successfully.") {
		t.Errorf("output should confirm the update, got:\n%s", out)
	}
	if !strings.Contains(out, "ada2@x.com") {
		t.Errorf("listing should show the new email, got:\n%s", out)
	}
}

func TestRun_UpdateEmailUnknownID(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"3", "99", "new@x.com",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "No student found with that ID") {
		t.Errorf("output should contain the not-found message, got:\n%s", out)
	}
}

func TestRun_UpdateEmailBadID(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"3", "abc", "new@x.com",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "Invalid student ID") {
		t.Errorf("output should contain the invalid-ID message, got:\n%s", out)
	}
}

func TestRun_DeleteTwice(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"2", "Ada", "Lovelace", "ada@x.com", "1843-12-10",
		"4", "1",
		"4", "1",
		"0",
		"",
	}, "\n"))

	if !strings.Contains(out, "Student deleted successfully.") {
		t.Errorf("output should confirm the first delete, got:\n%s", out)
	}
	if !strings.Contains(out, "No student found with that ID") {
		t.Errorf("second delete should report not-found, got:\n%s", out)
	}
}

// failingStore lets the store-error path be exercised without a database.
type failingStore struct {
	err error
}

func (f *failingStore) ListStudents(ctx context.Context) ([]core.Student, error) {
	return nil, f.err
}
func (f *failingStore) InsertStudent(ctx context.Context, p core.CreateParams) (int64, error) {
	return 0, f.err
}
func (f *failingStore) UpdateStudentEmail(ctx context.Context, id int64, email string) error {
	return f.err
}
func (f *failingStore) DeleteStudent(ctx context.Context, id int64) error { return f.err }
func (f *failingStore) Ping(ctx context.Context) error                    { return f.err }

func TestRun_StoreErrorKeepsDiagnostic(t *testing.T) {
	svc := core.NewService(&failingStore{
		err: errors.New(`ERROR: permission denied for table students (SQLSTATE 42501)`),
	})
	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader("1\n0\n"), &out)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "permission denied for table students") {
		t.Errorf("output should carry the store diagnostic, got:\n%s", got)
	}
	// The loop survives the failure.
	if !strings.Contains(got, "Goodbye.") {
		t.Errorf("menu should return to the loop after a store error, got:\n%s", got)
	}
}
