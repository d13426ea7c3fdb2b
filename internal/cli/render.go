package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/studentdesk/studentctl/internal/core"
)

// formatFailure is the single place menu failures are turned into text.
func formatFailure(err error) string {
	return "[ERROR] " + core.FormatUserError(err)
}

// renderStudents writes the student table, or a notice when it is empty.
// The tabwriter cells stay uncolored so escape codes cannot skew the
// column widths.
func renderStudents(w io.Writer, students []core.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}

	titleLine.Fprintln(w, "All Students:")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tENROLLED")
	for _, st := range students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			st.ID,
			st.FirstName,
			st.LastName,
			st.Email,
			st.EnrollmentDate.Format(core.EnrollmentDateLayout),
		)
	}
	tw.Flush()
}
