package cli

import (
	"fmt"
	"io"

	"github.com/stemsi/studentbook/internal/model"
)

// RenderReport prints a student report in the layout of the report screen.
func RenderReport(w io.Writer, r *model.StudentReport) {
	s := r.Student

	fmt.Fprintln(w, "\n"+reportRule)
	fmt.Fprintln(w, titleStyle.Render("STUDENT REPORT: "+s.Name))
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Student ID: %s\n", s.ID)
	fmt.Fprintf(w, "Email: %s\n", s.Email)
	if s.Age != nil {
		fmt.Fprintf(w, "Age: %d\n", *s.Age)
	}

	fmt.Fprintln(w, "\n"+sectionRule)
	fmt.Fprintln(w, "ENROLLMENTS & RECORDS")
	fmt.Fprintln(w, sectionRule)

	if len(r.Entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No enrollments found."))
	}
	for _, e := range r.Entries {
		if e.Subject != nil {
			fmt.Fprintf(w, "\nSubject: %s (%s)\n", e.Subject.Name, e.Subject.Code)
		} else {
			fmt.Fprintf(w, "\nSubject: %s\n", mutedStyle.Render("<missing subject "+e.Record.SubjectID+">"))
		}

		if e.Record.Grade != nil {
			fmt.Fprintf(w, "  Grade: %s\n", model.FormatGrade(*e.Record.Grade))
		} else {
			fmt.Fprintln(w, "  Grade: Not assigned")
		}

		if rate, ok := e.Record.AttendanceRate(); ok {
			fmt.Fprintf(w, "  Attendance: %d/%d (%.1f%%)\n", *e.Record.Attendance, *e.Record.TotalClasses, rate)
		} else {
			fmt.Fprintln(w, "  Attendance: Not recorded")
		}
	}

	fmt.Fprintln(w, "\n"+reportRule)
}

// RenderStudents prints one line per student.
func RenderStudents(w io.Writer, students []model.Student) {
	fmt.Fprintln(w, "\n--- All Students ---")
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}
	for _, s := range students {
		fmt.Fprintf(w, "  %s\n", s)
	}
}

// RenderSubjects prints one line per subject.
func RenderSubjects(w io.Writer, subjects []model.Subject) {
	fmt.Fprintln(w, "\n--- All Subjects ---")
	if len(subjects) == 0 {
		fmt.Fprintln(w, "No subjects found.")
		return
	}
	for _, s := range subjects {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
