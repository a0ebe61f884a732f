// Package cli implements the interactive numbered menu on top of the Manager.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/stemsi/studentbook/internal/model"
	"github.com/stemsi/studentbook/internal/response"
	"github.com/stemsi/studentbook/internal/service"
	"github.com/stemsi/studentbook/internal/validator"
)

// errInvalidInput marks a form that was rejected and already reported.
var errInvalidInput = errors.New("invalid input")

// Menu drives the line-oriented menu loop.
type Menu struct {
	mgr *service.Manager
	in  *bufio.Reader
	out io.Writer
	// pause waits for Enter after every action. Only useful on a terminal.
	pause bool
}

// NewMenu creates a menu reading answers from in and writing to out.
func NewMenu(mgr *service.Manager, in io.Reader, out io.Writer, pause bool) *Menu {
	return &Menu{
		mgr:   mgr,
		in:    bufio.NewReader(in),
		out:   out,
		pause: pause,
	}
}

// Run loops until the user picks Exit or input ends.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "System ready!")

	for {
		m.printMenu()
		choice, err := m.prompt("\nEnter your choice (1-9): ")
		if err != nil {
			return m.exit(err)
		}

		if choice == "9" {
			return m.exit(nil)
		}

		if err := m.dispatch(choice); err != nil && !errors.Is(err, errInvalidInput) {
			return m.exit(err)
		}

		if m.pause {
			if _, err := m.prompt("\nPress Enter to continue..."); err != nil {
				return m.exit(err)
			}
		}
	}
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.addStudent()
	case "2":
		return m.addSubject()
	case "3":
		return m.enroll()
	case "4":
		return m.addGrade()
	case "5":
		return m.markAttendance()
	case "6":
		return m.viewReport()
	case "7":
		RenderStudents(m.out, m.mgr.Students())
	case "8":
		RenderSubjects(m.out, m.mgr.Subjects())
	default:
		fmt.Fprintln(m.out, "\n"+warnStyle.Render(response.GetMessage(response.ErrInvalidChoice)))
	}
	return nil
}

func (m *Menu) exit(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(m.out, "\nThank you for using Student Management System!")
	fmt.Fprintln(m.out, "Goodbye!")
	return nil
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n"+menuRule)
	fmt.Fprintln(m.out, titleStyle.Render("    STUDENT MANAGEMENT SYSTEM"))
	fmt.Fprintln(m.out, menuRule)
	for i, item := range []string{
		"Add Student",
		"Add Subject",
		"Enroll Student",
		"Add Grade",
		"Mark Attendance",
		"View Student Report",
		"List All Students",
		"List All Subjects",
		"Exit",
	} {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, item)
	}
	fmt.Fprintln(m.out, menuRule)
}

// ─── Actions ───────────────────────────────────────────────────────────

func (m *Menu) addStudent() error {
	fmt.Fprintln(m.out, "\n--- Add New Student ---")

	var req model.CreateStudentRequest
	var err error

	if req.ID, err = m.prompt("Enter Student ID: "); err != nil {
		return err
	}
	if _, exists := m.mgr.Student(req.ID); exists {
		return m.fail(fmt.Sprintf("Student with ID '%s' already exists.", req.ID))
	}
	if req.Name, err = m.prompt("Enter Student Name: "); err != nil {
		return err
	}
	if req.Email, err = m.prompt("Enter Student Email: "); err != nil {
		return err
	}
	if req.Age, err = m.promptInt("Enter Student Age (optional, press Enter to skip): "); err != nil {
		return err
	}
	if err := m.validate(&req); err != nil {
		return err
	}

	if err := m.mgr.AddStudent(req.ID, req.Name, req.Email, req.Age); err != nil {
		return m.serviceError(err, fmt.Sprintf("Student '%s' added", req.Name))
	}
	m.success(fmt.Sprintf("Student '%s' added successfully!", req.Name))
	return nil
}

func (m *Menu) addSubject() error {
	fmt.Fprintln(m.out, "\n--- Add New Subject ---")

	var req model.CreateSubjectRequest
	var err error

	if req.ID, err = m.prompt("Enter Subject ID: "); err != nil {
		return err
	}
	if _, exists := m.mgr.Subject(req.ID); exists {
		return m.fail(fmt.Sprintf("Subject with ID '%s' already exists.", req.ID))
	}
	if req.Code, err = m.prompt("Enter Subject Code (e.g., CS101): "); err != nil {
		return err
	}
	if req.Name, err = m.prompt("Enter Subject Name: "); err != nil {
		return err
	}
	if req.Credits, err = m.promptInt("Enter Credits (optional, press Enter to skip): "); err != nil {
		return err
	}
	if err := m.validate(&req); err != nil {
		return err
	}

	if err := m.mgr.AddSubject(req.ID, req.Name, req.Code, req.Credits); err != nil {
		return m.serviceError(err, fmt.Sprintf("Subject '%s' (%s) added", req.Name, req.Code))
	}
	m.success(fmt.Sprintf("Subject '%s' (%s) added successfully!", req.Name, req.Code))
	return nil
}

func (m *Menu) enroll() error {
	fmt.Fprintln(m.out, "\n--- Enroll Student in Subject ---")

	student, subject, err := m.promptPair()
	if err != nil {
		return err
	}
	req := model.EnrollRequest{StudentID: student.ID, SubjectID: subject.ID}
	if err := m.validate(&req); err != nil {
		return err
	}

	if err := m.mgr.Enroll(req.StudentID, req.SubjectID); err != nil {
		return m.serviceError(err, "Enrollment recorded")
	}
	m.success(fmt.Sprintf("%s enrolled in %s successfully!", student.Name, subject.Name))
	return nil
}

func (m *Menu) addGrade() error {
	fmt.Fprintln(m.out, "\n--- Add Grade ---")

	student, subject, err := m.promptPair()
	if err != nil {
		return err
	}

	raw, err := m.prompt("Enter Grade (0-100): ")
	if err != nil {
		return err
	}
	grade, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return m.fail("Invalid grade. Please enter a number.")
	}

	req := model.GradeRequest{StudentID: student.ID, SubjectID: subject.ID, Grade: grade}
	if err := m.validate(&req); err != nil {
		return err
	}

	if err := m.mgr.AddGrade(req.StudentID, req.SubjectID, req.Grade); err != nil {
		return m.serviceError(err, "Grade recorded")
	}
	m.success(fmt.Sprintf("Grade %s added for %s in %s!", model.FormatGrade(grade), student.Name, subject.Name))
	return nil
}

func (m *Menu) markAttendance() error {
	fmt.Fprintln(m.out, "\n--- Mark Attendance ---")

	student, subject, err := m.promptPair()
	if err != nil {
		return err
	}

	answer, err := m.prompt("Did the student attend? (y/n): ")
	if err != nil {
		return err
	}
	answer = strings.ToLower(answer)

	req := model.AttendanceRequest{
		StudentID: student.ID,
		SubjectID: subject.ID,
		Attended:  answer == "y" || answer == "yes",
	}
	if req.TotalClasses, err = m.promptInt("Enter total classes (optional, press Enter to auto-increment): "); err != nil {
		return err
	}
	if err := m.validate(&req); err != nil {
		return err
	}

	if err := m.mgr.MarkAttendance(req.StudentID, req.SubjectID, req.Attended, req.TotalClasses); err != nil {
		return m.serviceError(err, "Attendance marked")
	}

	status := "absent"
	if req.Attended {
		status = "present"
	}
	m.success(fmt.Sprintf("Attendance marked as %s for %s in %s!", status, student.Name, subject.Name))
	return nil
}

func (m *Menu) viewReport() error {
	fmt.Fprintln(m.out, "\n--- Student Report ---")

	id, err := m.prompt("Enter Student ID: ")
	if err != nil {
		return err
	}

	report, err := m.mgr.StudentReport(id)
	if err != nil {
		return m.fail(fmt.Sprintf("Student with ID '%s' not found.", id))
	}
	RenderReport(m.out, report)
	return nil
}

// ─── Input helpers ─────────────────────────────────────────────────────

// prompt prints label and returns the trimmed answer. A final line without a
// newline is still returned; io.EOF is reported only when nothing was read.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads an optional whole number. An empty answer is nil.
func (m *Menu) promptInt(label string) (*int, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	n, perr := strconv.Atoi(raw)
	if perr != nil {
		return nil, m.fail(response.GetMessage(response.ErrInvalidNumber))
	}
	return &n, nil
}

// promptPair asks for a student and then a subject, stopping at the first
// unknown id.
func (m *Menu) promptPair() (model.Student, model.Subject, error) {
	studentID, err := m.prompt("Enter Student ID: ")
	if err != nil {
		return model.Student{}, model.Subject{}, err
	}
	student, ok := m.mgr.Student(studentID)
	if !ok {
		return model.Student{}, model.Subject{}, m.fail(fmt.Sprintf("Student with ID '%s' not found.", studentID))
	}

	subjectID, err := m.prompt("Enter Subject ID: ")
	if err != nil {
		return model.Student{}, model.Subject{}, err
	}
	subject, ok := m.mgr.Subject(subjectID)
	if !ok {
		return model.Student{}, model.Subject{}, m.fail(fmt.Sprintf("Subject with ID '%s' not found.", subjectID))
	}

	return student, subject, nil
}

// ─── Output helpers ────────────────────────────────────────────────────

func (m *Menu) validate(req interface{}) error {
	fields := validator.Struct(req)
	if fields == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintln(m.out, errorStyle.Render("Error: "+fields[k]))
	}
	return errInvalidInput
}

func (m *Menu) success(msg string) {
	fmt.Fprintln(m.out, successStyle.Render("✓ "+msg))
}

func (m *Menu) fail(msg string) error {
	fmt.Fprintln(m.out, errorStyle.Render("Error: "+msg))
	return errInvalidInput
}

// serviceError reports a failed Manager call. A persist failure means the
// change itself went through, so it is reported as a warning after done.
func (m *Menu) serviceError(err error, done string) error {
	code := response.FromError(err)
	if code == response.ErrPersist {
		m.success(done + ".")
		fmt.Fprintln(m.out, warnStyle.Render("Warning: "+response.GetMessage(code)))
		return nil
	}
	return m.fail(response.GetMessage(code))
}
