package model

import (
	"fmt"
	"strings"
)

// StudentsHeader is the comment line written at the top of students.txt.
const StudentsHeader = "# Student ID | Name | Email | Age"

// Student represents an enrolled learner.
type Student struct {
	ID    string `json:"student_id" yaml:"student_id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Age   *int   `json:"age,omitempty" yaml:"age,omitempty"`
}

// String renders the student the way the listing screens show it.
func (s Student) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s, Name: %s, Email: %s", s.ID, s.Name, s.Email)
	if s.Age != nil {
		fmt.Fprintf(&b, ", Age: %d", *s.Age)
	}
	return b.String()
}

// MarshalLine encodes the student as id|name|email|age.
func (s Student) MarshalLine() string {
	return joinColumns(s.ID, s.Name, s.Email, formatInt(s.Age))
}

// ParseStudentLine decodes one data line. ok is false when the line has
// fewer than the three required columns and should be skipped.
func ParseStudentLine(line string) (s Student, ok bool, err error) {
	cols := splitColumns(line)
	if len(cols) < 3 {
		return Student{}, false, nil
	}

	age, err := parseInt(column(cols, 3))
	if err != nil {
		return Student{}, false, fmt.Errorf("age: %w", err)
	}

	return Student{
		ID:    cols[0],
		Name:  cols[1],
		Email: cols[2],
		Age:   age,
	}, true, nil
}

// CreateStudentRequest is the form collected by the CLI before adding a student.
type CreateStudentRequest struct {
	ID    string `json:"student_id" validate:"required,excludesall=0x7C"`
	Name  string `json:"name" validate:"required,excludesall=0x7C"`
	Email string `json:"email" validate:"required,excludesall=0x7C"`
	Age   *int   `json:"age" validate:"omitempty,gte=0"`
}
