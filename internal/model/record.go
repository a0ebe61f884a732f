package model

import (
	"fmt"
	"strings"
)

// RecordsHeader is the comment line written at the top of records.txt.
const RecordsHeader = "# Student ID | Subject ID | Grade | Attendance | Total Classes"

// Grade bounds, inclusive.
const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

// Record carries the enrollment, grade and attendance state of one student in
// one subject. The (StudentID, SubjectID) pair is unique.
type Record struct {
	StudentID    string   `json:"student_id" yaml:"student_id"`
	SubjectID    string   `json:"subject_id" yaml:"subject_id"`
	Grade        *float64 `json:"grade,omitempty" yaml:"grade,omitempty"`
	Attendance   *int     `json:"attendance,omitempty" yaml:"attendance,omitempty"`
	TotalClasses *int     `json:"total_classes,omitempty" yaml:"total_classes,omitempty"`
}

// Matches reports whether the record belongs to the given pair.
func (r Record) Matches(studentID, subjectID string) bool {
	return r.StudentID == studentID && r.SubjectID == subjectID
}

// AttendanceRate returns attended/total as a percentage. ok is false until
// both counters are set. A zero total yields 0.
func (r Record) AttendanceRate() (rate float64, ok bool) {
	if r.Attendance == nil || r.TotalClasses == nil {
		return 0, false
	}
	if *r.TotalClasses <= 0 {
		return 0, true
	}
	return float64(*r.Attendance) / float64(*r.TotalClasses) * 100, true
}

func (r Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student: %s, Subject: %s", r.StudentID, r.SubjectID)
	if r.Grade != nil {
		fmt.Fprintf(&b, ", Grade: %s", FormatGrade(*r.Grade))
	}
	if rate, ok := r.AttendanceRate(); ok {
		fmt.Fprintf(&b, ", Attendance: %d/%d (%.1f%%)", *r.Attendance, *r.TotalClasses, rate)
	}
	return b.String()
}

// MarshalLine encodes the record as student_id|subject_id|grade|attendance|total_classes.
func (r Record) MarshalLine() string {
	grade := ""
	if r.Grade != nil {
		grade = FormatGrade(*r.Grade)
	}
	return joinColumns(r.StudentID, r.SubjectID, grade, formatInt(r.Attendance), formatInt(r.TotalClasses))
}

// ParseRecordLine decodes one data line of records.txt. Only the two key
// columns are required.
func ParseRecordLine(line string) (r Record, ok bool, err error) {
	cols := splitColumns(line)
	if len(cols) < 2 {
		return Record{}, false, nil
	}

	r = Record{StudentID: cols[0], SubjectID: cols[1]}
	if r.Grade, err = parseFloat(column(cols, 2)); err != nil {
		return Record{}, false, fmt.Errorf("grade: %w", err)
	}
	if r.Attendance, err = parseInt(column(cols, 3)); err != nil {
		return Record{}, false, fmt.Errorf("attendance: %w", err)
	}
	if r.TotalClasses, err = parseInt(column(cols, 4)); err != nil {
		return Record{}, false, fmt.Errorf("total_classes: %w", err)
	}
	return r, true, nil
}

// EnrollRequest is the form collected by the CLI before enrolling.
type EnrollRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`
}

// GradeRequest is the form collected by the CLI before grading.
type GradeRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	SubjectID string  `json:"subject_id" validate:"required"`
	Grade     float64 `json:"grade" validate:"gte=0,lte=100"`
}

// AttendanceRequest is the form collected by the CLI before marking attendance.
type AttendanceRequest struct {
	StudentID    string `json:"student_id" validate:"required"`
	SubjectID    string `json:"subject_id" validate:"required"`
	Attended     bool   `json:"attended"`
	TotalClasses *int   `json:"total_classes" validate:"omitempty,gte=0"`
}
