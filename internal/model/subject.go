package model

import (
	"fmt"
	"strings"
)

// SubjectsHeader is the comment line written at the top of subjects.txt.
const SubjectsHeader = "# Subject ID | Code | Name | Credits"

// Subject represents an academic course or subject.
type Subject struct {
	ID      string `json:"subject_id" yaml:"subject_id"`
	Name    string `json:"name" yaml:"name"`
	Code    string `json:"code" yaml:"code"`
	Credits *int   `json:"credits,omitempty" yaml:"credits,omitempty"`
}

func (s Subject) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s, Code: %s, Name: %s", s.ID, s.Code, s.Name)
	if s.Credits != nil {
		fmt.Fprintf(&b, ", Credits: %d", *s.Credits)
	}
	return b.String()
}

// MarshalLine encodes the subject as id|code|name|credits. The code column
// precedes the name column on disk.
func (s Subject) MarshalLine() string {
	return joinColumns(s.ID, s.Code, s.Name, formatInt(s.Credits))
}

// ParseSubjectLine decodes one data line of subjects.txt.
func ParseSubjectLine(line string) (s Subject, ok bool, err error) {
	cols := splitColumns(line)
	if len(cols) < 3 {
		return Subject{}, false, nil
	}

	credits, err := parseInt(column(cols, 3))
	if err != nil {
		return Subject{}, false, fmt.Errorf("credits: %w", err)
	}

	return Subject{
		ID:      cols[0],
		Code:    cols[1],
		Name:    cols[2],
		Credits: credits,
	}, true, nil
}

// CreateSubjectRequest is the form collected by the CLI before adding a subject.
type CreateSubjectRequest struct {
	ID      string `json:"subject_id" validate:"required,excludesall=0x7C"`
	Code    string `json:"code" validate:"required,excludesall=0x7C"`
	Name    string `json:"name" validate:"required,excludesall=0x7C"`
	Credits *int   `json:"credits" validate:"omitempty,gte=0"`
}
