package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/studentbook/internal/model"
	"github.com/stemsi/studentbook/internal/repository"
)

var (
	ErrStudentExists   = errors.New("student with this ID already exists")
	ErrSubjectExists   = errors.New("subject with this ID already exists")
	ErrStudentNotFound = errors.New("student not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this subject")
	ErrGradeOutOfRange = errors.New("grade must be between 0 and 100")
	ErrInvalidField    = errors.New("field cannot be stored in the data files")
	// ErrPersist wraps a failed save. The change it follows is kept in memory.
	ErrPersist = errors.New("failed to save data files")
)

// Manager is the single entry point for reading and changing gradebook data.
// Every successful mutation rewrites all data files.
type Manager struct {
	store *repository.FileStore
	log   zerolog.Logger
}

// NewManager creates a Manager over an already loaded store.
func NewManager(store *repository.FileStore, log zerolog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log.With().Str("component", "manager").Logger(),
	}
}

// Save rewrites every data file.
func (m *Manager) Save() error {
	if err := m.store.Save(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// ─── Students ──────────────────────────────────────────────────────────

// AddStudent registers a new student. The id must be unused.
func (m *Manager) AddStudent(id, name, email string, age *int) error {
	if err := checkFields(
		field{"student_id", id, true},
		field{"name", name, false},
		field{"email", email, false},
	); err != nil {
		return err
	}
	if _, ok := m.store.Student(id); ok {
		return ErrStudentExists
	}

	m.store.AppendStudent(model.Student{ID: id, Name: name, Email: email, Age: age})
	m.log.Info().Str("student_id", id).Msg("Student added")
	return m.Save()
}

// Student looks up a student by id.
func (m *Manager) Student(id string) (model.Student, bool) {
	return m.store.Student(id)
}

// Students returns every student in insertion order.
func (m *Manager) Students() []model.Student {
	return m.store.Students()
}

// ─── Subjects ──────────────────────────────────────────────────────────

// AddSubject registers a new subject. The id must be unused.
func (m *Manager) AddSubject(id, name, code string, credits *int) error {
	if err := checkFields(
		field{"subject_id", id, true},
		field{"code", code, false},
		field{"name", name, false},
	); err != nil {
		return err
	}
	if _, ok := m.store.Subject(id); ok {
		return ErrSubjectExists
	}

	m.store.AppendSubject(model.Subject{ID: id, Name: name, Code: code, Credits: credits})
	m.log.Info().Str("subject_id", id).Str("code", code).Msg("Subject added")
	return m.Save()
}

// Subject looks up a subject by id.
func (m *Manager) Subject(id string) (model.Subject, bool) {
	return m.store.Subject(id)
}

// Subjects returns every subject in insertion order.
func (m *Manager) Subjects() []model.Subject {
	return m.store.Subjects()
}

// ─── Field checks ──────────────────────────────────────────────────────

type field struct {
	name     string
	value    string
	required bool
}

// checkFields rejects text the line format would not read back unchanged:
// separators and line breaks split the line, surrounding whitespace is
// trimmed on load and a leading # turns the line into a comment.
func checkFields(fields ...field) error {
	for _, f := range fields {
		switch {
		case f.required && f.value == "":
			return fmt.Errorf("%w: %s is empty", ErrInvalidField, f.name)
		case strings.ContainsAny(f.value, model.Separator+"\r\n"):
			return fmt.Errorf("%w: %s contains %q or a line break", ErrInvalidField, f.name, model.Separator)
		case strings.TrimSpace(f.value) != f.value:
			return fmt.Errorf("%w: %s has leading or trailing whitespace", ErrInvalidField, f.name)
		case f.required && strings.HasPrefix(f.value, "#"):
			return fmt.Errorf("%w: %s starts with #", ErrInvalidField, f.name)
		}
	}
	return nil
}
