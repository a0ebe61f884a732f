package repository

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/studentbook/internal/database"
	"github.com/stemsi/studentbook/internal/model"
)

// ParseError reports the first malformed line of a data file. Everything
// after that line is ignored.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FileStore keeps every collection in memory and mirrors it to the data
// directory. Lookups are linear scans in insertion order.
type FileStore struct {
	dir          *database.DataDir
	atomicWrites bool
	log          zerolog.Logger

	students []model.Student
	subjects []model.Subject
	records  []*model.Record
}

// NewFileStore creates an empty FileStore. Call Load to read existing data.
func NewFileStore(dir *database.DataDir, atomicWrites bool, log zerolog.Logger) *FileStore {
	return &FileStore{
		dir:          dir,
		atomicWrites: atomicWrites,
		log:          log.With().Str("component", "file_store").Logger(),
	}
}

// Dir returns the resolved data directory.
func (s *FileStore) Dir() *database.DataDir {
	return s.dir
}

// Load replaces the in-memory collections with the contents of the data
// files. Missing files load as empty. A read or parse failure is logged and
// keeps whatever was read before it.
func (s *FileStore) Load() {
	var err error

	s.students, err = LoadStudents(s.dir.Students)
	s.logLoad("students", s.dir.Students, len(s.students), err)

	s.subjects, err = LoadSubjects(s.dir.Subjects)
	s.logLoad("subjects", s.dir.Subjects, len(s.subjects), err)

	var records []model.Record
	records, err = LoadRecords(s.dir.Records)
	s.records = make([]*model.Record, len(records))
	for i := range records {
		s.records[i] = &records[i]
	}
	s.logLoad("records", s.dir.Records, len(s.records), err)
}

func (s *FileStore) logLoad(kind, path string, n int, err error) {
	if err != nil {
		s.log.Error().Err(err).Str("file", path).Int("loaded", n).Msgf("Error loading %s", kind)
		return
	}
	s.log.Debug().Str("file", path).Int("loaded", n).Msgf("Loaded %s", kind)
}

// Save rewrites all three data files regardless of which collection changed.
// Every file is attempted; the failures are joined.
func (s *FileStore) Save() error {
	var errs []error

	if err := SaveStudents(s.dir.Students, s.students, s.atomicWrites); err != nil {
		s.log.Error().Err(err).Str("file", s.dir.Students).Msg("Error saving students")
		errs = append(errs, err)
	}
	if err := SaveSubjects(s.dir.Subjects, s.subjects, s.atomicWrites); err != nil {
		s.log.Error().Err(err).Str("file", s.dir.Subjects).Msg("Error saving subjects")
		errs = append(errs, err)
	}
	if err := SaveRecords(s.dir.Records, s.Records(), s.atomicWrites); err != nil {
		s.log.Error().Err(err).Str("file", s.dir.Records).Msg("Error saving records")
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ─── Students ──────────────────────────────────────────────────────────

// Student finds a student by id.
func (s *FileStore) Student(id string) (model.Student, bool) {
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return model.Student{}, false
}

// Students returns a copy of all students in insertion order.
func (s *FileStore) Students() []model.Student {
	return slices.Clone(s.students)
}

// AppendStudent adds a student without checking for duplicates.
func (s *FileStore) AppendStudent(st model.Student) {
	s.students = append(s.students, st)
}

// ─── Subjects ──────────────────────────────────────────────────────────

// Subject finds a subject by id.
func (s *FileStore) Subject(id string) (model.Subject, bool) {
	for _, sub := range s.subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return model.Subject{}, false
}

// Subjects returns a copy of all subjects in insertion order.
func (s *FileStore) Subjects() []model.Subject {
	return slices.Clone(s.subjects)
}

// AppendSubject adds a subject without checking for duplicates.
func (s *FileStore) AppendSubject(sub model.Subject) {
	s.subjects = append(s.subjects, sub)
}

// ─── Records ───────────────────────────────────────────────────────────

// Record returns the live record for the pair, or nil. Changes made through
// the pointer are persisted by the next Save.
func (s *FileStore) Record(studentID, subjectID string) *model.Record {
	for _, r := range s.records {
		if r.Matches(studentID, subjectID) {
			return r
		}
	}
	return nil
}

// RecordsForStudent returns the live records of one student in insertion order.
func (s *FileStore) RecordsForStudent(studentID string) []*model.Record {
	var out []*model.Record
	for _, r := range s.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// Records returns a snapshot copy of every record.
func (s *FileStore) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	for i, r := range s.records {
		out[i] = *r
	}
	return out
}

// AppendRecord adds a record without checking for duplicates.
func (s *FileStore) AppendRecord(r *model.Record) {
	s.records = append(s.records, r)
}

// ─── File codec ────────────────────────────────────────────────────────

// LoadStudents reads students.txt.
func LoadStudents(path string) ([]model.Student, error) {
	return loadLines(path, model.ParseStudentLine)
}

// LoadSubjects reads subjects.txt.
func LoadSubjects(path string) ([]model.Subject, error) {
	return loadLines(path, model.ParseSubjectLine)
}

// LoadRecords reads records.txt.
func LoadRecords(path string) ([]model.Record, error) {
	return loadLines(path, model.ParseRecordLine)
}

// SaveStudents writes students.txt with its header line.
func SaveStudents(path string, students []model.Student, atomic bool) error {
	return writeLines(path, model.StudentsHeader, students, atomic)
}

// SaveSubjects writes subjects.txt with its header line.
func SaveSubjects(path string, subjects []model.Subject, atomic bool) error {
	return writeLines(path, model.SubjectsHeader, subjects, atomic)
}

// SaveRecords writes records.txt with its header line.
func SaveRecords(path string, records []model.Record, atomic bool) error {
	return writeLines(path, model.RecordsHeader, records, atomic)
}

// loadLines parses path line by line. A missing file is not an error. The
// first parse failure stops the load and is returned alongside the entries
// decoded so far.
func loadLines[T any](path string, parse func(string) (T, bool, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []T
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if model.IsSkippable(line) {
			continue
		}

		v, ok, err := parse(line)
		if err != nil {
			return out, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		if !ok {
			continue
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

type lineMarshaler interface {
	MarshalLine() string
}

// writeLines renders header plus one line per item. With atomic set the
// content goes to path+".tmp" first and is renamed over path.
func writeLines[T lineMarshaler](path, header string, items []T, atomic bool) error {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, it := range items {
		sb.WriteString(it.MarshalLine())
		sb.WriteString("\n")
	}

	if !atomic {
		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
