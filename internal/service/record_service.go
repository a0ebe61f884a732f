package service

import (
	"github.com/stemsi/studentbook/internal/model"
)

// Enroll creates an empty record for the pair. Both sides must exist and the
// pair must not be enrolled yet.
func (m *Manager) Enroll(studentID, subjectID string) error {
	if err := m.requirePair(studentID, subjectID); err != nil {
		return err
	}
	if m.store.Record(studentID, subjectID) != nil {
		return ErrAlreadyEnrolled
	}

	m.store.AppendRecord(&model.Record{StudentID: studentID, SubjectID: subjectID})
	m.log.Info().Str("student_id", studentID).Str("subject_id", subjectID).Msg("Student enrolled")
	return m.Save()
}

// AddGrade sets or overwrites the grade for the pair. Without an existing
// record one is created, provided both the student and the subject exist.
func (m *Manager) AddGrade(studentID, subjectID string, grade float64) error {
	if !(grade >= model.MinGrade && grade <= model.MaxGrade) {
		return ErrGradeOutOfRange
	}

	rec := m.store.Record(studentID, subjectID)
	if rec == nil {
		if err := m.requirePair(studentID, subjectID); err != nil {
			return err
		}
		m.store.AppendRecord(&model.Record{
			StudentID: studentID,
			SubjectID: subjectID,
			Grade:     model.FloatPtr(grade),
		})
	} else {
		rec.Grade = model.FloatPtr(grade)
	}

	m.log.Info().
		Str("student_id", studentID).
		Str("subject_id", subjectID).
		Float64("grade", grade).
		Msg("Grade recorded")
	return m.Save()
}

// MarkAttendance records one class session for the pair.
//
// When totalClasses is nil the total acts as a running count of sessions: it
// starts at 1 and is raised so it never falls below the attended count. An
// explicit totalClasses is stored as given, even when it is smaller than the
// attended count.
func (m *Manager) MarkAttendance(studentID, subjectID string, attended bool, totalClasses *int) error {
	if err := m.requirePair(studentID, subjectID); err != nil {
		return err
	}

	rec := m.store.Record(studentID, subjectID)
	if rec == nil {
		rec = &model.Record{StudentID: studentID, SubjectID: subjectID}
		m.store.AppendRecord(rec)
	}

	applyAttendance(rec, attended, totalClasses)

	m.log.Info().
		Str("student_id", studentID).
		Str("subject_id", subjectID).
		Bool("attended", attended).
		Int("attendance", *rec.Attendance).
		Int("total_classes", *rec.TotalClasses).
		Msg("Attendance marked")
	return m.Save()
}

func applyAttendance(rec *model.Record, attended bool, totalClasses *int) {
	if totalClasses != nil {
		rec.TotalClasses = model.IntPtr(*totalClasses)
	}
	if rec.TotalClasses == nil {
		rec.TotalClasses = model.IntPtr(1)
	}

	switch {
	case attended && rec.Attendance == nil:
		rec.Attendance = model.IntPtr(1)
	case attended:
		rec.Attendance = model.IntPtr(*rec.Attendance + 1)
	case rec.Attendance == nil:
		rec.Attendance = model.IntPtr(0)
	}

	if totalClasses != nil {
		rec.TotalClasses = model.IntPtr(*totalClasses)
		return
	}
	rec.TotalClasses = model.IntPtr(max(*rec.TotalClasses, *rec.Attendance))
}

// Record returns a copy of the pair's record.
func (m *Manager) Record(studentID, subjectID string) (model.Record, bool) {
	rec := m.store.Record(studentID, subjectID)
	if rec == nil {
		return model.Record{}, false
	}
	return *rec, true
}

// StudentRecords returns copies of every record of one student.
func (m *Manager) StudentRecords(studentID string) []model.Record {
	live := m.store.RecordsForStudent(studentID)
	out := make([]model.Record, len(live))
	for i, r := range live {
		out[i] = *r
	}
	return out
}

// Records returns copies of every record.
func (m *Manager) Records() []model.Record {
	return m.store.Records()
}

func (m *Manager) requirePair(studentID, subjectID string) error {
	if _, ok := m.store.Student(studentID); !ok {
		return ErrStudentNotFound
	}
	if _, ok := m.store.Subject(subjectID); !ok {
		return ErrSubjectNotFound
	}
	return nil
}
