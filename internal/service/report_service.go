package service

import (
	"github.com/stemsi/studentbook/internal/model"
)

// StudentReport gathers a student and every record keyed to them, each paired
// with its subject. A record whose subject is missing gets a nil Subject.
func (m *Manager) StudentReport(studentID string) (*model.StudentReport, error) {
	student, ok := m.store.Student(studentID)
	if !ok {
		return nil, ErrStudentNotFound
	}

	records := m.StudentRecords(studentID)
	report := &model.StudentReport{
		Student: student,
		Entries: make([]model.ReportEntry, 0, len(records)),
	}

	for i := range records {
		entry := model.ReportEntry{Record: &records[i]}
		if sub, ok := m.store.Subject(records[i].SubjectID); ok {
			entry.Subject = &sub
		}
		report.Entries = append(report.Entries, entry)
	}

	return report, nil
}
