package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stemsi/studentbook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleReport() *model.StudentReport {
	return &model.StudentReport{
		Student: model.Student{ID: "s1", Name: "Ann Lee", Email: "ann@example.com", Age: model.IntPtr(20)},
		Entries: []model.ReportEntry{
			{
				Subject: &model.Subject{ID: "m1", Name: "Mathematics", Code: "MATH101"},
				Record:  &model.Record{StudentID: "s1", SubjectID: "m1", Grade: model.FloatPtr(88.5), Attendance: model.IntPtr(3), TotalClasses: model.IntPtr(4)},
			},
			{
				Record: &model.Record{StudentID: "s1", SubjectID: "gone"},
			},
		},
	}
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportYAML(&buf, sampleReport()))

	var decoded model.StudentReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Ann Lee", decoded.Student.Name)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "MATH101", decoded.Entries[0].Subject.Code)
	assert.Equal(t, 88.5, *decoded.Entries[0].Record.Grade)
	assert.Nil(t, decoded.Entries[1].Subject)
	assert.Nil(t, decoded.Entries[1].Record.Grade)
	assert.Contains(t, buf.String(), "student_id: s1")
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradebook.xlsx")
	err := WriteWorkbook(path, Workbook{
		Students: []model.Student{
			{ID: "s1", Name: "Ann Lee", Email: "ann@example.com", Age: model.IntPtr(20)},
			{ID: "s2", Name: "Bo Chen", Email: "bo@example.com"},
		},
		Subjects: []model.Subject{{ID: "m1", Name: "Mathematics", Code: "MATH101", Credits: model.IntPtr(4)}},
		Records: []model.Record{
			{StudentID: "s1", SubjectID: "m1", Grade: model.FloatPtr(88.5), Attendance: model.IntPtr(3), TotalClasses: model.IntPtr(4)},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{StudentsSheet, SubjectsSheet, RecordsSheet}, f.GetSheetList())

	students, err := f.GetRows(StudentsSheet)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, []string{"Student ID", "Name", "Email", "Age"}, students[0])
	assert.Equal(t, []string{"s1", "Ann Lee", "ann@example.com", "20"}, students[1])
	assert.Equal(t, []string{"s2", "Bo Chen", "bo@example.com"}, students[2][:3])

	age, err := f.GetCellValue(StudentsSheet, "D3")
	require.NoError(t, err)
	assert.Empty(t, age)

	code, err := f.GetCellValue(SubjectsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "MATH101", code)

	grade, err := f.GetCellValue(RecordsSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "88.5", grade)

	rate, err := f.GetCellValue(RecordsSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "75", rate)
}
