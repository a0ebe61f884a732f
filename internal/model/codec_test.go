package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudentLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Student
		wantOK bool
	}{
		{"all columns", "s1|Ann Lee|ann@example.com|20", Student{ID: "s1", Name: "Ann Lee", Email: "ann@example.com", Age: IntPtr(20)}, true},
		{"empty age", "s1|Ann Lee|ann@example.com|", Student{ID: "s1", Name: "Ann Lee", Email: "ann@example.com"}, true},
		{"missing age column", "s1|Ann Lee|ann@example.com", Student{ID: "s1", Name: "Ann Lee", Email: "ann@example.com"}, true},
		{"padded columns", "  s1 | Ann Lee | ann@example.com | 20 ", Student{ID: "s1", Name: "Ann Lee", Email: "ann@example.com", Age: IntPtr(20)}, true},
		{"too few columns", "s1|Ann Lee", Student{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseStudentLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStudentLineRejectsBadAge(t *testing.T) {
	_, _, err := ParseStudentLine("s1|Ann|ann@example.com|twenty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestSubjectColumnsPutCodeBeforeName(t *testing.T) {
	sub, ok, err := ParseSubjectLine("m1|MATH101|Mathematics|4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "MATH101", sub.Code)
	assert.Equal(t, "Mathematics", sub.Name)
	assert.Equal(t, 4, *sub.Credits)

	line := Subject{ID: "m1", Name: "Mathematics", Code: "MATH101"}.MarshalLine()
	assert.Equal(t, "m1|MATH101|Mathematics|", line)

	back, ok, err := ParseSubjectLine(line)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Subject{ID: "m1", Name: "Mathematics", Code: "MATH101"}, back)
}

func TestParseSubjectLineRejectsBadCredits(t *testing.T) {
	_, _, err := ParseSubjectLine("m1|MATH101|Mathematics|four")
	require.Error(t, err)
}

func TestParseRecordLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{"keys only", "s1|m1", Record{StudentID: "s1", SubjectID: "m1"}},
		{"empty optionals", "s1|m1|||", Record{StudentID: "s1", SubjectID: "m1"}},
		{"grade only", "s1|m1|85.0", Record{StudentID: "s1", SubjectID: "m1", Grade: FloatPtr(85)}},
		{"integer grade", "s1|m1|90||", Record{StudentID: "s1", SubjectID: "m1", Grade: FloatPtr(90)}},
		{"attendance only", "s1|m1||3|4", Record{StudentID: "s1", SubjectID: "m1", Attendance: IntPtr(3), TotalClasses: IntPtr(4)}},
		{"everything", "s1|m1|72.5|3|4", Record{StudentID: "s1", SubjectID: "m1", Grade: FloatPtr(72.5), Attendance: IntPtr(3), TotalClasses: IntPtr(4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseRecordLine(tt.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok, err := ParseRecordLine("s1")
	require.NoError(t, err)
	assert.False(t, ok)

	for _, bad := range []string{"s1|m1|A+", "s1|m1||x", "s1|m1||1|many"} {
		_, _, err := ParseRecordLine(bad)
		assert.Error(t, err, bad)
	}
}

func TestRecordMarshalLine(t *testing.T) {
	assert.Equal(t, "s1|m1|||", Record{StudentID: "s1", SubjectID: "m1"}.MarshalLine())
	assert.Equal(t, "s1|m1|85.0||", Record{StudentID: "s1", SubjectID: "m1", Grade: FloatPtr(85)}.MarshalLine())
	assert.Equal(t, "s1|m1|72.5|0|1",
		Record{StudentID: "s1", SubjectID: "m1", Grade: FloatPtr(72.5), Attendance: IntPtr(0), TotalClasses: IntPtr(1)}.MarshalLine())
}

func TestStudentMarshalLineKeepsZeroAge(t *testing.T) {
	assert.Equal(t, "s1|Ann|a@x|0", Student{ID: "s1", Name: "Ann", Email: "a@x", Age: IntPtr(0)}.MarshalLine())
	assert.Equal(t, "s1|Ann|a@x|", Student{ID: "s1", Name: "Ann", Email: "a@x"}.MarshalLine())
}

func TestFormatGrade(t *testing.T) {
	assert.Equal(t, "0.0", FormatGrade(0))
	assert.Equal(t, "85.0", FormatGrade(85))
	assert.Equal(t, "72.5", FormatGrade(72.5))
	assert.Equal(t, "100.0", FormatGrade(100))
	assert.Equal(t, "99.75", FormatGrade(99.75))
}

func TestAttendanceRate(t *testing.T) {
	rate, ok := Record{Attendance: IntPtr(3), TotalClasses: IntPtr(4)}.AttendanceRate()
	assert.True(t, ok)
	assert.InDelta(t, 75.0, rate, 1e-9)

	rate, ok = Record{Attendance: IntPtr(0), TotalClasses: IntPtr(0)}.AttendanceRate()
	assert.True(t, ok)
	assert.Zero(t, rate)

	_, ok = Record{Attendance: IntPtr(2)}.AttendanceRate()
	assert.False(t, ok)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "ID: s1, Name: Ann, Email: a@x, Age: 20",
		Student{ID: "s1", Name: "Ann", Email: "a@x", Age: IntPtr(20)}.String())
	assert.Equal(t, "ID: s1, Name: Ann, Email: a@x",
		Student{ID: "s1", Name: "Ann", Email: "a@x"}.String())
	assert.Equal(t, "ID: m1, Code: MATH101, Name: Mathematics, Credits: 4",
		Subject{ID: "m1", Code: "MATH101", Name: "Mathematics", Credits: IntPtr(4)}.String())
	assert.Equal(t, "Student: s1, Subject: m1, Grade: 85.0, Attendance: 3/4 (75.0%)",
		Record{StudentID: "s1", SubjectID: "m1", Grade: FloatPtr(85), Attendance: IntPtr(3), TotalClasses: IntPtr(4)}.String())
}

func TestIsSkippable(t *testing.T) {
	assert.True(t, IsSkippable(""))
	assert.True(t, IsSkippable("   "))
	assert.True(t, IsSkippable("# Student ID | Name"))
	assert.True(t, IsSkippable("  # indented comment"))
	assert.False(t, IsSkippable("s1|Ann|a@x"))
}
