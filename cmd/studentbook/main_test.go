package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stemsi/studentbook/internal/database"
	"github.com/stemsi/studentbook/internal/model"
	"github.com/stemsi/studentbook/internal/repository"
	"github.com/stemsi/studentbook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// withManager installs a seeded manager as the command-level global.
func withManager(t *testing.T) {
	t.Helper()
	log = zerolog.Nop()

	store := repository.NewFileStore(database.Resolve(t.TempDir()), true, log)
	store.Load()
	manager = service.NewManager(store, log)
	t.Cleanup(func() { manager = nil })

	require.NoError(t, manager.AddStudent("s1", "Ann Lee", "ann@example.com", model.IntPtr(20)))
	require.NoError(t, manager.AddSubject("m1", "Mathematics", "MATH101", nil))
	require.NoError(t, manager.Enroll("s1", "m1"))
	require.NoError(t, manager.AddGrade("s1", "m1", 91))
}

func captured() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunReportText(t *testing.T) {
	withManager(t)
	reportFormat = "text"

	cmd, out := captured()
	require.NoError(t, runReport(cmd, []string{"s1"}))
	assert.Contains(t, out.String(), "STUDENT REPORT: Ann Lee")
	assert.Contains(t, out.String(), "Grade: 91.0")
}

func TestRunReportYAML(t *testing.T) {
	withManager(t)
	reportFormat = "yaml"
	defer func() { reportFormat = "text" }()

	cmd, out := captured()
	require.NoError(t, runReport(cmd, []string{"s1"}))
	assert.Contains(t, out.String(), "name: Ann Lee")
	assert.Contains(t, out.String(), "grade: 91")
}

func TestRunReportErrors(t *testing.T) {
	withManager(t)

	cmd, _ := captured()
	err := runReport(cmd, []string{"ghost"})
	require.Error(t, err)
	assert.Equal(t, "Student not found.", err.Error())

	reportFormat = "xml"
	defer func() { reportFormat = "text" }()
	assert.Error(t, runReport(cmd, []string{"s1"}))
}

func TestRunListings(t *testing.T) {
	withManager(t)

	cmd, out := captured()
	require.NoError(t, runStudents(cmd, nil))
	require.NoError(t, runSubjects(cmd, nil))

	text := out.String()
	assert.Contains(t, text, "ID: s1, Name: Ann Lee")
	assert.Contains(t, text, "ID: m1, Code: MATH101, Name: Mathematics")
}

func TestRunExport(t *testing.T) {
	withManager(t)
	path := filepath.Join(t.TempDir(), "book.xlsx")

	cmd, out := captured()
	require.NoError(t, runExport(cmd, []string{path}))
	assert.True(t, strings.HasPrefix(out.String(), "Exported 1 students, 1 subjects and 1 records"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Students", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", name)
}
