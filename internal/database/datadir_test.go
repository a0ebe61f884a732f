package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/studentbook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDataDirCreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "data")

	dir, err := OpenDataDir(&config.Config{DataDir: root}, zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, filepath.Join(root, "students.txt"), dir.Students)
	assert.Equal(t, filepath.Join(root, "subjects.txt"), dir.Subjects)
	assert.Equal(t, filepath.Join(root, "records.txt"), dir.Records)
	assert.Equal(t, filepath.Join(root, "enrollments.txt"), dir.Enrollments)
}

func TestOpenDataDirRequiresPath(t *testing.T) {
	_, err := OpenDataDir(&config.Config{}, zerolog.Nop())
	assert.Error(t, err)
}
