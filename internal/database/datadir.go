package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/stemsi/studentbook/internal/config"
)

// File names inside the data directory.
const (
	StudentsFile    = "students.txt"
	SubjectsFile    = "subjects.txt"
	RecordsFile     = "records.txt"
	EnrollmentsFile = "enrollments.txt"
)

// DataDir resolves the data files used by the store.
type DataDir struct {
	Root     string
	Students string
	Subjects string
	Records  string
	// Enrollments is reserved. Enrollment state lives in Records and this
	// file is never read or written.
	Enrollments string
}

// Resolve builds the file paths for root without touching the filesystem.
func Resolve(root string) *DataDir {
	return &DataDir{
		Root:        root,
		Students:    filepath.Join(root, StudentsFile),
		Subjects:    filepath.Join(root, SubjectsFile),
		Records:     filepath.Join(root, RecordsFile),
		Enrollments: filepath.Join(root, EnrollmentsFile),
	}
}

// OpenDataDir creates the configured data directory if needed and returns its
// resolved paths.
func OpenDataDir(cfg *config.Config, log zerolog.Logger) (*DataDir, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory is not set")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dir := Resolve(cfg.DataDir)

	log.Debug().
		Str("root", dir.Root).
		Bool("atomic_writes", cfg.AtomicWrites).
		Msg("Data directory ready")

	return dir, nil
}
