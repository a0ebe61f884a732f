package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/stemsi/studentbook/internal/config"
	"github.com/stemsi/studentbook/internal/database"
	"github.com/stemsi/studentbook/internal/logger"
	"github.com/stemsi/studentbook/internal/model"
	"github.com/stemsi/studentbook/internal/repository"
	"github.com/stemsi/studentbook/internal/service"
)

type seedSubject struct {
	id, code, name string
	credits        int
}

var subjects = []seedSubject{
	{"math", "MATH101", "Mathematics", 4},
	{"phys", "PHYS101", "Physics", 3},
	{"inf", "INF101", "Informatics", 3},
}

var names = []string{
	"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
	"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
	"Hendra Gunawan", "Ika Sari", "Jamal Mirdad", "Kiki Fatmala", "Lukman Hakim",
	"Maya Septiana", "Nanda Pratama", "Oki Setiana", "Putri Dian", "Qori Maharani",
}

func main() {
	dataDir := flag.String("data-dir", "", "directory holding the data files")
	flag.Parse()

	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	dir, err := database.OpenDataDir(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data directory")
	}

	store := repository.NewFileStore(dir, cfg.AtomicWrites, log)
	store.Load()
	mgr := service.NewManager(store, log)

	added, err := seed(mgr, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed")
	}
	log.Info().Int("added", added).Msg("Seed finished")
}

// seed adds the sample subjects and students, enrolling each new student in
// every subject. Existing entries are reported and left alone, so running it
// again is safe. It returns the number of students added.
func seed(mgr *service.Manager, out io.Writer) (int, error) {
	fmt.Fprintf(out, "=== Seeding %d Students ===\n", len(names))

	for _, s := range subjects {
		err := mgr.AddSubject(s.id, s.name, s.code, model.IntPtr(s.credits))
		switch {
		case errors.Is(err, service.ErrSubjectExists):
			fmt.Fprintf(out, "Found existing subject %s\n", s.code)
		case err != nil:
			return 0, fmt.Errorf("create subject %s: %w", s.id, err)
		default:
			fmt.Fprintf(out, "Created subject %s\n", s.code)
		}
	}

	successCount := 0
	for i, name := range names {
		id := fmt.Sprintf("s%03d", i+1)
		email := fmt.Sprintf("student%d@example.com", i+1)
		age := 16 + i%3

		if err := mgr.AddStudent(id, name, email, model.IntPtr(age)); err != nil {
			fmt.Fprintf(out, "Error creating student %s (ID: %s): %v\n", name, id, err)
			continue
		}

		for _, s := range subjects {
			if err := mgr.Enroll(id, s.id); err != nil && !errors.Is(err, service.ErrAlreadyEnrolled) {
				fmt.Fprintf(out, "Error enrolling %s in %s: %v\n", id, s.code, err)
			}
		}

		successCount++
		if (i+1)%10 == 0 {
			fmt.Fprintf(out, "Created %d students...\n", i+1)
		}
	}

	fmt.Fprintf(out, "\nSeed completed! Successfully added %d/%d students.\n", successCount, len(names))
	return successCount, nil
}
