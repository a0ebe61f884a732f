package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stemsi/studentbook/internal/cli"
	"github.com/stemsi/studentbook/internal/config"
	"github.com/stemsi/studentbook/internal/database"
	"github.com/stemsi/studentbook/internal/logger"
	"github.com/stemsi/studentbook/internal/repository"
	"github.com/stemsi/studentbook/internal/service"
	"golang.org/x/term"
)

var (
	// dataDir overrides STUDENTBOOK_DATA_DIR when set.
	dataDir string

	log     zerolog.Logger
	manager *service.Manager
)

var rootCmd = &cobra.Command{
	Use:   "studentbook",
	Short: "Track students, subjects, grades and attendance",
	Long: `studentbook keeps a small gradebook in plain text files.

Run without arguments for the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the data files (default $STUDENTBOOK_DATA_DIR or ./data)")

	rootCmd.AddCommand(studentsCmd, subjectsCmd, reportCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and data before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log = logger.Setup(cfg.LogLevel, cfg.LogFormat).
		With().
		Str("session_id", uuid.New().String()).
		Logger()

	// ─── Open Data Directory ───────────────────────────────────────────
	dir, err := database.OpenDataDir(cfg, log)
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	// ─── Load Store & Manager ──────────────────────────────────────────
	store := repository.NewFileStore(dir, cfg.AtomicWrites, log)
	store.Load()
	manager = service.NewManager(store, log)

	log.Debug().Str("command", cmd.Name()).Msg("Starting studentbook")
	return nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Initializing Student Management System...")

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	menu := cli.NewMenu(manager, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
	return menu.Run()
}
