package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/inkstone-app/inkstone/internal/ai"
	"github.com/inkstone-app/inkstone/internal/cli"
	"github.com/inkstone-app/inkstone/internal/db"
	"github.com/inkstone-app/inkstone/internal/insight"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.inkstone/inkstone.db
	dbPath := os.Getenv("INKSTONE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".inkstone", "inkstone.db")
	}

	// Plain output when stdout is not a terminal (pipes, cron).
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	insightRepo := repository.NewSQLiteInsightRepo(database)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire AI completion client
	aiCfg := ai.LoadConfig()
	var observer ai.Observer = ai.NoopObserver{}
	if aiCfg.LogCalls {
		observer = ai.NewLogObserver(os.Stderr)
	}
	aiClient := ai.NewChatClient(aiCfg, observer)

	engine := insight.NewEngine(journalRepo, goalRepo, userRepo, insightRepo, aiClient, logger)

	app := &cli.App{
		Users:     service.NewUserService(userRepo),
		Journals:  service.NewJournalService(journalRepo, engine),
		Goals:     service.NewGoalService(goalRepo, engine),
		Insights:  engine,
		Reminders: service.NewReminderService(userRepo, journalRepo, service.NewLogNotifier(os.Stdout), logger),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
