package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"taskvault/internal/config"
	"taskvault/internal/controller"
	"taskvault/internal/db"
	"taskvault/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// setupSlog writes JSON logs to a file; the terminal belongs to the TUI.
func setupSlog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return f, nil
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("taskvault %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	// A missing .env file is fine; the environment still applies.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupSlog(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.Seed {
		if err := store.SeedDefaultUsers(); err != nil {
			slog.Warn("seed_users_failed", "error", err)
		}
		if err := store.SeedDefaultTasks(); err != nil {
			slog.Warn("seed_tasks_failed", "error", err)
		}
	}

	ctrl := controller.New(store, cfg.RetentionDays)

	// Sweep once on startup, then on the configured interval.
	ctrl.CleanupCompletedTasks()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.RunSweeper(ctx, cfg.SweepInterval)

	app := ui.NewApp(ctrl, store)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
