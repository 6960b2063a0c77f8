// Package config reads the environment into a typed configuration.
// Values come from TASKVAULT_* variables; main loads a .env file first
// when one is present.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"taskvault/internal/db"
)

const (
	// DefaultRetentionDays is how long completed tasks are kept before
	// the sweeper removes them.
	DefaultRetentionDays = 5

	// DefaultSweepInterval is how often the background sweep runs.
	DefaultSweepInterval = 24 * time.Hour
)

// Config holds the runtime settings.
type Config struct {
	// DBPath is the SQLite file location.
	DBPath string

	// LogPath is the structured log destination.
	LogPath string

	// RetentionDays is the completed-task retention window.
	RetentionDays int

	// SweepInterval is the background sweep period.
	SweepInterval time.Duration

	// Seed enables demo users/tasks on startup.
	Seed bool
}

// Load builds a Config from the environment, falling back to defaults for
// anything unset or unparseable.
func Load() (*Config, error) {
	cfg := &Config{
		RetentionDays: DefaultRetentionDays,
		SweepInterval: DefaultSweepInterval,
		Seed:          true,
	}

	cfg.DBPath = os.Getenv("TASKVAULT_DB")
	if cfg.DBPath == "" {
		path, err := db.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	cfg.LogPath = os.Getenv("TASKVAULT_LOG")
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(filepath.Dir(cfg.DBPath), "taskvault.log")
	}

	if v := os.Getenv("TASKVAULT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetentionDays = n
		}
	}
	if v := os.Getenv("TASKVAULT_SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SweepInterval = d
		}
	}
	if v := os.Getenv("TASKVAULT_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Seed = b
		}
	}

	return cfg, nil
}
