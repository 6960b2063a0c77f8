package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKVAULT_DB", "/tmp/taskvault-test/app.db")
	t.Setenv("TASKVAULT_RETENTION_DAYS", "")
	t.Setenv("TASKVAULT_SWEEP_INTERVAL", "")
	t.Setenv("TASKVAULT_SEED", "")
	t.Setenv("TASKVAULT_LOG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RetentionDays != DefaultRetentionDays {
		t.Errorf("RetentionDays = %d", cfg.RetentionDays)
	}
	if cfg.SweepInterval != DefaultSweepInterval {
		t.Errorf("SweepInterval = %v", cfg.SweepInterval)
	}
	if !cfg.Seed {
		t.Error("Seed should default to true")
	}
	if cfg.LogPath != "/tmp/taskvault-test/taskvault.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKVAULT_DB", "/tmp/taskvault-test/app.db")
	t.Setenv("TASKVAULT_RETENTION_DAYS", "14")
	t.Setenv("TASKVAULT_SWEEP_INTERVAL", "1h")
	t.Setenv("TASKVAULT_SEED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RetentionDays != 14 {
		t.Errorf("RetentionDays = %d", cfg.RetentionDays)
	}
	if cfg.SweepInterval != time.Hour {
		t.Errorf("SweepInterval = %v", cfg.SweepInterval)
	}
	if cfg.Seed {
		t.Error("Seed override ignored")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("TASKVAULT_DB", "/tmp/taskvault-test/app.db")
	t.Setenv("TASKVAULT_RETENTION_DAYS", "minus five")
	t.Setenv("TASKVAULT_SWEEP_INTERVAL", "-3h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RetentionDays != DefaultRetentionDays {
		t.Errorf("garbage retention accepted: %d", cfg.RetentionDays)
	}
	if cfg.SweepInterval != DefaultSweepInterval {
		t.Errorf("negative interval accepted: %v", cfg.SweepInterval)
	}
}
