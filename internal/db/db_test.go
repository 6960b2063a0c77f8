package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpenCreatesSchemaOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := first.CreateUser("Ana", "ana@mail.com", "hash", false); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	first.Close()

	// Reopening must be a no-op for the schema, not a reset.
	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()

	if _, err := second.GetUserByEmail("ana@mail.com"); err != nil {
		t.Fatalf("user lost across reopen: %v", err)
	}
}

func TestSettings(t *testing.T) {
	database := openTestDB(t)

	got, err := database.GetSetting("missing")
	if err != nil || got != "" {
		t.Fatalf("GetSetting(missing) = %q, %v", got, err)
	}

	if err := database.SetSetting("last_email", "ana@mail.com"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := database.SetSetting("last_email", "bob@mail.com"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}

	got, err = database.GetSetting("last_email")
	if err != nil || got != "bob@mail.com" {
		t.Fatalf("GetSetting = %q, %v", got, err)
	}
}
