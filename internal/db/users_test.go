package db

import (
	"errors"
	"testing"
	"time"

	"taskvault/internal/models"
)

func TestCreateAndGetUser(t *testing.T) {
	database := openTestDB(t)

	user, err := database.CreateUser("Ana", "ana@mail.com", "hash", true)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected generated id")
	}
	if user.LastLogin != nil {
		t.Error("fresh user should have no last login")
	}
	if !user.DarkMode {
		t.Error("dark mode not persisted")
	}

	byEmail, err := database.GetUserByEmail("ana@mail.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.Name != "Ana" {
		t.Errorf("round trip mismatch: %+v", byEmail)
	}

	// Email matching is case-sensitive.
	if _, err := database.GetUserByEmail("ANA@mail.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for different case, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := openTestDB(t)

	if _, err := database.CreateUser("Ana", "ana@mail.com", "hash", false); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	_, err := database.CreateUser("Other", "ana@mail.com", "hash2", false)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestUpdateUserPatch(t *testing.T) {
	database := openTestDB(t)

	user, err := database.CreateUser("Ana", "ana@mail.com", "hash", false)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	name := "Ana Maria"
	dark := true
	if err := database.UpdateUser(user.ID, UserPatch{Name: &name, DarkMode: &dark}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	got, err := database.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.Name != "Ana Maria" || !got.DarkMode {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.Email != "ana@mail.com" || got.PasswordHash != "hash" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	// Empty patch is a safe no-op.
	if err := database.UpdateUser(user.ID, UserPatch{}); err != nil {
		t.Fatalf("empty patch: %v", err)
	}

	if err := database.UpdateUser(99999, UserPatch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTouchLastLogin(t *testing.T) {
	database := openTestDB(t)

	user, err := database.CreateUser("Ana", "ana@mail.com", "hash", false)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	at := time.Now().Truncate(time.Second)
	if err := database.TouchLastLogin(user.ID, at); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}

	got, err := database.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.LastLogin == nil || !got.LastLogin.Equal(at) {
		t.Errorf("last login = %v, want %v", got.LastLogin, at)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	database := openTestDB(t)

	user, err := database.CreateUser("Ana", "ana@mail.com", "hash", false)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	now := time.Now()
	if _, err := database.SaveTask(&models.Task{
		Title: "t", Description: "d", CreatedAt: now, DueAt: now,
		Status: models.StatusTodo, Priority: models.PriorityNormal, UserID: user.ID,
	}); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}
	if _, err := database.CreateEvent(&models.Event{
		Title: "e", Date: "2026-03-01", Time: "10:00",
		Priority: models.PriorityNormal, UserID: user.ID,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := database.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	count, err := database.CountTasksByUser(user.ID)
	if err != nil {
		t.Fatalf("CountTasksByUser: %v", err)
	}
	if count != 0 {
		t.Errorf("tasks survived account deletion: %d", count)
	}
	events, err := database.ListEventsByUser(user.ID)
	if err != nil {
		t.Fatalf("ListEventsByUser: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events survived account deletion: %d", len(events))
	}

	if err := database.DeleteUser(user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}
