package db

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskvault/internal/models"
)

type demoUser struct {
	name     string
	email    string
	password string
}

var demoUsers = []demoUser{
	{"Admin", "admin@gmail.com", "admin123"},
	{"User", "user@example.com", "user123"},
}

// SeedDefaultUsers creates the demo accounts if they do not exist yet.
// Idempotent across repeated startups: existence is checked by email.
func (db *DB) SeedDefaultUsers() error {
	for _, d := range demoUsers {
		_, err := db.GetUserByEmail(d.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.CreateUser(d.name, d.email, string(hash), false); err != nil {
			return err
		}
		slog.Info("demo_user_seeded", "email", d.email)
	}
	return nil
}

// SeedDefaultTasks gives each demo account one example task, but only when
// that account has no tasks at all, so repeated startups add nothing.
func (db *DB) SeedDefaultTasks() error {
	for _, d := range demoUsers {
		user, err := db.GetUserByEmail(d.email)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		count, err := db.CountTasksByUser(user.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		now := time.Now()
		_, err = db.SaveTask(&models.Task{
			Title:       "Example task for " + user.Name,
			Description: "Delete me once you have real work to track",
			CreatedAt:   now,
			DueAt:       now.AddDate(0, 0, 7),
			Status:      models.StatusTodo,
			Priority:    models.PriorityNormal,
			UserID:      user.ID,
		})
		if err != nil {
			return err
		}
		slog.Info("demo_task_seeded", "email", d.email)
	}
	return nil
}
