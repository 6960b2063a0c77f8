// Package controller holds the business rules between the shell and the
// store: who is authenticated, what input is valid, and which status
// transitions are allowed. Every operation reports back as an (ok, message)
// pair the shell can render verbatim.
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskvault/internal/db"
	"taskvault/internal/models"
)

const msgNotAuthenticated = "not authenticated"

// Session is the minimal profile handed to a shell after login. The
// credential is never part of it.
type Session struct {
	Token    string
	UserID   int64
	Name     string
	Email    string
	DarkMode bool
}

// Controller mediates all business operations. Authenticated identities
// live in a token table rather than as a single "current user" field, so
// one controller can serve several concurrent sessions.
type Controller struct {
	store         *db.DB
	retentionDays int

	mu       sync.Mutex
	sessions map[string]int64 // token -> user id

	now func() time.Time
}

// New creates a controller over the given store. retentionDays is the
// completed-task retention window used by CleanupCompletedTasks.
func New(store *db.DB, retentionDays int) *Controller {
	return &Controller{
		store:         store,
		retentionDays: retentionDays,
		sessions:      make(map[string]int64),
		now:           time.Now,
	}
}

// userFor resolves a session token to the numeric user id.
func (c *Controller) userFor(token string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.sessions[token]
	return id, ok
}

func newToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RegisterUser validates and creates a new account. The password is stored
// as a bcrypt hash, never as plaintext.
func (c *Controller) RegisterUser(name, email, password string) (bool, string) {
	u := &models.User{Name: name, Email: email}
	if ok, reason := u.Validate(password); !ok {
		return false, reason
	}

	if _, err := c.store.GetUserByEmail(email); err == nil {
		return false, "email already in use"
	} else if !errors.Is(err, db.ErrNotFound) {
		return false, "store unavailable, try again later"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, "could not register user"
	}

	if _, err := c.store.CreateUser(name, email, string(hash), false); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return false, "email already in use"
		}
		slog.Error("register_failed", "email", email, "error", err)
		return false, "could not register user"
	}
	return true, "user registered successfully"
}

// Login checks the credential and, on success, opens a session and stamps
// the user's last login time.
func (c *Controller) Login(email, password string, remember bool) (bool, string, *Session) {
	user, err := c.store.GetUserByEmail(email)
	if errors.Is(err, db.ErrNotFound) {
		return false, "user not found", nil
	}
	if err != nil {
		return false, "store unavailable, try again later", nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		slog.Info("login_rejected", "email", email)
		return false, "incorrect password", nil
	}

	if err := c.store.TouchLastLogin(user.ID, c.now()); err != nil {
		slog.Warn("last_login_stamp_failed", "user", user.ID, "error", err)
	}
	if remember != user.RememberMe {
		patch := db.UserPatch{RememberMe: &remember}
		if err := c.store.UpdateUser(user.ID, patch); err != nil {
			slog.Warn("remember_me_update_failed", "user", user.ID, "error", err)
		}
	}

	token := newToken()
	c.mu.Lock()
	c.sessions[token] = user.ID
	c.mu.Unlock()

	return true, "login successful", &Session{
		Token:    token,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		DarkMode: user.DarkMode,
	}
}

// Logout closes the session. Idempotent: an unknown or already-closed
// token is not an error.
func (c *Controller) Logout(token string) {
	c.mu.Lock()
	delete(c.sessions, token)
	c.mu.Unlock()
}

// TaskInput is the shell-facing shape for creating a task.
type TaskInput struct {
	Title       string
	Description string
	StartAt     time.Time
	DueAt       time.Time
	Priority    models.Priority
	Category    string
	GroupID     *int64
	TypeID      *int64
}

// CreateTask creates a task for the authenticated user. New tasks always
// start in the todo state.
func (c *Controller) CreateTask(token string, in TaskInput) (bool, string, *models.Task) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated, nil
	}

	t := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   in.StartAt,
		DueAt:       in.DueAt,
		Status:      models.StatusTodo,
		Priority:    in.Priority,
		Category:    in.Category,
		UserID:      userID,
		GroupID:     in.GroupID,
		TypeID:      in.TypeID,
	}
	if ok, reason := t.Validate(); !ok {
		return false, reason, nil
	}

	saved, err := c.store.SaveTask(t)
	if err != nil {
		slog.Error("task_create_failed", "user", userID, "error", err)
		return false, "could not create task", nil
	}
	return true, "task created successfully", saved
}

// TaskPatch enumerates the task fields a caller may change. Status moves
// through it as well, subject to the transition rules.
type TaskPatch struct {
	Title       *string
	Description *string
	DueAt       *time.Time
	Priority    *models.Priority
	Status      *models.Status
	Category    *string
	GroupID     *int64
	TypeID      *int64
}

// allowedTransition reports whether a task may move between two states.
// The order is todo, in-progress, completed; in-progress is skippable and
// nothing leaves completed.
func allowedTransition(from, to models.Status) bool {
	if from == to {
		return true
	}
	switch from {
	case models.StatusTodo:
		return to == models.StatusInProgress || to == models.StatusCompleted
	case models.StatusInProgress:
		return to == models.StatusCompleted
	}
	return false
}

// UpdateTask applies a patch to a task the authenticated user owns.
func (c *Controller) UpdateTask(token string, id int64, patch TaskPatch) (bool, string) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated
	}

	t, err := c.store.GetTaskForUser(id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return false, "task not found"
	}
	if err != nil {
		return false, "store unavailable, try again later"
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueAt != nil {
		t.DueAt = *patch.DueAt
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.GroupID != nil {
		t.GroupID = patch.GroupID
	}
	if patch.TypeID != nil {
		t.TypeID = patch.TypeID
	}
	if patch.Status != nil && *patch.Status != t.Status {
		if !allowedTransition(t.Status, *patch.Status) {
			return false, "invalid status transition"
		}
		t.Status = *patch.Status
		if t.Status == models.StatusCompleted {
			at := c.now()
			t.CompletedAt = &at
		}
	}

	if ok, reason := t.Validate(); !ok {
		return false, reason
	}

	if _, err := c.store.SaveTask(t); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, "task not found"
		}
		return false, "could not update task"
	}
	return true, "task updated successfully"
}

// CompleteTask marks a task completed and stamps the completion time.
// Already-completed tasks stay as they are.
func (c *Controller) CompleteTask(token string, id int64) (bool, string) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated
	}

	t, err := c.store.GetTaskForUser(id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return false, "task not found"
	}
	if err != nil {
		return false, "store unavailable, try again later"
	}
	if t.Status == models.StatusCompleted {
		return true, "task already completed"
	}

	t.Status = models.StatusCompleted
	at := c.now()
	t.CompletedAt = &at

	if _, err := c.store.SaveTask(t); err != nil {
		return false, "could not complete task"
	}
	return true, "task completed successfully"
}

// DeleteTask removes a task the authenticated user owns.
func (c *Controller) DeleteTask(token string, id int64) (bool, string) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated
	}

	err := c.store.DeleteTask(id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return false, "task not found"
	}
	if err != nil {
		return false, "could not delete task"
	}
	return true, "task deleted successfully"
}

// GetTasks returns all tasks of the authenticated user.
func (c *Controller) GetTasks(token string) (bool, string, []models.Task) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated, nil
	}

	tasks, err := c.store.ListTasksByUser(userID)
	if err != nil {
		return false, "could not load tasks", nil
	}
	return true, "", tasks
}

// GetTaskByID returns one task of the authenticated user.
func (c *Controller) GetTaskByID(token string, id int64) (bool, string, *models.Task) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated, nil
	}

	t, err := c.store.GetTaskForUser(id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return false, "task not found", nil
	}
	if err != nil {
		return false, "store unavailable, try again later", nil
	}
	return true, "", t
}

// CreateEvent creates a calendar event for the authenticated user.
func (c *Controller) CreateEvent(token, title, description, date, timeOfDay string, priority models.Priority) (bool, string, *models.Event) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated, nil
	}
	if title == "" {
		return false, "title is required", nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return false, "invalid date, expected YYYY-MM-DD", nil
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return false, "invalid time, expected HH:MM", nil
	}
	if _, err := models.ParsePriority(string(priority)); err != nil {
		return false, "invalid priority", nil
	}

	e, err := c.store.CreateEvent(&models.Event{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        timeOfDay,
		Priority:    priority,
		UserID:      userID,
	})
	if err != nil {
		return false, "could not create event", nil
	}
	return true, "event created successfully", e
}

// GetEvents returns all events of the authenticated user.
func (c *Controller) GetEvents(token string) (bool, string, []models.Event) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated, nil
	}

	events, err := c.store.ListEventsByUser(userID)
	if err != nil {
		return false, "could not load events", nil
	}
	return true, "", events
}

// DeleteEvent removes an event the authenticated user owns.
func (c *Controller) DeleteEvent(token string, id int64) (bool, string) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated
	}

	err := c.store.DeleteEvent(id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return false, "event not found"
	}
	if err != nil {
		return false, "could not delete event"
	}
	return true, "event deleted successfully"
}

// SetDarkMode updates the authenticated user's theme preference.
func (c *Controller) SetDarkMode(token string, on bool) (bool, string) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated
	}

	if err := c.store.UpdateUser(userID, db.UserPatch{DarkMode: &on}); err != nil {
		return false, "could not update preferences"
	}
	return true, "preferences updated"
}

// DeleteAccount re-authenticates and deletes the user. Owned tasks and
// events go with the account; every open session of that user is closed.
func (c *Controller) DeleteAccount(token, password string) (bool, string) {
	userID, ok := c.userFor(token)
	if !ok {
		return false, msgNotAuthenticated
	}

	user, err := c.store.GetUserByID(userID)
	if err != nil {
		return false, "user not found"
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return false, "incorrect password"
	}

	if err := c.store.DeleteUser(userID); err != nil {
		return false, "could not delete account"
	}

	c.mu.Lock()
	for t, id := range c.sessions {
		if id == userID {
			delete(c.sessions, t)
		}
	}
	c.mu.Unlock()

	slog.Info("account_deleted", "user", userID)
	return true, "account deleted"
}

// CleanupCompletedTasks purges completed tasks older than the retention
// window. Callable on demand; the sweeper invokes it on a schedule.
func (c *Controller) CleanupCompletedTasks() (bool, string) {
	cutoff := c.now().AddDate(0, 0, -c.retentionDays)
	n, err := c.store.SweepCompletedTasks(cutoff)
	if err != nil {
		slog.Error("cleanup_failed", "error", err)
		return false, "cleanup failed"
	}
	if n == 0 {
		return true, "nothing to clean up"
	}
	return true, "removed old completed tasks"
}
