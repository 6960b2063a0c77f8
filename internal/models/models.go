package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Priority ranks how urgent a task or event is.
type Priority string

const (
	PriorityImportant   Priority = "important"
	PriorityNormal      Priority = "normal"
	PriorityPostponable Priority = "postponable"
)

// ParseStatus converts shell input into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusTodo:
		return StatusTodo, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ParsePriority converts shell input into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityImportant:
		return PriorityImportant, nil
	case PriorityNormal:
		return PriorityNormal, nil
	case PriorityPostponable:
		return PriorityPostponable, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// User represents a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	DarkMode     bool
	RememberMe   bool
	CreatedAt    time.Time
	LastLogin    *time.Time // nil until first login
}

// Validate checks registration input. The credential is the plaintext
// password as entered, checked before hashing.
func (u *User) Validate(password string) (bool, string) {
	if len(strings.TrimSpace(u.Name)) < 3 {
		return false, "name must be at least 3 characters"
	}
	if !strings.Contains(u.Email, "@") {
		return false, "invalid email address"
	}
	if len(password) < 6 {
		return false, "password must be at least 6 characters"
	}
	return true, ""
}

// Group is an optional bucket tasks can be assigned to.
type Group struct {
	ID   int64
	Name string
}

// TaskType is static reference data describing a kind of task.
type TaskType struct {
	ID          int64
	Name        string
	Description string
}

// Task represents a single task owned by a user.
type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	DueAt       time.Time
	Status      Status
	Priority    Priority
	Category    string
	UserID      int64
	GroupID     *int64 // nil if not grouped
	TypeID      *int64 // nil if untyped
	CompletedAt *time.Time
}

// Validate reports whether the task is well formed, with a reason when not.
func (t *Task) Validate() (bool, string) {
	if strings.TrimSpace(t.Title) == "" {
		return false, "title is required"
	}
	if strings.TrimSpace(t.Description) == "" {
		return false, "description is required"
	}
	if t.CreatedAt.IsZero() || t.DueAt.IsZero() {
		return false, "start and due dates are required"
	}
	if t.DueAt.Before(t.CreatedAt) {
		return false, "due date cannot be before the start date"
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return false, "invalid priority"
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return false, "invalid status"
	}
	return true, ""
}

// Event is a calendar entry owned by a user. Events have no status
// lifecycle and are never swept.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        string // ISO date, YYYY-MM-DD
	Time        string // HH:MM
	Priority    Priority
	UserID      int64
}

// NotCalculated is returned by FormatDuration when either bound is missing.
const NotCalculated = "not calculated"

// FormatDuration renders the span between start and end as human-readable
// text, e.g. "3 days and 4 hours".
func FormatDuration(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return NotCalculated
	}

	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "less than a minute"
	}
	return strings.Join(parts, " and ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
