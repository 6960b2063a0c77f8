package db

import (
	"log/slog"
	"time"

	"taskvault/internal/models"
)

const taskColumns = "id, title, description, created_at, due_at, status, priority, category, user_id, group_id, type_id, completed_at"

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.DueAt,
		&t.Status, &t.Priority, &t.Category, &t.UserID, &t.GroupID, &t.TypeID,
		&t.CompletedAt)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

// SaveTask inserts the task when it has no ID yet, and updates the existing
// row otherwise. Updates are scoped to the owning user; touching a row the
// owner does not hold reads as ErrNotFound.
func (db *DB) SaveTask(t *models.Task) (*models.Task, error) {
	if t.ID == 0 {
		result, err := db.Exec(`
			INSERT INTO tasks (title, description, created_at, due_at, status, priority, category, user_id, group_id, type_id, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.Title, t.Description, t.CreatedAt, t.DueAt, t.Status, t.Priority,
			t.Category, t.UserID, t.GroupID, t.TypeID, t.CompletedAt)
		if err != nil {
			return nil, translate(err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, translate(err)
		}
		return db.GetTaskByID(id)
	}

	result, err := db.Exec(`
		UPDATE tasks
		SET title = ?, description = ?, created_at = ?, due_at = ?, status = ?,
		    priority = ?, category = ?, group_id = ?, type_id = ?, completed_at = ?
		WHERE id = ? AND user_id = ?
	`, t.Title, t.Description, t.CreatedAt, t.DueAt, t.Status, t.Priority,
		t.Category, t.GroupID, t.TypeID, t.CompletedAt, t.ID, t.UserID)
	if err != nil {
		return nil, translate(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, translate(err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return db.GetTaskByID(t.ID)
}

// GetTaskByID retrieves a task by ID.
func (db *DB) GetTaskByID(id int64) (*models.Task, error) {
	return scanTask(db.QueryRow(
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id))
}

// GetTaskForUser retrieves a task only if userID owns it.
func (db *DB) GetTaskForUser(id, userID int64) (*models.Task, error) {
	return scanTask(db.QueryRow(
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?", id, userID))
}

// ListTasksByUser returns all tasks for a user, soonest due first.
func (db *DB) ListTasksByUser(userID int64) ([]models.Task, error) {
	rows, err := db.Query(
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = ? ORDER BY due_at ASC, id ASC",
		userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, translate(rows.Err())
}

// CountTasksByUser returns the number of tasks a user owns.
func (db *DB) CountTasksByUser(userID int64) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM tasks WHERE user_id = ?", userID).Scan(&count)
	return count, translate(err)
}

// DeleteTask deletes a task owned by ownerID. A mismatched owner reads as
// ErrNotFound, never as someone else's delete.
func (db *DB) DeleteTask(id, ownerID int64) error {
	result, err := db.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return translate(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SweepCompletedTasks deletes every completed task whose completion time is
// older than cutoff, in a single transaction so readers never observe a
// half-deleted batch. Returns the number of rows removed.
func (db *DB) SweepCompletedTasks(cutoff time.Time) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, translate(err)
	}

	result, err := tx.Exec(`
		DELETE FROM tasks
		WHERE status = ? AND completed_at IS NOT NULL AND completed_at < ?
	`, models.StatusCompleted, cutoff)
	if err != nil {
		tx.Rollback()
		return 0, translate(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, translate(err)
	}
	if err := tx.Commit(); err != nil {
		return 0, translate(err)
	}

	if n > 0 {
		slog.Info("tasks_swept", "removed", n, "cutoff", cutoff)
	}
	return n, nil
}
