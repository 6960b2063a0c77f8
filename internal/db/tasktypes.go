package db

import (
	"taskvault/internal/models"
)

// CreateTaskType creates a new task type.
func (db *DB) CreateTaskType(name, description string) (*models.TaskType, error) {
	result, err := db.Exec(
		"INSERT INTO task_types (name, description) VALUES (?, ?)",
		name, description)
	if err != nil {
		return nil, translate(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	return db.GetTaskType(id)
}

// GetTaskType retrieves a task type by ID.
func (db *DB) GetTaskType(id int64) (*models.TaskType, error) {
	t := &models.TaskType{}
	err := db.QueryRow("SELECT id, name, description FROM task_types WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

// ListTaskTypes returns all task types ordered by name.
func (db *DB) ListTaskTypes() ([]models.TaskType, error) {
	rows, err := db.Query("SELECT id, name, description FROM task_types ORDER BY name")
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var types []models.TaskType
	for rows.Next() {
		var t models.TaskType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, translate(err)
		}
		types = append(types, t)
	}
	return types, translate(rows.Err())
}

// DeleteTaskType deletes a task type. Tasks of that type keep existing with
// their type reference cleared.
func (db *DB) DeleteTaskType(id int64) error {
	result, err := db.Exec("DELETE FROM task_types WHERE id = ?", id)
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
