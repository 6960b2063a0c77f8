package db

import (
	"taskvault/internal/models"
)

// CreateGroup creates a new group. Names are free text and need not be
// unique.
func (db *DB) CreateGroup(name string) (*models.Group, error) {
	result, err := db.Exec("INSERT INTO groups (name) VALUES (?)", name)
	if err != nil {
		return nil, translate(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	return db.GetGroup(id)
}

// GetGroup retrieves a group by ID.
func (db *DB) GetGroup(id int64) (*models.Group, error) {
	g := &models.Group{}
	err := db.QueryRow("SELECT id, name FROM groups WHERE id = ?", id).
		Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, translate(err)
	}
	return g, nil
}

// ListGroups returns all groups ordered by name.
func (db *DB) ListGroups() ([]models.Group, error) {
	rows, err := db.Query("SELECT id, name FROM groups ORDER BY name")
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, translate(err)
		}
		groups = append(groups, g)
	}
	return groups, translate(rows.Err())
}

// RenameGroup updates a group's name.
func (db *DB) RenameGroup(id int64, name string) error {
	result, err := db.Exec("UPDATE groups SET name = ? WHERE id = ?", name, id)
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

// DeleteGroup deletes a group. Tasks in the group keep existing with their
// group reference cleared.
func (db *DB) DeleteGroup(id int64) error {
	result, err := db.Exec("DELETE FROM groups WHERE id = ?", id)
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
