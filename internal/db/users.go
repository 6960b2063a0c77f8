package db

import (
	"time"

	"taskvault/internal/models"
)

const userColumns = "id, name, email, password_hash, dark_mode, remember_me, created_at, last_login"

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.DarkMode, &u.RememberMe, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

// CreateUser inserts a new user. A duplicate email reads as ErrConflict.
func (db *DB) CreateUser(name, email, passwordHash string, darkMode bool) (*models.User, error) {
	result, err := db.Exec(`
		INSERT INTO users (name, email, password_hash, dark_mode, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, name, email, passwordHash, darkMode, time.Now())
	if err != nil {
		return nil, translate(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	return db.GetUserByID(id)
}

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(id int64) (*models.User, error) {
	return scanUser(db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = ?", id))
}

// GetUserByEmail retrieves a user by email. Matching is exact and
// case-sensitive.
func (db *DB) GetUserByEmail(email string) (*models.User, error) {
	return scanUser(db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE email = ?", email))
}

// UserPatch enumerates the mutable user fields. Only non-nil fields are
// written.
type UserPatch struct {
	Name         *string
	PasswordHash *string
	DarkMode     *bool
	RememberMe   *bool
}

// UpdateUser applies a patch to a user. ErrNotFound if no such row.
func (db *DB) UpdateUser(id int64, patch UserPatch) error {
	query := "UPDATE users SET id = id"
	var args []any

	if patch.Name != nil {
		query += ", name = ?"
		args = append(args, *patch.Name)
	}
	if patch.PasswordHash != nil {
		query += ", password_hash = ?"
		args = append(args, *patch.PasswordHash)
	}
	if patch.DarkMode != nil {
		query += ", dark_mode = ?"
		args = append(args, *patch.DarkMode)
	}
	if patch.RememberMe != nil {
		query += ", remember_me = ?"
		args = append(args, *patch.RememberMe)
	}

	query += " WHERE id = ?"
	args = append(args, id)

	result, err := db.Exec(query, args...)
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

// TouchLastLogin stamps the user's last login time.
func (db *DB) TouchLastLogin(id int64, at time.Time) error {
	result, err := db.Exec("UPDATE users SET last_login = ? WHERE id = ?", at, id)
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

// DeleteUser removes a user and, through the schema's cascade, every task
// and event they own. ErrNotFound if no such row.
func (db *DB) DeleteUser(id int64) error {
	result, err := db.Exec("DELETE FROM users WHERE id = ?", id)
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
