package db

import (
	"taskvault/internal/models"
)

const eventColumns = "id, title, description, date, time, priority, user_id"

// CreateEvent creates a new calendar event for a user.
func (db *DB) CreateEvent(e *models.Event) (*models.Event, error) {
	result, err := db.Exec(`
		INSERT INTO events (title, description, date, time, priority, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Title, e.Description, e.Date, e.Time, e.Priority, e.UserID)
	if err != nil {
		return nil, translate(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	return db.GetEventByID(id)
}

// GetEventByID retrieves an event by ID.
func (db *DB) GetEventByID(id int64) (*models.Event, error) {
	e := &models.Event{}
	err := db.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = ?", id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Priority, &e.UserID)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// ListEventsByUser returns all events for a user in calendar order.
func (db *DB) ListEventsByUser(userID int64) ([]models.Event, error) {
	rows, err := db.Query(
		"SELECT "+eventColumns+" FROM events WHERE user_id = ? ORDER BY date ASC, time ASC",
		userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time,
			&e.Priority, &e.UserID); err != nil {
			return nil, translate(err)
		}
		events = append(events, e)
	}
	return events, translate(rows.Err())
}

// DeleteEvent deletes an event owned by ownerID. A mismatched owner reads
// as ErrNotFound.
func (db *DB) DeleteEvent(id, ownerID int64) error {
	result, err := db.Exec("DELETE FROM events WHERE id = ? AND user_id = ?", id, ownerID)
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
