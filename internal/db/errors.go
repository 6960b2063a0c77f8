package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Error categories surfaced by this package. Callers match with errors.Is;
// no raw driver error leaves the package unclassified.
var (
	// ErrNotFound means the requested row does not exist (or is not
	// visible to the calling owner).
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable means the store itself failed: connection, lock
	// timeout, transaction error.
	ErrUnavailable = errors.New("store unavailable")
)

// translate maps a driver error into one of the package categories.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
