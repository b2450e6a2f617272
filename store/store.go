// Package store provides the data access layer for articles and their
// generated artifacts (chat lines, story summaries, highlights, keyword
// summaries, bias labels).
//
// The store receives an already-opened *sql.DB (see dbopen) and is the sole
// writer for artifact rows. Lookups return (nil, nil) when a row is absent;
// callers treat that as a cache miss, not an error.
package store

import "database/sql"

// Store wraps the newslens database.
type Store struct {
	DB *sql.DB
}

// NewStore creates a Store from an already-opened database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// ApplySchema creates all tables if they do not exist.
func ApplySchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
