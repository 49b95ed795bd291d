// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names registered by lib/pq and modernc.org/sqlite
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := driverFor(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// An in-memory sqlite database lives and dies with one connection
	if driver == DriverSQLite && strings.Contains(url, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

func driverFor(dbType string) (string, error) {
	switch dbType {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Column types are chosen to be valid for both PostgreSQL and SQLite.
const schema = `
-- Feedback
CREATE TABLE IF NOT EXISTS content_feedback (
    id TEXT PRIMARY KEY,
    created TIMESTAMP NOT NULL,
    satisfied BOOLEAN NOT NULL,
    comment TEXT,
    url TEXT NOT NULL,
    view_name VARCHAR(255) NOT NULL,
    view_args TEXT,
    session VARCHAR(64) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_content_feedback_view_name ON content_feedback(view_name);
CREATE INDEX IF NOT EXISTS idx_content_feedback_created ON content_feedback(created);
`
