// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open accepts the configured database type and URL:

	conn, err := db.Open("sqlite", "file:thumber.db")
	conn, err := db.Open("postgres", "postgres://...")

PostgreSQL uses github.com/lib/pq and SQLite uses modernc.org/sqlite, so the
binary needs no cgo. In-memory SQLite URLs are pinned to one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - content_feedback: one row per widget submission

# Indexes

  - content_feedback.view_name (aggregation grouping)
  - content_feedback.created (date range filters, default ordering)
*/
package db
