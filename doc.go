// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the thumber demo server.

Thumber adds a "was this page useful?" widget to ordinary page handlers,
stores each answer with the page it was given on, and reports the share of
satisfied answers per page.

# Starting the Server

The server reads environment variables (and a .env file when present) or
CLI flags:

	DATABASE_URL=thumber.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - THUMBER_TEMPLATES (-templates): directory overriding page and widget templates
  - SESSION_COOKIE_NAME (-session-cookie): session cookie (default: sessionid)
  - APP_ENV (-env): development enables console logging (default: production)
  - LOG_LEVEL (-log-level): zerolog level (default: info)

# Architecture

  - thumber: page composition, feedback capture, widget templates
  - store: feedback records and per-view averages (goqu)
  - session: session cookie issuing
  - handlers: example pages and the statistics endpoints
  - router: named routes and path-to-name resolution
  - middleware: CORS, logging, JSON helpers
  - models: record and response types
  - apperrors: typed errors and their HTTP status
  - logging: zerolog setup and request-scoped loggers
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
