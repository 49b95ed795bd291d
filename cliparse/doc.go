// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - TemplateDir: Application templates layered over the embedded widget
  - SessionCookie: Session cookie name (default: sessionid)
  - Env: development or production (default: production)
  - LogLevel: zerolog level name (default: info)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-templates       Template directory
	-session-cookie  Session cookie name
	-env             Environment
	-log-level       Log level

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	THUMBER_TEMPLATES   → -templates
	SESSION_COOKIE_NAME → -session-cookie
	APP_ENV             → -env
	LOG_LEVEL           → -log-level

A .env file in the working directory is loaded first when present. It never
overrides variables already set in the process environment. CLI flags take
precedence over both.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - SESSION_COOKIE_NAME is empty
  - LOG_LEVEL is not a zerolog level
*/
package cliparse
