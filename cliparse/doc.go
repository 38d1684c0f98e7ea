// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

Settings come from CLI flags with environment-variable fallback:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_URL (-d): Connection string (postgres URL or sqlite file path) — required
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

A local .env file is loaded by main before parsing, so a development setup
needs nothing beyond:

	DATABASE_URL=journal.db
*/
package cliparse
