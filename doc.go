// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Journal API server.

The Journal API backs a personal-journal application: clients identified by
a 36-character deviceId header create, list, update, and soft-delete their
own journal entries.

# Starting the Server

The server requires a database URL via environment variable or CLI flag:

	DATABASE_URL=journal.db go run main.go

Or with flags:

	go run main.go -p 3324 -d "postgres://..." -t postgres

A local .env file is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - PORT (-p): Server port (default: 3324)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for journal entries
  - store: data access for the journals table
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the client-visible projection
  - device: Device identifier validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
