// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg) // cfg.DatabaseType: "sqlite" or "postgres"

sqlite uses the pure-Go modernc.org/sqlite driver, so development and tests
need no external database; postgres uses lib/pq.

# Schema Creation

CreateSchema applies the per-dialect DDL for the journals table:

	err := db.CreateSchema(conn, cfg.DatabaseType)

It is idempotent (IF NOT EXISTS) and is run on every startup.

# Table

journals columns:

  - id: auto-incrementing integer primary key
  - title, details: entry text
  - date: normalized YYYY-MM-DD text
  - device_id: 36-character owner identifier
  - deleted: soft-delete flag, default false
  - created_at: insertion timestamp, used only for list ordering

Indexes cover (device_id, deleted) and created_at.
*/
package db
