// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := schemaSQLite
	if dbType == "postgres" {
		schema = schemaPostgres
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The two dialects differ only in the id column: BIGSERIAL vs
// INTEGER AUTOINCREMENT. date is stored as normalized YYYY-MM-DD text
// so both drivers scan it as a plain string.

const schemaPostgres = `
-- Journal entries
CREATE TABLE IF NOT EXISTS journals (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    details TEXT NOT NULL,
    date TEXT NOT NULL,
    device_id TEXT NOT NULL,
    deleted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_journals_device ON journals(device_id, deleted);
CREATE INDEX IF NOT EXISTS idx_journals_created_at ON journals(created_at);
`

const schemaSQLite = `
-- Journal entries
CREATE TABLE IF NOT EXISTS journals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    details TEXT NOT NULL,
    date TEXT NOT NULL,
    device_id TEXT NOT NULL,
    deleted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_journals_device ON journals(device_id, deleted);
CREATE INDEX IF NOT EXISTS idx_journals_created_at ON journals(created_at);
`
