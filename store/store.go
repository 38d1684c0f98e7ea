// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/journal-api/models"
)

// ErrNotFound is returned when no visible entry matches the given id and
// device. It covers "never existed", "belongs to another device", and
// "soft-deleted" with a single answer.
var ErrNotFound = errors.New("journal entry not found")

// table is the fixed identifier of the backing table. It is the only part
// of any statement that is not parameter-bound.
const table = "journals"

// querier is satisfied by both *sql.DB and *sql.Tx so the same store
// operations can run inside a transaction via WithTx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store provides the journal entry data-access operations. Every
// caller-supplied value is bound as a statement parameter.
type Store struct {
	q querier
}

func New(db *sql.DB) *Store {
	return &Store{q: db}
}

// WithTx returns a Store bound to the given transaction. Handlers use this
// to run a visibility check and the following mutation atomically.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{q: tx}
}

// Insert creates a new active entry and returns its generated id.
// deleted defaults to false; created_at is set to the current time.
func (s *Store) Insert(ctx context.Context, title, details, date, deviceID string) (int64, error) {
	var id int64
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO `+table+` (title, details, date, device_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, title, details, date, deviceID, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return id, nil
}

// FindVisible returns the projected entry matching id and deviceID with
// deleted = false, or ErrNotFound. It serves both as the existence check
// before update/delete and as the projection fetch after create/update.
func (s *Store) FindVisible(ctx context.Context, id int64, deviceID string) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{}
	err := s.q.QueryRowContext(ctx, `
		SELECT id, title, date, details FROM `+table+`
		WHERE id = $1 AND device_id = $2 AND deleted = FALSE
	`, id, deviceID).Scan(&entry.ID, &entry.Title, &entry.Date, &entry.Details)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry: %w", err)
	}

	return entry, nil
}

// Update overwrites title, date, and details for the entry matching id and
// deviceID. The caller is responsible for having checked visibility first;
// deleted is not re-checked here.
func (s *Store) Update(ctx context.Context, id int64, deviceID, title, details, date string) error {
	_, err := s.q.ExecContext(ctx, `
		UPDATE `+table+`
		SET title = $1, date = $2, details = $3
		WHERE id = $4 AND device_id = $5
	`, title, date, details, id, deviceID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}

	return nil
}

// SoftDelete marks the entry matching id and deviceID as deleted.
// The row stays in storage and becomes invisible to every read.
func (s *Store) SoftDelete(ctx context.Context, id int64, deviceID string) error {
	_, err := s.q.ExecContext(ctx, `
		UPDATE `+table+`
		SET deleted = TRUE
		WHERE id = $1 AND device_id = $2
	`, id, deviceID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	return nil
}

// CountVisible returns the number of non-deleted entries for the device.
func (s *Store) CountVisible(ctx context.Context, deviceID string) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM `+table+`
		WHERE device_id = $1 AND deleted = FALSE
	`, deviceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	return count, nil
}

// ListVisible returns the device's non-deleted entries ordered newest
// first, bounded by limit starting at offset.
func (s *Store) ListVisible(ctx context.Context, deviceID string, limit, offset int) ([]models.JournalEntry, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, title, date, details FROM `+table+`
		WHERE device_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, deviceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Date, &entry.Details); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return entries, nil
}
