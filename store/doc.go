// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements data access for journal entries.

# Operations

A Store wraps a *sql.DB and scopes every statement to the journals table:

	s := store.New(db)
	id, err := s.Insert(ctx, title, details, date, deviceID)
	entry, err := s.FindVisible(ctx, id, deviceID)
	err = s.Update(ctx, id, deviceID, title, details, date)
	err = s.SoftDelete(ctx, id, deviceID)
	n, err := s.CountVisible(ctx, deviceID)
	entries, err := s.ListVisible(ctx, deviceID, limit, offset)

All reads exclude soft-deleted rows. FindVisible returns ErrNotFound for an
absent, foreign-device, or deleted entry — callers deliberately cannot tell
these apart.

# Transactions

WithTx binds the same operations to an open transaction so a visibility
check and the mutation that follows it run atomically:

	tx, _ := db.Begin()
	defer tx.Rollback()
	ts := s.WithTx(tx)
	if _, err := ts.FindVisible(ctx, id, deviceID); err != nil { ... }
	if err := ts.SoftDelete(ctx, id, deviceID); err != nil { ... }
	tx.Commit()

# Placeholders

Statements use $n placeholders, which both supported drivers accept
(native in postgres; $n is a valid named-parameter form in SQLite and
binds positionally in appearance order).
*/
package store
