// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/journal-api/testutil"
)

func TestInsertAndFindVisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()
	deviceID := testutil.NewTestDeviceID()

	id, err := s.Insert(ctx, "T", "D", "2024-01-15", deviceID)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected non-zero id")
	}

	entry, err := s.FindVisible(ctx, id, deviceID)
	if err != nil {
		t.Fatalf("FindVisible failed: %v", err)
	}
	if entry.ID != id || entry.Title != "T" || entry.Date != "2024-01-15" || entry.Details != "D" {
		t.Errorf("Unexpected entry: %+v", entry)
	}
}

func TestInsert_IDsStrictlyIncrease(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()
	deviceID := testutil.NewTestDeviceID()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := s.Insert(ctx, "T", "D", "2024-01-15", deviceID)
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if id <= last {
			t.Errorf("Expected strictly increasing ids, got %d after %d", id, last)
		}
		last = id
	}
}

func TestFindVisible_NotFoundCases(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	ownerID := testutil.NewTestDeviceID()
	otherID := testutil.NewTestDeviceID()

	id := testutil.CreateTestEntry(t, db, ownerID, "T", "D", "2024-01-15", time.Now())
	deletedID := testutil.CreateTestEntry(t, db, ownerID, "T2", "D2", "2024-01-16", time.Now())
	testutil.SoftDeleteTestEntry(t, db, deletedID)

	tests := []struct {
		name     string
		id       int64
		deviceID string
	}{
		{"nonexistent id", 9999, ownerID},
		{"another device's entry", id, otherID},
		{"soft-deleted entry", deletedID, ownerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.FindVisible(ctx, tt.id, tt.deviceID)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()
	deviceID := testutil.NewTestDeviceID()

	id := testutil.CreateTestEntry(t, db, deviceID, "Old", "Old details", "2024-01-15", time.Now())

	if err := s.Update(ctx, id, deviceID, "New", "New details", "2024-02-01"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	entry, err := s.FindVisible(ctx, id, deviceID)
	if err != nil {
		t.Fatalf("FindVisible failed: %v", err)
	}
	if entry.Title != "New" || entry.Details != "New details" || entry.Date != "2024-02-01" {
		t.Errorf("Update not applied: %+v", entry)
	}
}

func TestUpdate_WrongDeviceIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	ownerID := testutil.NewTestDeviceID()
	otherID := testutil.NewTestDeviceID()

	id := testutil.CreateTestEntry(t, db, ownerID, "Mine", "D", "2024-01-15", time.Now())

	// Filtered by id AND device_id, so this touches nothing
	if err := s.Update(ctx, id, otherID, "Stolen", "D", "2024-01-15"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	entry, err := s.FindVisible(ctx, id, ownerID)
	if err != nil {
		t.Fatalf("FindVisible failed: %v", err)
	}
	if entry.Title != "Mine" {
		t.Errorf("Expected title unchanged, got '%s'", entry.Title)
	}
}

func TestSoftDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()
	deviceID := testutil.NewTestDeviceID()

	id := testutil.CreateTestEntry(t, db, deviceID, "T", "D", "2024-01-15", time.Now())

	if err := s.SoftDelete(ctx, id, deviceID); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	// Invisible to reads
	if _, err := s.FindVisible(ctx, id, deviceID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// But the row still exists in storage
	var deleted bool
	if err := db.QueryRow(`SELECT deleted FROM journals WHERE id = $1`, id).Scan(&deleted); err != nil {
		t.Fatalf("Row should still exist: %v", err)
	}
	if !deleted {
		t.Error("Expected deleted flag to be set")
	}
}

func TestCountVisibleMatchesListVisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	deviceID := testutil.NewTestDeviceID()
	otherID := testutil.NewTestDeviceID()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		testutil.CreateTestEntry(t, db, deviceID, "T", "D", "2024-01-15", base.Add(time.Duration(i)*time.Minute))
	}
	deletedID := testutil.CreateTestEntry(t, db, deviceID, "T", "D", "2024-01-15", base.Add(10*time.Minute))
	testutil.SoftDeleteTestEntry(t, db, deletedID)
	testutil.CreateTestEntry(t, db, otherID, "T", "D", "2024-01-15", base)

	count, err := s.CountVisible(ctx, deviceID)
	if err != nil {
		t.Fatalf("CountVisible failed: %v", err)
	}

	entries, err := s.ListVisible(ctx, deviceID, 1000, 0)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}

	if count != 7 {
		t.Errorf("Expected count 7, got %d", count)
	}
	if len(entries) != count {
		t.Errorf("Count %d does not match list length %d", count, len(entries))
	}
}

func TestListVisible_OrderAndPagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()
	deviceID := testutil.NewTestDeviceID()

	// Oldest first in insertion; list should return newest first
	base := time.Now().Add(-time.Hour)
	var ids []int64
	for i := 0; i < 15; i++ {
		id := testutil.CreateTestEntry(t, db, deviceID, "T", "D", "2024-01-15", base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, id)
	}

	page1, err := s.ListVisible(ctx, deviceID, 10, 0)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if len(page1) != 10 {
		t.Fatalf("Expected 10 entries on page 1, got %d", len(page1))
	}
	if page1[0].ID != ids[14] {
		t.Errorf("Expected newest entry %d first, got %d", ids[14], page1[0].ID)
	}

	page2, err := s.ListVisible(ctx, deviceID, 10, 10)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if len(page2) != 5 {
		t.Errorf("Expected 5 entries on page 2, got %d", len(page2))
	}
	if len(page2) > 0 && page2[len(page2)-1].ID != ids[0] {
		t.Errorf("Expected oldest entry %d last, got %d", ids[0], page2[len(page2)-1].ID)
	}
}

func TestListVisible_EmptyIsNotNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	entries, err := s.ListVisible(context.Background(), testutil.NewTestDeviceID(), 10, 0)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if entries == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestWithTx(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()
	deviceID := testutil.NewTestDeviceID()

	id := testutil.CreateTestEntry(t, db, deviceID, "T", "D", "2024-01-15", time.Now())

	// Rolled-back delete must leave the entry visible
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	ts := s.WithTx(tx)
	if err := ts.SoftDelete(ctx, id, deviceID); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	if _, err := s.FindVisible(ctx, id, deviceID); err != nil {
		t.Errorf("Entry should still be visible after rollback: %v", err)
	}
}
