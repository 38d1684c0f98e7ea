// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/journal-api/cliparse"
	"github.com/danielhkuo/journal-api/db"
	"github.com/danielhkuo/journal-api/device"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// A single connection keeps the memory database alive for the whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// NewTestDeviceID returns a fresh valid 36-character device identifier
func NewTestDeviceID() string {
	return device.NewID()
}

// CreateTestEntry inserts a journal entry and returns its id. createdAt is
// explicit so tests control list ordering.
func CreateTestEntry(t *testing.T, db *sql.DB, deviceID, title, details, date string, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO journals (title, details, date, device_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, title, details, date, deviceID, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return id
}

// SoftDeleteTestEntry marks an entry deleted directly in storage
func SoftDeleteTestEntry(t *testing.T, db *sql.DB, id int64) {
	t.Helper()

	_, err := db.Exec(`UPDATE journals SET deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		t.Fatalf("Failed to soft-delete test entry: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
