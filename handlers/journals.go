// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/journal-api/cliparse"
	"github.com/danielhkuo/journal-api/device"
	"github.com/danielhkuo/journal-api/middleware"
	"github.com/danielhkuo/journal-api/models"
	"github.com/danielhkuo/journal-api/store"
)

// dateLayout is the normalized calendar-date form stored and returned
const dateLayout = "2006-01-02"

type JournalHandler struct {
	db    *sql.DB
	store *store.Store
	cfg   cliparse.Config
}

func NewJournalHandler(db *sql.DB, cfg cliparse.Config) *JournalHandler {
	return &JournalHandler{db: db, store: store.New(db), cfg: cfg}
}

// Create handles POST /journals
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJournalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title := strings.TrimSpace(req.Title)
	details := strings.TrimSpace(req.Details)
	deviceID := r.Header.Get("deviceId")

	if title == "" || details == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title and details are required")
		return
	}

	if !device.ValidateID(deviceID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid device ID")
		return
	}

	// Date is optional on create; absent or empty means today
	date := time.Now().Format(dateLayout)
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = d
	}

	ctx := r.Context()

	id, err := h.store.Insert(ctx, title, details, date, deviceID)
	if err != nil {
		slog.Error("failed to insert journal entry", "error", err, "device_id", deviceID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if id == 0 {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Entry could not be added. Please try again.")
		return
	}

	// Re-fetch through the public projection so the response shape is
	// exactly what any later read would return
	entry, err := h.store.FindVisible(ctx, id, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Entry could not be added. Please try again.")
			return
		}
		slog.Error("failed to fetch new journal entry", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	slog.Info("journal entry created", "id", id, "device_id", deviceID)

	middleware.JSONResponse(w, http.StatusCreated, entry)
}

// Update handles PUT /journals/{id}
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseEntryID(r.PathValue("id"))

	var req models.UpdateJournalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title := strings.TrimSpace(req.Title)
	details := strings.TrimSpace(req.Details)
	deviceID := r.Header.Get("deviceId")

	if title == "" || details == "" || req.Date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title, details, and date are required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	if !device.ValidateID(deviceID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid device ID")
		return
	}

	ctx := r.Context()

	// Check and update atomically so a concurrent delete cannot slip
	// between the visibility check and the write
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	defer tx.Rollback()

	ts := h.store.WithTx(tx)

	if _, err := ts.FindVisible(ctx, id, deviceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Journal not found for this device")
			return
		}
		slog.Error("failed to query journal entry", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if err := ts.Update(ctx, id, deviceID, title, details, date); err != nil {
		slog.Error("failed to update journal entry", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Fetch updated entry through the public projection
	entry, err := ts.FindVisible(ctx, id, deviceID)
	if err != nil {
		slog.Error("failed to fetch updated journal entry", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	slog.Info("journal entry updated", "id", id, "device_id", deviceID)

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// Delete handles DELETE /journals/{id} (soft delete)
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseEntryID(r.PathValue("id"))
	deviceID := r.Header.Get("deviceId")

	if !device.ValidateID(deviceID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid device ID")
		return
	}

	ctx := r.Context()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	defer tx.Rollback()

	ts := h.store.WithTx(tx)

	// One check covers "never existed", "another device's entry", and
	// "already deleted" — all answered with the same 404
	if _, err := ts.FindVisible(ctx, id, deviceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Journal not found or already deleted")
			return
		}
		slog.Error("failed to query journal entry", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if err := ts.SoftDelete(ctx, id, deviceID); err != nil {
		slog.Error("failed to delete journal entry", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	slog.Info("journal entry deleted", "id", id, "device_id", deviceID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteJournalResponse{
		Status:  models.StatusSuccess,
		Message: "Deleted successfully",
	})
}

// List handles GET /journals
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	page := positiveQueryInt(r, "page", 1)
	limit := positiveQueryInt(r, "limit", 10)
	offset := (page - 1) * limit

	deviceID := r.Header.Get("deviceId")

	// Unlike the other endpoints, an unidentifiable device gets an empty
	// 200 here so clients without a stored identifier render an empty
	// journal instead of an error screen
	if !device.ValidateID(deviceID) {
		middleware.JSONResponse(w, http.StatusOK, models.ListErrorResponse{
			Status:     models.StatusError,
			Message:    "Device cannot be identified!",
			Data:       []models.JournalEntry{},
			TotalCount: 0,
		})
		return
	}

	ctx := r.Context()

	totalCount, err := h.store.CountVisible(ctx, deviceID)
	if err != nil {
		slog.Error("failed to count journal entries", "error", err, "device_id", deviceID)
		listError(w, err)
		return
	}

	entries, err := h.store.ListVisible(ctx, deviceID, limit, offset)
	if err != nil {
		slog.Error("failed to list journal entries", "error", err, "device_id", deviceID)
		listError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListJournalsResponse{
		Status:     models.StatusSuccess,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		Data:       entries,
	})
}

// listError writes the list endpoint's storage failure shape
func listError(w http.ResponseWriter, err error) {
	middleware.JSONResponse(w, http.StatusInternalServerError, models.ListErrorResponse{
		Status:     models.StatusError,
		Message:    "Database error: " + err.Error(),
		Data:       []models.JournalEntry{},
		TotalCount: 0,
	})
}

// parseDate normalizes a client-supplied date to YYYY-MM-DD. A plain date
// or an RFC 3339 timestamp (truncated to its date part) is accepted;
// anything else is rejected.
func parseDate(s string) (string, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Format(dateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateLayout), nil
	}
	return "", fmt.Errorf("unparseable date %q", s)
}

// parseEntryID converts the {id} path value to an entry id. A malformed
// value becomes 0, which no row ever has, so it falls through to the
// not-found check.
func parseEntryID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// positiveQueryInt reads an integer query parameter, substituting def for
// missing, malformed, or non-positive values
func positiveQueryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
