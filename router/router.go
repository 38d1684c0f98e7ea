// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/journal-api/cliparse"
	"github.com/danielhkuo/journal-api/handlers"
	"github.com/danielhkuo/journal-api/middleware"
	"github.com/danielhkuo/journal-api/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	started := time.Now()

	// Initialize handlers
	journalHandler := handlers.NewJournalHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:  "ok",
			Started: humanize.Time(started),
		})
	})

	// Journal entries
	mux.HandleFunc("GET /journals", middleware.WithLogging(journalHandler.List))
	mux.HandleFunc("POST /journals", middleware.WithLogging(journalHandler.Create))
	mux.HandleFunc("PUT /journals/{id}", middleware.WithLogging(journalHandler.Update))
	mux.HandleFunc("DELETE /journals/{id}", middleware.WithLogging(journalHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Journal API working fine!"))
	})

	return mux
}
