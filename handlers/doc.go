// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Journal API.

# Handler Type

JournalHandler carries the database handle, the journal store, and config:

	h := handlers.NewJournalHandler(db, cfg)

# Endpoints

	POST   /journals      → Create (201 projected entry)
	GET    /journals      → List   (paginated, newest first)
	PUT    /journals/{id} → Update (200 projected entry)
	DELETE /journals/{id} → Delete (soft delete)

Every endpoint reads the owning device from the deviceId header (exactly 36
characters). An invalid device identifier is a 400 everywhere except List,
which answers 200 with an empty result set — a deliberate asymmetry so
fresh app installs see an empty journal rather than an error.

# Validation

title and details are trimmed and must be non-empty. date must be
YYYY-MM-DD (an RFC 3339 timestamp is accepted and truncated); it is
optional on create, defaulting to today, and required on update.

# Errors

Validation failures are 400, an invisible entry (absent, foreign device, or
soft-deleted) is 404, and any storage failure is a 500 carrying the
underlying error message in {status: "error", message: ...}.
*/
package handlers
