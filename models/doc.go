// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateJournalRequest: title, details, date (optional)
  - UpdateJournalRequest: title, details, date

# Response Types

Types for JSON responses:

  - ListJournalsResponse: status, page, limit, totalCount, data
  - ListErrorResponse: status, message, data (empty), totalCount (zero)
  - DeleteJournalResponse: status, message
  - HealthResponse: status, started
  - ErrorResponse: status, message

# Domain Types

  - JournalEntry: the client-visible projection of a journal row.
    Exactly {id, title, date, details} — device_id, deleted, and
    created_at never leave the server.

# Constants

Status values used in response envelopes:

	StatusSuccess = "success"
	StatusError   = "error"
*/
package models
