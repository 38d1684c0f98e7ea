package models

// Response status constants
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request types

type CreateJournalRequest struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Date    string `json:"date"` // optional, defaults to today
}

type UpdateJournalRequest struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Date    string `json:"date"`
}

// Response types

type ListJournalsResponse struct {
	Status     string         `json:"status"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalCount int            `json:"totalCount"`
	Data       []JournalEntry `json:"data"`
}

// ListErrorResponse is the list endpoint's error shape: it always carries
// empty data and a zero count alongside the message.
type ListErrorResponse struct {
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	Data       []JournalEntry `json:"data"`
	TotalCount int            `json:"totalCount"`
}

type DeleteJournalResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Started string `json:"started"`
}

// Domain types

// JournalEntry is the client-visible projection of a journal row.
// device_id, deleted, and created_at are never serialized.
type JournalEntry struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"` // YYYY-MM-DD
	Details string `json:"details"`
}

// Error response

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
