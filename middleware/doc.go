// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

WithLogging wraps a handler with slog request/completion logging:

	mux.HandleFunc("GET /journals", middleware.WithLogging(h.List))

# JSON Helpers

JSONResponse serializes any value with Content-Type: application/json and the
given status code. ErrorResponse writes the API's error envelope:

	{"status": "error", "message": "..."}

ParseJSONBody decodes a request body into a struct.

# CORS

CORS wraps the whole mux, reflects the request origin, and answers OPTIONS
preflight requests with an empty 200 so the journal app can call the API
from any frontend origin.
*/
package middleware
