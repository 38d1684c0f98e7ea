// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

# Routes

	GET    /health         → JSON liveness with humanized start time
	GET    /journals       → list entries for the requesting device
	POST   /journals       → create an entry
	PUT    /journals/{id}  → update an entry
	DELETE /journals/{id}  → soft-delete an entry
	GET    /               → plain-text liveness message

Journal routes are wrapped with request logging. CORS (including the
OPTIONS preflight answer) is applied around the whole mux in main.
*/
package router
