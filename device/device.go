// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package device

import "github.com/google/uuid"

// IDLength is the required length of a device identifier in bytes.
// Clients typically send a UUID string, which is exactly 36 characters,
// but the format is otherwise unconstrained.
const IDLength = 36

// ValidateID reports whether s is a well-formed device identifier.
// The only requirement is an exact length of 36 bytes; no UUID-shape
// validation is performed.
func ValidateID(s string) bool {
	return len(s) == IDLength
}

// NewID generates a fresh device identifier (a random UUID string).
// Used by clients on first launch and by tests.
func NewID() string {
	return uuid.NewString()
}
