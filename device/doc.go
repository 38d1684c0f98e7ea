// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package device validates and generates device identifiers.

A device identifier is an opaque 36-character string sent by clients in the
deviceId header to scope their own journal entries. There is no registration
step and no server-side uniqueness check: the identifier is whatever the
client generated, and validation only checks the length.

	if !device.ValidateID(r.Header.Get("deviceId")) {
		// reject
	}

NewID produces a random UUID string, which satisfies ValidateID.
*/
package device
