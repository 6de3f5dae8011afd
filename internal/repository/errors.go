// Package repository implements persistence for every aggregate over
// database/sql. Sentinel errors declared here let handlers distinguish
// failure cases without string matching: ErrNotFound becomes a 404,
// ErrDuplicate a 409. Anything else is a 500.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (username, email, slug, device fingerprint).
var ErrDuplicate = errors.New("duplicate")
