// Package repository implements the durable entity store over MySQL. Each
// entity gets its own repository struct bound to a *sql.DB; multi-step
// writes run inside a transaction owned by the repository so that callers
// never observe a reservation without its table flag or vice versa.
package repository

import "errors"

// ErrNotFound is returned when a referenced restaurant, table, reservation
// or review does not exist. Handlers translate it into an HTTP 404.
var ErrNotFound = errors.New("not found")
