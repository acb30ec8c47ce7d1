// Package repositories holds the data-access layer. Catalog tables go
// through GORM; the transactional order/ticket tables go through sqlx.
// Sentinel errors defined here let handlers translate store failures
// into the right HTTP class without inspecting driver errors themselves.
package repositories

import "errors"

// ErrNotFound is returned when a looked-up record does not exist.
// Handlers translate it into an HTTP 404.
var ErrNotFound = errors.New("record not found")

// ErrSeatTaken is returned when the unique (flight, row, seat) index
// rejects a ticket during order commit, i.e. a concurrent submission
// already claimed the seat. Handlers translate it into an HTTP 400,
// never into a server fault.
var ErrSeatTaken = errors.New("seat already taken")

// ErrDuplicateRoute is returned when a route for the same ordered
// (source, destination) pair already exists.
var ErrDuplicateRoute = errors.New("route already exists")

// ErrEmailTaken is returned when registering an email that already has
// an account.
var ErrEmailTaken = errors.New("email already registered")
