// Package repository defines error values shared across repositories.
// These sentinels form the closed error taxonomy the handler layer maps to
// HTTP statuses: ErrNotFound covers absent rows, ErrEmailExists covers the
// unique email constraint on users, and ErrForbidden signals that the acting
// user does not own the blog it is trying to mutate.
package repository

import "errors"

// ErrNotFound is returned when a blog or user lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert or update would claim an email
// address already owned by a different user.
var ErrEmailExists = errors.New("email already exists")

// ErrForbidden is returned when the caller attempts to mutate a blog owned
// by someone else.
var ErrForbidden = errors.New("forbidden")
