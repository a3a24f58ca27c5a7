package models

import "errors"

var (
	// ErrValidation indicates a malformed or missing field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a duplicate unique key.
	ErrConflict = errors.New("already exists")
)
