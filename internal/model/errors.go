package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrUnauthorized is returned when the server rejects our credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTaskTimeout is returned when one or more tasks did not complete in the
	// waiting budget.
	ErrTaskTimeout = errors.New("task did not complete in time")
)
