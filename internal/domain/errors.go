package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates the entity is already present remotely.
	ErrAlreadyExists = errors.New("already exists")
)
