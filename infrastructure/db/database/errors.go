package database

import "github.com/pkg/errors"

// ErrNotFound denotes that a requested key was not found.
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks whether err wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
