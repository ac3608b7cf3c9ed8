package service

import "errors"

var (
	// ErrElementNotFound is returned when an element referenced by id exists
	// neither in the remote store nor in the local cache.
	ErrElementNotFound = errors.New("element not found in remote store or local cache")
)
