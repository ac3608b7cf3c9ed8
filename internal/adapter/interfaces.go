// Package adapter provides transport-layer abstractions for communicating
// with the remote element store.
//
// The primary abstraction is [RemoteElementStore], which decouples the sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnavailable] for transport failures and 5xx,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/collabcanvas/collab-canvas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteElementStore defines transport-agnostic access to the authoritative
// element store. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type RemoteElementStore interface {
	// List returns all elements of the canvas ordered by creation time
	// ascending. Fails with [ErrUnavailable] on network or server error.
	List(ctx context.Context, canvasID string) ([]models.Element, error)

	// Get returns a single element by id. Fails with [ErrNotFound] or
	// [ErrUnavailable].
	Get(ctx context.Context, elementID string) (models.Element, error)

	// Insert stores a new element and returns the server-confirmed record,
	// which is authoritative for any server-computed fields. Fails with
	// [ErrUnavailable] or [ErrRejected].
	Insert(ctx context.Context, element models.Element) (models.Element, error)

	// Replace overwrites the stored element with the given full record and
	// returns the server-confirmed copy. Fails with [ErrNotFound],
	// [ErrUnavailable], or [ErrRejected].
	Replace(ctx context.Context, elementID string, element models.Element) (models.Element, error)

	// Delete removes the element. Absence of the record is not an error.
	// Fails with [ErrUnavailable].
	Delete(ctx context.Context, elementID string) error

	// TouchCanvas bumps the canvas's updated-at timestamp. It is a
	// best-effort side call issued after successful element mutations;
	// callers log failures and never propagate them.
	TouchCanvas(ctx context.Context, canvasID string) error
}
