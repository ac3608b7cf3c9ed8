// Package cache implements the client's durable local element cache: a
// finite-capacity key-value store that mirrors remote canvases and stages
// pending writes while the remote store is unreachable.
package cache

import (
	"context"
	"errors"

	"github.com/collabcanvas/collab-canvas/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/element_cache_mock.go -package=mock

// Sentinel errors returned by cache implementations.
var (
	// ErrCapacityExceeded is returned when a write would push the stored
	// element payloads past the configured byte budget. The sync store
	// reacts with one eviction-and-retry cycle.
	ErrCapacityExceeded = errors.New("local cache capacity exceeded")

	// ErrElementNotCached is returned by FindOne when no canvas holds the
	// requested element.
	ErrElementNotCached = errors.New("element not present in local cache")
)

// ElementCache is the durable local fallback store consumed by the sync
// service. Implementations must make each canvas-keyed mutation atomic with
// respect to its own key; cross-key ordering is the caller's concern.
type ElementCache interface {
	// ReadAll returns the cached element set of a canvas, empty if the
	// canvas has never been cached.
	ReadAll(ctx context.Context, canvasID string) ([]models.Element, error)

	// WriteAll replaces the cached element set of a canvas wholesale and
	// records a cache access for it. Fails with [ErrCapacityExceeded] when
	// the byte budget would be exceeded.
	WriteAll(ctx context.Context, canvasID string, elements []models.Element) error

	// UpsertOne inserts or replaces a single element within its canvas's
	// cached set. Fails with [ErrCapacityExceeded] when the byte budget
	// would be exceeded.
	UpsertOne(ctx context.Context, canvasID string, element models.Element) error

	// RemoveOne deletes an element from whichever canvas holds it. Removing
	// an element that is not cached is a no-op.
	RemoveOne(ctx context.Context, elementID string) error

	// FindOne scans all cached canvases for an element by id. Fails with
	// [ErrElementNotCached] when no canvas holds it.
	FindOne(ctx context.Context, elementID string) (models.Element, error)

	// Touch records a cache access for the canvas, used to order canvases
	// for eviction.
	Touch(ctx context.Context, canvasID string) error

	// LastAccesses returns the access records of every cached canvas, in no
	// particular order.
	LastAccesses(ctx context.Context) ([]models.CanvasAccess, error)

	// Evict drops the cached element sets and access records of the given
	// canvases. Pending writes are never evicted.
	Evict(ctx context.Context, canvasIDs ...string) error

	// PutPending stages a pending write keyed by element id; a newer write
	// for the same element supersedes the staged one.
	PutPending(ctx context.Context, pw models.PendingWrite) error

	// ListPending returns all staged pending writes ordered by queue time.
	ListPending(ctx context.Context) ([]models.PendingWrite, error)

	// RemovePending drops the staged write for an element, if any.
	RemovePending(ctx context.Context, elementID string) error

	// Close releases the underlying storage file.
	Close() error
}
