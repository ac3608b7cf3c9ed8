// Package service implements the element sync store: a conflict-aware view of
// canvas elements spread across a possibly-unreachable remote store and a
// durable local cache, with transparent fallback and deferred write retry.
package service

import (
	"context"
	"time"

	"github.com/collabcanvas/collab-canvas/models"
)

// ElementSyncService is the application-facing surface of the sync store.
//
// All operations are safe for concurrent use; mutations of a single canvas's
// cache entry are serialised internally. Concurrent updates of the same
// element from one process can still race on the read-modify-write sequence,
// so callers should await completion of an update before issuing the next one
// for the same element id.
type ElementSyncService interface {
	// GetElements returns all elements of a canvas ordered by creation time
	// ascending, preferring the remote store and falling back to the local
	// cache when the remote store fails or returns nothing.
	GetElements(ctx context.Context, canvasID string) ([]models.Element, error)

	// AddElement creates a new element with version 1 on behalf of actorID.
	// It always returns a usable element record: when the remote insert
	// fails, the element lives in the local cache and a pending write is
	// staged for retry.
	AddElement(ctx context.Context, canvasID, elementType string, data map[string]any, actorID string) (models.Element, error)

	// UpdateElement applies a patch to an element if baseVersion matches the
	// element's current version. A zero baseVersion skips the check. On a
	// mismatch the returned result carries Conflict=true and the current
	// element with the patch unapplied.
	UpdateElement(ctx context.Context, elementID string, patch models.ElementPatch, baseVersion int64) (models.UpdateResult, error)

	// DeleteElement removes an element. Deleting an element that exists
	// nowhere is a successful no-op.
	DeleteElement(ctx context.Context, elementID string) error

	// FlushPending retries all staged pending writes against the remote
	// store, removing each on success or permanent rejection.
	FlushPending(ctx context.Context) error

	// Close waits for in-flight fire-and-forget work (canvas timestamp
	// touches) to finish. Call it on shutdown after the flush job stopped.
	Close() error
}

// PendingWriteJob periodically flushes staged pending writes in the
// background.
type PendingWriteJob interface {
	// Start launches the background flush loop. It stops any previously
	// running loop first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and blocks until it has exited.
	Stop()
}
