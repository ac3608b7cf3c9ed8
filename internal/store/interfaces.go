package store

import (
	"context"

	"github.com/collabcanvas/collab-canvas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/element_repository_mock.go -package=mock

// ElementRepository is the authoritative server-side element store backed by
// PostgreSQL.
type ElementRepository interface {
	// ListElements returns all elements of a canvas ordered by creation
	// time ascending.
	ListElements(ctx context.Context, canvasID string) ([]models.Element, error)

	// GetElement returns a single element by id. Fails with
	// [ErrElementNotFound].
	GetElement(ctx context.Context, elementID string) (models.Element, error)

	// InsertElement stores a new element, creating its canvas row on first
	// use. Fails with [ErrDuplicateElement] when the id is already taken.
	InsertElement(ctx context.Context, element models.Element) (models.Element, error)

	// ReplaceElement overwrites the stored element wholesale. Fails with
	// [ErrElementNotFound].
	ReplaceElement(ctx context.Context, elementID string, element models.Element) (models.Element, error)

	// DeleteElement removes an element. Deleting an absent element is a
	// no-op.
	DeleteElement(ctx context.Context, elementID string) error

	// TouchCanvas bumps the canvas's updated_at timestamp, creating the
	// canvas row if needed.
	TouchCanvas(ctx context.Context, canvasID string) error
}
