package store

import "github.com/collabcanvas/collab-canvas/internal/logger"

// Storages aggregates every server-side repository behind one injection
// point for the handler layer.
type Storages struct {
	ElementRepository ElementRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ElementRepository: NewElementRepository(db, log),
	}
}
