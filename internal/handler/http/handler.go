package http

import (
	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/internal/store"
)

type Handler struct {
	storages *store.Storages
	db       *store.DB

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, db *store.DB, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		storages: storages,
		db:       db,
		logger:   logger,
	}
}
