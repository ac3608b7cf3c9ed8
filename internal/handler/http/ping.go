package http

import (
	"net/http"

	"github.com/collabcanvas/collab-canvas/internal/logger"
)

// ping reports whether the database connection is alive.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.ping").Msg("database ping failed")
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}
