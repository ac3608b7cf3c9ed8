package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/ping", h.ping)

	router.Route("/api/canvases/{canvasID}", func(r chi.Router) {
		r.Get("/elements", h.listElements)
		r.Post("/elements", h.createElement)
		r.Post("/touch", h.touchCanvas)
	})

	router.Route("/api/elements/{elementID}", func(r chi.Router) {
		r.Get("/", h.getElement)
		r.Put("/", h.replaceElement)
		r.Delete("/", h.deleteElement)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
