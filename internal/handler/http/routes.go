package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// apiPrefix lets clients point at either the server root or <root>/v3, the
// way the hosted JSONBin API is addressed.
const apiPrefix = "/v3"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Get("/version", h.getServerVersion)
	router.Group(h.binRoutes)
	router.Route(apiPrefix, h.binRoutes)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}

func (h *Handler) binRoutes(r chi.Router) {
	r.Head("/", h.ping)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/b", h.createBin)
		r.Get("/b/{id}", h.readBin)
		r.Get("/b/{id}/latest", h.readBin)
		r.Put("/b/{id}", h.updateBin)
		r.Delete("/b/{id}", h.deleteBin)
	})
}
