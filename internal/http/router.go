package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ammusto/khazain-browser/internal/catalog"
	"github.com/ammusto/khazain-browser/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store *catalog.Store
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Recoverer)

	// Add request-id, logger and CORS middleware
	r.Use(RequestID)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	h := handlers.NewCatalogHandler(deps.Store)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/manuscripts", h.List)
		r.Get("/manuscripts/{id}", h.Detail)
		r.Get("/manuscripts/{id}/locations", h.Locations)
		r.Get("/facets/{field}", h.Facet)
	})

	r.Get("/healthz", handlers.Health)

	return r
}
