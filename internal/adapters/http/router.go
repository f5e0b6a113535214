// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	listHandler *handlers.ListHandler,
	blueprintHandler *handlers.BlueprintHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/lists", func(r chi.Router) {
			r.Get("/", listHandler.QueryLists)
			r.Post("/", listHandler.CreateList)
			r.Get("/{id}", listHandler.GetList)
			r.Patch("/{id}", listHandler.UpdateList)
			r.Delete("/{id}", listHandler.DeleteList)

			r.Post("/{id}/items", listHandler.AddItem)
			r.Delete("/{id}/items/done", listHandler.RemoveDoneItems)
			r.Patch("/{id}/items/{itemId}", listHandler.UpdateItem)
			r.Delete("/{id}/items/{itemId}", listHandler.RemoveItem)

			r.Post("/{id}/complete", listHandler.Complete)
			r.Post("/{id}/reset", listHandler.Reset)
			r.Post("/{id}/capture", listHandler.Capture)
		})

		r.Route("/blueprints", func(r chi.Router) {
			r.Get("/", blueprintHandler.QueryBlueprints)
			r.Post("/", blueprintHandler.CreateBlueprint)
			r.Get("/{id}", blueprintHandler.GetBlueprint)
			r.Patch("/{id}", blueprintHandler.UpdateBlueprint)
			r.Delete("/{id}", blueprintHandler.DeleteBlueprint)

			r.Post("/{id}/items", blueprintHandler.AddItem)
			r.Patch("/{id}/items/{itemId}", blueprintHandler.UpdateItem)
			r.Delete("/{id}/items/{itemId}", blueprintHandler.RemoveItem)

			r.Post("/{id}/materialize", blueprintHandler.Materialize)
		})
	})

	return r
}
