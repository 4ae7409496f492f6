package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"storefront/internal/http/handlers"
	"storefront/internal/middleware"
)

// NewRouter wires the API surface. Middleware order: request id first so the
// access log can include it, recovery before anything that can panic.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
	)
	if len(app.Config.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(app.Config.AllowedOrigins))
	}

	r.Get("/api/health", app.Health)
	r.Get("/api/convai-config", app.ConvaiConfig)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", app.ProductsList)
		r.Get("/featured", app.ProductsFeatured)
		r.Get("/search", app.ProductsSearch)
		r.Get("/{id}", app.ProductGet)
		r.Get("/{id}/related", app.ProductRelated)
	})
	r.Get("/api/categories", app.Categories)

	r.Post("/api/generate-view", app.GenerateView)
	r.Post("/api/generate-views", app.GenerateViews)
	r.Post("/api/visualize-furniture", app.VisualizeFurniture)

	return r
}
