package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/floracart/floracart/internal/auth"
	"github.com/floracart/floracart/internal/catalog/categories"
	"github.com/floracart/floracart/internal/catalog/products"
	"github.com/floracart/floracart/internal/contact"
	"github.com/floracart/floracart/internal/favorites"
	"github.com/floracart/floracart/internal/media"
	"github.com/floracart/floracart/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	Sessions          *auth.SessionManager
	AuthHandler       *auth.Handler
	CategoriesHandler *categories.Handler
	ProductsHandler   *products.Handler
	FavoritesHandler  *favorites.Handler
	ContactHandler    *contact.Handler
	MediaHandler      *media.Handler
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router with Floracart defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/categories", params.CategoriesHandler.MountPublic)
	r.Route("/products", params.ProductsHandler.MountPublic)
	r.Route("/favorites", params.FavoritesHandler.MountRoutes)
	r.Route("/contact", params.ContactHandler.MountRoutes)
	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Route("/admin", func(r chi.Router) {
		r.Use(params.Sessions.RequireAdmin)
		r.Route("/categories", params.CategoriesHandler.MountAdmin)
		r.Route("/products", params.ProductsHandler.MountAdmin)
		if params.MediaHandler != nil {
			r.Post("/media", params.MediaHandler.Upload)
		}
	})

	return r
}
