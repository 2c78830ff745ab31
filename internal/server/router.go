package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"convert-api/internal/handlers"
	"convert-api/internal/observability"
	"convert-api/internal/pricing"
	"convert-api/internal/site"
)

type options struct {
	allowedOrigins []string
}

// Option customises NewRouter.
type Option func(*options)

// WithAllowedOrigins sets the origins accepted by the CORS middleware.
func WithAllowedOrigins(origins []string) Option {
	return func(o *options) {
		if len(origins) > 0 {
			o.allowedOrigins = origins
		}
	}
}

func NewRouter(opts ...Option) http.Handler {
	o := options{allowedOrigins: []string{"*"}}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: o.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", observability.RequestIDHeader},
		ExposedHeaders: []string{observability.RequestIDHeader},
	}))

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	pricing.RegisterRoutes(r)

	// Everything else is the bundled front end; unknown files are 404.
	r.Method(http.MethodGet, siteRoute, site.Handler())

	r.MethodNotAllowed(methodNotAllowed(r))

	return r
}

const siteRoute = "/*"

// methodNotAllowed answers 405 only for paths with a GET route of their own.
// Paths that fall through to the front end catch-all do not exist for any
// other method, so they get a 404.
func methodNotAllowed(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if !routes.Match(rctx, http.MethodGet, r.URL.Path) || rctx.RoutePattern() == siteRoute {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
