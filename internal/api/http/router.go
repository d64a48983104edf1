package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/qare/platform/health/http"
	platformobservability "github.com/shestoi/qare/platform/observability"
)

// RouterOptions - необязательные части роутера
type RouterOptions struct {
	// AllowedOrigins для CORS на /api/*; пусто - CORS не включается
	AllowedOrigins []string
	// Metrics если не nil, считаются запросы и открывается /metrics
	Metrics *platformobservability.HTTPMetrics
}

// NewRouter создаёт и настраивает HTTP роутер Supply Service
// readiness используется /health: ошибка -> 503 Service Unavailable
func NewRouter(handler *Handler, readiness platformhealth.Readiness, logger *zap.Logger, opts RouterOptions) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	if logger != nil {
		router.Use(platformobservability.HTTPMiddleware("supply", logger))
	}
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware)
		router.Handle("/metrics", opts.Metrics.Handler())
	}

	router.Route(SuppliesPath, func(r chi.Router) {
		if len(opts.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.AllowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
				AllowedHeaders: []string{"Content-Type"},
				ExposedHeaders: []string{"Location"},
			}))
		}

		r.Post("/", handler.CreateSupply)
		r.Get("/", handler.ListSupplies)
		r.Get("/{name}", handler.GetSupply)
		r.Put("/{name}", handler.UpdateSupply)
		r.Delete("/{name}", handler.DeleteSupply)
	})

	router.Get("/health", platformhealth.Handler(readiness))

	return router
}
