package router

import (
	"net/http"

	"stylique/internal/handler"
	"stylique/internal/metrics"
	"stylique/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Product  *handler.ProductHandler
	Review   *handler.ReviewHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
	Health   *handler.HealthHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	// Gatherer backs /metrics. The endpoint is omitted when nil.
	Gatherer prometheus.Gatherer
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> Metrics -> CORS
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Metrics(opts.Metrics),
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/", handler.Root)
	r.Get("/health", h.Health.Health)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.Product.List)
		r.Get("/filter-stats", h.Product.FilterStats)
		r.Get("/category/{category}", h.Product.ByCategory)
		r.Get("/{id}", h.Product.GetByID)
	})
	r.Get("/categories", h.Product.Categories)

	r.Get("/reviews/{productId}", h.Review.ByProduct)
	r.Post("/reviews", h.Review.Create)

	r.Post("/checkout", h.Order.Checkout)
	r.Get("/checkout/{email}", h.Order.ByEmail)

	r.Put("/customers", h.Customer.Upsert)
	r.Get("/customers/{email}", h.Customer.GetByEmail)

	return r
}
