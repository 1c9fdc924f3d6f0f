package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vendora/storefront-backend/api/controllers"
	pricingcontrollers "github.com/vendora/storefront-backend/api/controllers/pricing"
	"github.com/vendora/storefront-backend/api/middleware"
	"github.com/vendora/storefront-backend/internal/quotes"
	"github.com/vendora/storefront-backend/pkg/config"
	"github.com/vendora/storefront-backend/pkg/logger"
	"github.com/vendora/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	deps map[string]controllers.Pinger,
	redisClient *redis.Client,
	quoteService quotes.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	pricingPolicy := middleware.NewRateLimitPolicy(
		"pricing",
		cfg.RateLimit.PricingWindow,
		cfg.RateLimit.PricingIPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/stores/{storeID}", func(r chi.Router) {
		r.Use(middleware.StoreContext(logg))

		r.Get("/ping", controllers.StorePing())

		r.Route("/pricing", func(r chi.Router) {
			if redisClient != nil {
				r.Use(middleware.RateLimit(pricingPolicy, redisClient, logg))
			}

			r.Post("/resolve", pricingcontrollers.ResolveModel(quoteService, logg))
			r.Post("/line", pricingcontrollers.PriceLine(quoteService, logg))
			r.Post("/cart", pricingcontrollers.PriceCart(quoteService, logg))
		})
	})

	return r
}
