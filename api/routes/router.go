package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront-backend/api/controllers"
	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/angelmondragon/storefront-backend/pkg/redis"
)

// NewRouter wires the storefront JSON API. redisClient, storefrontMetrics and
// metricsHandler are optional; without redis, idempotency replay and coupon
// rate limiting are disabled.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	catalogService catalog.Service,
	cartService cart.Service,
	wishlistService wishlist.Service,
	storefrontMetrics *metrics.StorefrontMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)
	if storefrontMetrics != nil {
		r.Use(middleware.Metrics(storefrontMetrics))
	}

	var (
		cachePinger      controllers.Pinger
		idempotencyStore redis.IdempotencyStore
		couponLimiter    = func(next http.Handler) http.Handler { return next }
	)
	if redisClient != nil {
		cachePinger = redisClient
		idempotencyStore = redisClient
		couponPolicy := middleware.NewRateLimitPolicy(
			"coupon",
			cfg.RateLimit.CouponWindow,
			cfg.RateLimit.CouponIPLimit,
			cfg.RateLimit.CouponCartLimit,
		)
		couponLimiter = middleware.RateLimit(couponPolicy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cachePinger, logg))
	})

	if metricsHandler != nil {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, cfg.Catalog.PageSize, cfg.Catalog.MaxPageSize, logg))
			r.Get("/facets", controllers.CatalogFacets(catalogService, logg))
			r.Get("/{productId}", controllers.CatalogDetail(catalogService, logg))
		})

		cartIdempotent := middleware.Idempotency(idempotencyStore, middleware.CartIdempotencyTTL, logg)
		checkoutIdempotent := middleware.Idempotency(idempotencyStore, middleware.CheckoutIdempotencyTTL, logg)

		r.With(cartIdempotent).Post("/cart", controllers.CartCreate(cartService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Get("/cart", controllers.CartGet(cartService, logg))
			r.Get("/cart/summary", controllers.CartSummary(cartService, logg))
			r.With(cartIdempotent).Post("/cart/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/cart/items/{productId}", controllers.CartUpdateQuantity(cartService, logg))
			r.Delete("/cart/items/{productId}", controllers.CartRemoveItem(cartService, logg))
			r.Post("/cart/items/{productId}/increment", controllers.CartIncrement(cartService, logg))
			r.Post("/cart/items/{productId}/decrement", controllers.CartDecrement(cartService, logg))
			r.With(cartIdempotent).Post("/cart/items/{productId}/wishlist", controllers.CartMoveToWishlist(cartService, logg))
			r.With(couponLimiter, cartIdempotent).Post("/cart/coupon", controllers.CartApplyCoupon(cartService, logg))
			r.Delete("/cart/coupon", controllers.CartRemoveCoupon(cartService, logg))

			r.With(checkoutIdempotent).Post("/checkout", controllers.Checkout(cartService, logg))

			r.Get("/wishlist", controllers.WishlistList(wishlistService, logg))
			r.Post("/wishlist", controllers.WishlistAdd(wishlistService, logg))
			r.Delete("/wishlist/{productId}", controllers.WishlistRemove(wishlistService, logg))
		})
	})

	return r
}
