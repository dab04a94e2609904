package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veloracommerce/velora-backend/api/controllers"
	"github.com/veloracommerce/velora-backend/api/middleware"
	authsvc "github.com/veloracommerce/velora-backend/internal/auth"
	cartsvc "github.com/veloracommerce/velora-backend/internal/cart"
	catalogsvc "github.com/veloracommerce/velora-backend/internal/catalog"
	reviewsvc "github.com/veloracommerce/velora-backend/internal/reviews"
	wishlistsvc "github.com/veloracommerce/velora-backend/internal/wishlist"
	"github.com/veloracommerce/velora-backend/pkg/auth/session"
	"github.com/veloracommerce/velora-backend/pkg/config"
	"github.com/veloracommerce/velora-backend/pkg/db"
	"github.com/veloracommerce/velora-backend/pkg/logger"
	"github.com/veloracommerce/velora-backend/pkg/metrics"
	"github.com/veloracommerce/velora-backend/pkg/redis"
)

// Deps carries everything the router mounts.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Sessions    session.AccessSessionChecker
	HTTPMetrics *metrics.HTTPMetrics

	Auth     authsvc.Service
	Catalog  catalogsvc.Service
	Cart     cartsvc.Service
	Wishlist wishlistsvc.Service
	Reviews  reviewsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).
				Post("/register", controllers.Register(deps.Auth, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
				Post("/login", controllers.Login(deps.Auth, logg))
			r.With(middleware.Auth(cfg.JWT, deps.Sessions, logg)).
				Post("/logout", controllers.Logout(deps.Auth, logg))
		})

		r.Get("/products", controllers.NewArrivals(deps.Catalog, logg))
		r.Get("/products/{id}", controllers.GetProduct(deps.Catalog, logg))
		r.Get("/category", controllers.ListCategories(deps.Catalog, logg))
		r.Get("/category/{id}", controllers.CategoryProducts(deps.Catalog, logg))
		r.Get("/reviews/{productId}", controllers.ListProductReviews(deps.Reviews, logg))
		r.Post("/reviews", controllers.CreateReview(deps.Reviews, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.Cart, logg))
				r.Post("/", controllers.AddToCart(deps.Cart, logg))
				r.Put("/{productId}", controllers.UpdateCartItem(deps.Cart, logg))
				r.Delete("/{productId}", controllers.DeleteCartItem(deps.Cart, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.GetWishlist(deps.Wishlist, logg))
				r.Post("/", controllers.AddToWishlist(deps.Wishlist, logg))
				r.Delete("/{productId}", controllers.RemoveFromWishlist(deps.Wishlist, logg))
			})
		})
	})

	return r
}
