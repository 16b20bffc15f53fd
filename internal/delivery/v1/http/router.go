package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/posh-choice/storefront-core/docs" // Импорт сгенерированных файлов
	"github.com/posh-choice/storefront-core/internal/usecase"
	"github.com/posh-choice/storefront-core/pkg/logger"
	"github.com/posh-choice/storefront-core/pkg/metrics"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(sessions *usecase.SessionManager, catalog usecase.CatalogUC,
	orders usecase.OrderUC, recency usecase.RecencyUC) {
	r.router.Use(metrics.Middleware)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))
	r.router.Handle("/metrics", metrics.Handler())

	r.router.Route("/api/v1", func(v1 chi.Router) {
		sessionHandler := NewSessionHandler(sessions, r.logger)
		recencyHandler := NewRecencyHandler(recency, r.logger)
		catalogHandler := NewCatalogHandler(catalog, orders, r.logger)

		registerSessionRoutes(v1, sessionHandler, recencyHandler)
		registerCatalogRoutes(v1, catalogHandler)
	})
}

func registerSessionRoutes(router chi.Router, sh *SessionHandler, rh *RecencyHandler) {
	router.Route("/sessions/{sessionID}", func(s chi.Router) {
		s.Route("/search", func(sr chi.Router) {
			sr.Get("/", sh.searchState)
			sr.Post("/input", sh.searchInput)
		})

		s.Route("/cart", func(c chi.Router) {
			c.Get("/", sh.getCart)
			c.Delete("/", sh.clearCart)
			c.Post("/items", sh.addCartItem)
			c.Put("/items/{productID}", sh.updateCartItem)
			c.Delete("/items/{productID}", sh.removeCartItem)
		})

		s.Route("/wishlist", func(wl chi.Router) {
			wl.Get("/", sh.getWishlist)
			wl.Post("/items", sh.addWishlistItem)
			wl.Delete("/items/{productID}", sh.removeWishlistItem)
			wl.Post("/items/{productID}/move-to-cart", sh.moveToCart)
		})

		s.Route("/viewed", func(v chi.Router) {
			v.Get("/", rh.listViewed)
			v.Post("/", rh.recordView)
			v.Delete("/", rh.clearViewed)
		})
	})
}

func registerCatalogRoutes(router chi.Router, ch *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", ch.listProducts)
		pr.Get("/search", ch.searchProducts)
	})
	router.Get("/categories/{slug}", ch.getCategory)
	router.Get("/blog", ch.listPosts)
	router.Get("/orders/{orderNumber}/status", ch.orderStatus)
}
