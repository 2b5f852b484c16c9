package api

import (
	"github.com/go-chi/chi/v5"
)

// setupOperationalRoutes exposes health and metrics without request logging
func setupOperationalRoutes(r chi.Router, handlers *routeHandlers, metrics *httpMetrics) {
	r.Get("/healthz", handlers.healthHandler.health())
	r.Method("GET", "/metrics", metrics.Handler())
}

func setupPublicRoutes(r chi.Router, handlers *routeHandlers, contactLimiter, loginLimiter *rateLimiter) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/portfolio", handlers.portfolioHandler.getPortfolioItems())
		r.Get("/api/portfolio/{id}", handlers.portfolioHandler.getPortfolioItem())

		r.Get("/api/products", handlers.productHandler.getProducts())
		r.Get("/api/products/{id}", handlers.productHandler.getProduct())

		r.Get("/api/settings", handlers.settingsHandler.getSettings())

		r.With(contactLimiter.Handler).Post("/api/contact", handlers.contactHandler.createContact())
		r.With(loginLimiter.Handler).Post("/api/admin/login", handlers.adminAuthHandler.login())
	})
}

// setupAdminRoutes registers every mutation and the contact list behind the admin guard
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.requireAdmin)

		r.Get("/api/contacts", handlers.contactHandler.getContacts())

		r.Post("/api/admin/portfolio", handlers.portfolioHandler.createPortfolioItem())
		r.Put("/api/admin/portfolio/{id}", handlers.portfolioHandler.updatePortfolioItem())
		r.Delete("/api/admin/portfolio/{id}", handlers.portfolioHandler.deletePortfolioItem())

		r.Post("/api/admin/products", handlers.productHandler.createProduct())
		r.Put("/api/admin/products/{id}", handlers.productHandler.updateProduct())
		r.Delete("/api/admin/products/{id}", handlers.productHandler.deleteProduct())

		r.Put("/api/admin/settings", handlers.settingsHandler.updateSettings())
	})
}
