package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/timension/internal/api"
	apiMiddleware "github.com/phrazzld/timension/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(app.authService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authService)
	contentHandler := api.NewContentHandler(app.content, app.catalog)
	profileHandler := api.NewProfileHandler(app.profileService)
	healthHandler := api.NewHealthHandler(app.content.Live)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/signin", authHandler.SignIn)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Catalog
		r.Get("/mentors", contentHandler.ListMentors)
		r.Get("/portals", contentHandler.ListPortals)
		r.Get("/chronicle", contentHandler.ListChronicle)
		r.Post("/chaos/answer", contentHandler.ChaosAnswer)

		// Generated content. Model calls are bounded by llm.request_timeout_seconds.
		r.Get("/headline", contentHandler.Headline)
		r.Post("/mentors/{id}/chat", contentHandler.Chat)
		r.Get("/portals/{id}/briefing", contentHandler.Briefing)
		r.Post("/explore", contentHandler.Explore)
		r.Post("/timeline", contentHandler.Timeline)
		r.Post("/ripple", contentHandler.Ripple)
		r.Get("/chaos", contentHandler.Chaos)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/auth/session", authHandler.Session)
			r.Post("/auth/signout", authHandler.SignOut)
			r.Get("/profile", profileHandler.GetProfile)
		})
	})

	r.Get("/health", healthHandler.Health)

	return r
}
