package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yundol-dev/board-api/internal/api"
	apiMiddleware "github.com/yundol-dev/board-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	memberHandler := api.NewMemberHandler(app.memberStore, app.hasher, app.hasher, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.memberStore)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		// Member endpoints (public)
		r.Post("/members/join", memberHandler.Join)
		r.Post("/members/login", memberHandler.Login)

		// Post read endpoints (public)
		r.Get("/posts", postHandler.Items)
		r.Get("/posts/{id}", postHandler.Item)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireActor)
			r.Post("/posts", postHandler.Write)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
