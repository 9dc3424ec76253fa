/**
 * @description
 * This file sets up the HTTP router for the service using the go-chi/chi
 * router. It registers the canvas webhook routes and applies middleware for
 * logging, panic recovery, timeouts and CORS.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new Chi router and registers the webhook routes.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Support console integration is healthy"))
	})

	// Canvas Kit webhooks
	r.Post("/initialize", h.HandleInitialize)
	r.Post("/submit", h.HandleSubmit)

	return r
}
