/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for a charting frontend

ROUTE GROUPS:
  /api/calculations/*   Compute and browse calculations
  /api/comparisons      Reset-period comparison series
  /api/reset-periods    Reference data
  /api/scenarios        Demo parameter sets
  /api/reset            History wipe (dev only)

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
// allowedOrigins feeds the CORS middleware; nil allows the defaults
// from config.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/calculations", func(r chi.Router) {
			r.Get("/", h.ListCalculations)
			r.Post("/", h.CreateCalculation)
			r.Get("/{id}", h.GetCalculation)
		})

		r.Post("/comparisons", h.CreateComparison)

		r.Get("/reset-periods", h.ListResetPeriods)
		r.Get("/scenarios", h.ListScenarios)

		r.Post("/reset", h.ResetDatabase)
	})

	return r
}
