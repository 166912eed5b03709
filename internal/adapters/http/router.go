// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/agreement-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	agreementHandler *handlers.AgreementHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Browser form.
	r.Get("/", agreementHandler.ShowForm)
	r.Post("/agreements", agreementHandler.SubmitForm)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/agreements", agreementHandler.CreateAgreement)
	})

	return r
}
