package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RegisterRoutes registers the calculator routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/investment", func(r chi.Router) {
		r.Post("/analyze", h.HandleAnalyze)
		r.Post("/compare-terms", h.HandleCompareTerms)
	})
	r.Route("/loan", func(r chi.Router) {
		r.Post("/payment", h.HandleLoanPayment)
		r.Post("/schedule", h.HandleLoanSchedule)
	})
	r.Post("/projection", h.HandleProjection)
	r.Post("/yield", h.HandleYield)
	r.Post("/cashflow", h.HandleCashFlow)
	r.Post("/convert", h.HandleConvert)
	r.Get("/rates/indexed-unit", h.HandleIndexedUnit)
}

// NewRouter builds the full router. limiter may be nil to disable rate
// limiting.
func NewRouter(h *Handler, limiter *RateLimiter, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HandleHealth)

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		h.RegisterRoutes(r)
	})

	return r
}
