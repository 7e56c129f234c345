package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter assembles the public HTTP surface.
func NewRouter(app *handlers.App, logger zerolog.Logger, rateLimitPerMin int) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	if rateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(rateLimitPerMin, time.Minute))
	}

	r.MethodNotAllowed(app.MethodNotAllowed)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/donations", app.Donations)
		r.Get("/donations/total", app.DonationsTotal)
		r.Get("/goal", app.Goal)
		r.Post("/token", app.TokenExchange)
	})

	return r
}
