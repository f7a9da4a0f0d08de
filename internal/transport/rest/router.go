package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/stagehype-backend/internal/transport/loader"
	"github.com/heartmarshall/stagehype-backend/internal/transport/middleware"
)

// RouterDeps wires handlers and request-scoped middleware into the router.
// Optional middleware left nil is skipped.
type RouterDeps struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Donation *DonationHandler
	Film     *FilmHandler
	Comment  *CommentHandler
	User     *UserHandler

	// Identity resolves the bearer token for every /api request.
	Identity middleware.Middleware
	Loaders  *loader.Repos

	Metrics        middleware.Middleware
	MetricsPath    string
	MetricsHandler http.Handler

	AuthLimit     middleware.Middleware
	DonationLimit middleware.Middleware
}

// NewRouter builds the HTTP routes. Process-wide middleware (request ID,
// logging, recovery, CORS) is applied by the caller around the result.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Metrics must run inside chi to see the matched route pattern.
	r.Use(middleware.Chain(d.Metrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, d.MetricsPath, d.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Chain(d.Identity), loader.Middleware(d.Loaders))

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.Chain(d.AuthLimit))
			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
			r.Post("/refresh", d.Auth.Refresh)
			r.Post("/logout", d.Auth.Logout)
		})

		r.With(middleware.Chain(d.DonationLimit)).Post("/donations", d.Donation.Create)
		r.Get("/donations", d.Donation.ListMine)

		r.Route("/creator", func(r chi.Router) {
			r.Get("/stats", d.Donation.CreatorStats)
			r.Get("/donations", d.Donation.CreatorDonations)
		})

		r.Route("/films", func(r chi.Router) {
			r.Get("/", d.Film.List)
			r.Post("/", d.Film.Create)
			r.Get("/pending", d.Film.Pending)
			r.Route("/{filmID}", func(r chi.Router) {
				r.Get("/", d.Film.Get)
				r.Patch("/moderation", d.Film.Moderate)
				r.Get("/donations", d.Donation.FilmDonations)
				r.Get("/comments", d.Comment.List)
				r.Post("/comments", d.Comment.Add)
			})
		})

		r.Get("/me", d.User.Me)
		r.Patch("/me", d.User.UpdateMe)
		r.Get("/artists/{userID}", d.User.Artist)

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", d.User.AdminList)
			r.Patch("/{userID}/role", d.User.AdminSetRole)
		})
	})

	return r
}
