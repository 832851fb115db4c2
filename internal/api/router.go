package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joltlabs/jolt-api/internal/api/middleware"
	"github.com/joltlabs/jolt-api/internal/api/shared"
)

// RouterDeps bundles the handlers and middleware the router mounts.
type RouterDeps struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Intake   *IntakeHandler
	Analysis *AnalysisHandler
	Safety   *SafetyHandler
	AuthMW   *middleware.AuthMiddleware
}

// NewRouter builds the chi router with all API routes mounted under /api.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.Refresh)
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMW.Authenticate)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", deps.Profile.Get)
				r.Put("/", deps.Profile.Update)
				r.Post("/reset", deps.Profile.Reset)
			})

			r.Route("/intakes", func(r chi.Router) {
				r.Get("/", deps.Intake.List)
				r.Post("/", deps.Intake.Create)
				r.Get("/presets", deps.Intake.Presets)
				r.Delete("/{id}", deps.Intake.Delete)
			})

			r.Route("/analysis", func(r chi.Router) {
				r.Get("/current", deps.Analysis.Current)
				r.Get("/timeline", deps.Analysis.Timeline)
				r.Get("/peak", deps.Analysis.Peak)
				r.Get("/crash", deps.Analysis.Crash)
			})

			r.Post("/safety/check", deps.Safety.Check)
		})
	})

	return r
}
