package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/scrandle/api/internal/core/ports"
)

type RouterConfig struct {
	Daily         *DailyHandler
	Vote          *VoteHandler
	Results       *ResultsHandler
	Admin         *AdminHandler
	Cron          *CronHandler
	AdminVerifier ports.CredentialVerifier
	CronVerifier  ports.CredentialVerifier

	// Ping reports backing-store health for /healthz.
	Ping func() error
}

func NewHandler(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if cfg.Ping != nil {
			if err := cfg.Ping(); err != nil {
				respondError(w, http.StatusServiceUnavailable, "database unreachable")
				return
			}
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/daily", func(r chi.Router) {
		r.Get("/", cfg.Daily.GetDaily)
		r.Post("/vote", cfg.Daily.Vote)
		r.Post("/results", cfg.Results.Submit)
		r.Get("/results", cfg.Results.Average)
	})

	r.Route("/scrandle", func(r chi.Router) {
		r.Post("/vote", cfg.Vote.Vote)
		r.Get("/results", cfg.Results.SessionBreakdown)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", cfg.Admin.Login)

		r.Group(func(r chi.Router) {
			r.Use(RequireCredential(cfg.AdminVerifier))
			r.Get("/items", cfg.Admin.ListItems)
			r.Post("/items/{id}/approve", cfg.Admin.ApproveItem)
			r.Post("/items/{id}/ban", cfg.Admin.BanItem)
		})
	})

	r.Route("/cron", func(r chi.Router) {
		r.Use(RequireCredential(cfg.CronVerifier))
		r.Get("/daily", cfg.Cron.GenerateDaily)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
