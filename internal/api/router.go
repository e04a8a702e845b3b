package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VentureLens-Labs/VentureLens/internal/events"
	"github.com/VentureLens-Labs/VentureLens/internal/session"
	"github.com/VentureLens-Labs/VentureLens/internal/store"
)

func NewRouter(s store.Store, sessions *session.Manager, ev events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	auth := NewAuthHandler(s, sessions, ev)
	score := NewScoreHandler(sessions, ev, logger)
	reports := NewReportsHandler(s, sessions, ev)
	feedback := NewFeedbackHandler(s, ev)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", auth.Signup)
		r.Post("/auth/login", auth.Login)

		r.Post("/feedback", feedback.Create)
		r.Get("/feedback/summary", feedback.Summary)

		r.Group(func(r chi.Router) {
			r.Use(SessionAuthMiddleware(sessions))

			r.Post("/auth/logout", auth.Logout)

			r.Post("/feasibility", score.Feasibility)
			r.Post("/environment", score.Environment)
			r.Post("/business-model", score.BusinessModel)

			r.Get("/reports/last/export", reports.ExportLast)
			r.Get("/reports/last/share", reports.ShareLast)
			r.Get("/reports/last/print", reports.PrintLast)

			r.Post("/reports", reports.Save)
			r.Get("/reports", reports.List)
			r.Get("/reports/{id}", reports.Get)
			r.Get("/reports/{id}/export", reports.Export)
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do.
		return
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
