package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/psharda/fieldforce/backend/spec"
)

// Router builds the chi router with every endpoint mounted.
// Middleware (request ID, logging, CORS, body limits) is applied by main.go
// around the returned handler; this keeps routing testable in isolation.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", s.Login)

		api.Post("/attendance/check-in", s.CheckIn)
		api.Post("/attendance/check-out", s.CheckOut)
		api.Get("/attendance", s.ListAttendance)

		api.Post("/daily-visit-reports", s.CreateVisitReport)
		api.Get("/daily-visit-reports", s.ListVisitReports)
		api.Get("/daily-visit-reports/export", s.ExportVisitReports)

		s.registerEntities(api)
	})

	// Unmatched routes get the envelope too, not chi's plain-text default.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "Route not found")
	})

	return r
}
