package handler

import "net/http"

// GetHealth handles GET /healthz.
// It returns HTTP 200 when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Message: "ok"})
}
