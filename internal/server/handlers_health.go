package server

import (
	"context"
	"net/http"
	"time"
)

// HealthResponse reports service and collaborator health.
type HealthResponse struct {
	Status string `json:"status"`
	Ollama string `json:"ollama"`
}

// handleHealth returns server health status. The grader itself is healthy
// whenever it can answer; Ollama health is reported separately because the
// deterministic checks work without it.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Ollama: "disabled"}

	if s.deps.LLM != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.deps.LLM.Ping(ctx); err != nil {
			resp.Ollama = "unavailable"
		} else {
			resp.Ollama = "ok"
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
