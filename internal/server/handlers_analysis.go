package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/internal/store"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	FileID       string `json:"file_id" validate:"required"`
	StyleGuideID string `json:"style_guide_id" validate:"required"`
	UseRAG       bool   `json:"use_rag"`
}

// handleAnalyze grades a stored file against a stored style guide.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	f, err := s.deps.Files.Get(req.FileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "file not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	g, err := s.deps.Guides.Get(req.StyleGuideID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "style guide not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("analysis requested",
		logging.FieldFileID, req.FileID,
		logging.FieldGuideID, req.StyleGuideID,
		logging.FieldUseRAG, req.UseRAG,
	)

	src := source.New(f.Name, "", f.Content)
	result := s.deps.Analyzer.Analyze(r.Context(), src, g.Parsed, req.UseRAG)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetResult reports that result persistence is not available.
// Analysis results are returned inline by POST /analyze and not stored.
func (s *Server) handleGetResult(w http.ResponseWriter, _ *http.Request) {
	s.errorResponse(w, http.StatusNotImplemented, "result storage not implemented; results are returned by POST /analyze")
}

// handleGetStatus reports analysis status. Analyses run synchronously, so
// any id that reaches this endpoint is already complete.
func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"id":     r.PathValue("id"),
		"status": "completed",
	})
}
