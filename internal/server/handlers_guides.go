package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/internal/store"
)

// maxGuideSize caps style guide uploads at 1 MiB.
const maxGuideSize = 1 * 1024 * 1024

// GuideResponse is returned for successful style guide uploads.
type GuideResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rules int    `json:"rules"`
}

// handleUploadStyleGuide accepts a multipart style guide upload.
func (s *Server) handleUploadStyleGuide(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxGuideSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing multipart field \"file\": "+err.Error())
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "read upload: "+err.Error())
		return
	}

	id := s.deps.Guides.Put(header.Filename, string(content))

	g, err := s.deps.Guides.Get(id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ruleCount := 0
	if g.Parsed != nil {
		ruleCount = len(g.Parsed.Rules)
	}

	s.logger.Info("style guide uploaded",
		logging.FieldGuideID, id,
		logging.FieldFile, header.Filename,
		logging.FieldRule, ruleCount,
	)

	s.jsonResponse(w, http.StatusCreated, GuideResponse{
		ID:    id,
		Name:  header.Filename,
		Rules: ruleCount,
	})
}

// handleListStyleGuides returns all stored guides without their content.
func (s *Server) handleListStyleGuides(w http.ResponseWriter, _ *http.Request) {
	guides := s.deps.Guides.List()

	summaries := make([]store.Guide, len(guides))
	for i, g := range guides {
		g.Content = ""
		summaries[i] = g
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"style_guides": summaries})
}

// handleGetStyleGuide returns one stored guide including content.
func (s *Server) handleGetStyleGuide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	g, err := s.deps.Guides.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "style guide not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, g)
}
