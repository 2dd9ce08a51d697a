package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/internal/store"
	"github.com/yaklabco/cppgrader/pkg/langdetect"
)

// UploadResponse is returned for successful file uploads.
type UploadResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Language string `json:"language,omitempty"`
}

// handleUploadFile accepts a multipart C++ source upload.
func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, store.MaxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing multipart field \"file\": "+err.Error())
		return
	}
	defer file.Close()

	if !store.AllowedExtension(header.Filename) {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf(
			"unsupported file type %q; allowed: %s",
			header.Filename, strings.Join(store.AllowedExtensions(), ", "),
		))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "read upload: "+err.Error())
		return
	}
	if len(content) > store.MaxFileSize {
		s.errorResponse(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds %d byte limit", store.MaxFileSize))
		return
	}

	language := langdetect.Detect(header.Filename, content)
	if !langdetect.IsCPP(language) {
		s.logger.Warn("upload does not look like C++",
			logging.FieldFile, header.Filename,
			"language", language,
		)
	}

	id := s.deps.Files.Put(header.Filename, string(content), language)
	s.logger.Info("file uploaded",
		logging.FieldFileID, id,
		logging.FieldFile, header.Filename,
		logging.FieldSize, len(content),
	)

	s.jsonResponse(w, http.StatusCreated, UploadResponse{
		ID:       id,
		Name:     header.Filename,
		Size:     len(content),
		Language: language,
	})
}

// handleListFiles returns all stored files without their content.
func (s *Server) handleListFiles(w http.ResponseWriter, _ *http.Request) {
	files := s.deps.Files.List()

	// Strip content from the listing; it can be 10MB per file.
	summaries := make([]store.File, len(files))
	for i, f := range files {
		f.Content = ""
		summaries[i] = f
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"files": summaries})
}

// handleGetFile returns one stored file including content.
func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	f, err := s.deps.Files.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "file not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, f)
}

// handleDeleteFile removes a stored file.
func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.deps.Files.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "file not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
