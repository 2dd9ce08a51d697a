package server

import (
	"encoding/json"
	"net/http"

	"github.com/yaklabco/cppgrader/internal/logging"
)

// AddDocumentRequest is the request body for POST /rag/documents.
type AddDocumentRequest struct {
	Content  string `json:"content" validate:"required"`
	DocType  string `json:"doc_type"`
	Metadata string `json:"metadata"`
}

// SearchRequest is the request body for POST /rag/search.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"omitempty,min=1"`
}

// handleAddDocument chunks and indexes a document for retrieval.
func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req AddDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	id := s.deps.Retriever.AddDocument(r.Context(), req.Content, req.DocType, req.Metadata)
	s.logger.Info("document indexed", logging.FieldDocID, id, logging.FieldSize, len(req.Content))

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleListDocuments returns all indexed documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"documents": s.deps.Retriever.ListDocuments(),
	})
}

// handleDeleteDocument removes an indexed document and its chunks.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !s.deps.Retriever.DeleteDocument(id) {
		s.errorResponse(w, http.StatusNotFound, "document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// handleSearch runs a retrieval query against the indexed chunks.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	topK := req.TopK
	if topK == 0 {
		topK = s.cfg.RAG.TopK
	}

	chunks, err := s.deps.Retriever.Search(r.Context(), req.Query, topK)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "search: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"query":   req.Query,
		"results": chunks,
	})
}
