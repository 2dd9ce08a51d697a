// Package server provides the HTTP REST API for the C++ style grader.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/yaklabco/cppgrader/internal/llm"
	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/internal/rag"
	"github.com/yaklabco/cppgrader/internal/store"
	"github.com/yaklabco/cppgrader/pkg/analyzer"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// Deps bundles the collaborators the server exposes over HTTP.
type Deps struct {
	// Analyzer runs the grading pipeline. Required.
	Analyzer *analyzer.Analyzer

	// Files stores uploaded source files. Required.
	Files *store.FileStore

	// Guides stores uploaded style guides. Required.
	Guides *store.GuideStore

	// Retriever serves RAG documents and search. Required.
	Retriever *rag.Retriever

	// LLM is the Ollama client used for health reporting. Optional.
	LLM *llm.Client
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	deps       Deps
	validate   *validator.Validate
	logger     *log.Logger
}

// New creates a new server instance.
func New(cfg *config.Config, deps Deps, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		cfg:      cfg,
		deps:     deps,
		validate: validator.New(),
		logger:   logger,
	}

	mux := http.NewServeMux()

	// File endpoints
	mux.HandleFunc("POST /files", s.handleUploadFile)
	mux.HandleFunc("GET /files", s.handleListFiles)
	mux.HandleFunc("GET /files/{id}", s.handleGetFile)
	mux.HandleFunc("DELETE /files/{id}", s.handleDeleteFile)

	// Style guide endpoints
	mux.HandleFunc("POST /style-guides", s.handleUploadStyleGuide)
	mux.HandleFunc("GET /style-guides", s.handleListStyleGuides)
	mux.HandleFunc("GET /style-guides/{id}", s.handleGetStyleGuide)

	// Analysis endpoints
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /results/{id}", s.handleGetResult)
	mux.HandleFunc("GET /status/{id}", s.handleGetStatus)

	// RAG endpoints
	mux.HandleFunc("POST /rag/documents", s.handleAddDocument)
	mux.HandleFunc("GET /rag/documents", s.handleListDocuments)
	mux.HandleFunc("DELETE /rag/documents/{id}", s.handleDeleteDocument)
	mux.HandleFunc("POST /rag/search", s.handleSearch)

	// Health endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for semantic analysis
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Addr returns the address the server is configured to listen on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the root HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server starting", logging.FieldHost, s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging and stamps the logger into the request
// context so handlers and the pipeline log through the same sink.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.WithLogger(r.Context(), s.logger)
		ctx = logging.With(ctx, logging.FieldPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
		s.logger.Debug("request",
			"method", r.Method,
			logging.FieldPath, r.URL.Path,
			logging.FieldDuration, time.Since(start),
		)
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", logging.FieldError, err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
