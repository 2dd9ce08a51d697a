package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func newTestClient(host string) *Client {
	return New(config.OllamaConfig{
		Host:           host,
		Model:          "codellama:7b",
		TimeoutSeconds: 5,
	})
}

func TestClient_AnalyzeSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "codellama:7b", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "int x = 5;")
		assert.Contains(t, req.Prompt, "Use named constants")

		reply := `{"violations": [{"type": "magic_number", "severity": "WARNING", "line": 1, "description": "5 is unnamed"}]}`
		_ = json.NewEncoder(w).Encode(generateResponse{Response: reply})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	violations, err := client.Analyze(context.Background(), "int x = 5;", "Use named constants", "")

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "magic_number", violations[0].Type)
	assert.Equal(t, config.SeverityWarning, violations[0].Severity)
}

func TestClient_AnalyzeRAGContextInPrompt(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Prompt, "Additional Context")
		assert.Contains(t, req.Prompt, "retrieved chunk")

		_ = json.NewEncoder(w).Encode(generateResponse{Response: `{"violations": []}`})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	violations, err := client.Analyze(context.Background(), "int x;", "guide", "retrieved chunk")

	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestClient_AnalyzeClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error": "model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Analyze(context.Background(), "int x;", "guide", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), calls.Load(), "4xx responses are not retried")
}

func TestClient_AnalyzeServerErrorRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(generateResponse{Response: `{"violations": []}`})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	violations, err := client.Analyze(context.Background(), "int x;", "guide", "")

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_AnalyzeOllamaError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{Error: "model is loading"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Analyze(context.Background(), "int x;", "guide", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is loading")
}

func TestClient_Ping(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"models": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestClient_PingUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.Ping(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
