// Package llm implements the LLM-backed semantic analyzer collaborator on
// top of the Ollama generate API. The engine treats its output as an
// already-materialized violation list; any failure here degrades the
// analysis to built-in violations only.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// maxResponseSize limits the LLM response body to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// maxAttempts bounds retries for transient failures.
const maxAttempts = 3

// baseBackoff is the delay before the first retry; it doubles per attempt
// with jitter added.
const baseBackoff = 500 * time.Millisecond

// ErrUnavailable indicates the Ollama endpoint could not be reached.
var ErrUnavailable = errors.New("ollama unavailable")

// Client talks to a single Ollama endpoint.
type Client struct {
	host       string
	model      string
	httpClient *http.Client
}

// New creates a Client from configuration.
func New(cfg config.OllamaConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		host:  cfg.Host,
		model: cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// generateRequest is the Ollama generate API request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

// generateResponse is the subset of the generate API response we consume.
type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Ping checks that the endpoint answers and knows at least one model.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Analyze asks the model for style violations and parses its JSON reply.
func (c *Client) Analyze(ctx context.Context, code, styleGuide, ragContext string) ([]check.Violation, error) {
	prompt := buildPrompt(code, styleGuide, ragContext)

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	raw, err := c.generate(ctx, body)
	if err != nil {
		return nil, err
	}

	violations, err := parseViolations(raw)
	if err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}

	return violations, nil
}

// generate posts the request with retries on transient failures.
func (c *Client) generate(ctx context.Context, body []byte) (string, error) {
	logger := logging.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := baseBackoff << (attempt - 2)
			delay += time.Duration(rand.Int64N(int64(delay / 2)))
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("semantic analysis cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			logger.Debug("retrying ollama call",
				logging.FieldHost, c.host,
				logging.FieldAttempt, attempt,
			)
		}

		raw, retryable, err := c.generateOnce(ctx, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return "", lastErr
}

// generateOnce performs a single generate call. The second result reports
// whether the failure is worth retrying.
func (c *Client) generateOnce(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", true, fmt.Errorf("ollama status %d: %s", resp.StatusCode, truncate(payload, 200))
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("ollama status %d: %s", resp.StatusCode, truncate(payload, 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", false, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", false, fmt.Errorf("ollama error: %s", parsed.Error)
	}

	return parsed.Response, false, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
