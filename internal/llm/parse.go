package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// errNoJSON indicates the model reply contained no JSON payload.
var errNoJSON = errors.New("no JSON object in model output")

// wireViolation is the violation shape we ask the model for.
type wireViolation struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Line        int    `json:"line"`
	Column      int    `json:"column,omitempty"`
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
}

// wireEnvelope is the expected top-level reply object.
type wireEnvelope struct {
	Violations []wireViolation `json:"violations"`
}

// parseViolations converts the model's JSON reply into violations. Models
// wrap JSON in prose often enough that the payload is located leniently
// before decoding. Violations with nonsensical line numbers are clamped to
// line 1; unknown severities fall back to the default.
func parseViolations(raw string) ([]check.Violation, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var envelope wireEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		// Some models reply with a bare array.
		var bare []wireViolation
		if arrErr := json.Unmarshal([]byte(payload), &bare); arrErr != nil {
			return nil, fmt.Errorf("decode violations: %w", err)
		}
		envelope.Violations = bare
	}

	violations := make([]check.Violation, 0, len(envelope.Violations))
	for _, w := range envelope.Violations {
		if w.Description == "" && w.Type == "" {
			continue
		}

		line := w.Line
		if line < 1 {
			line = 1
		}

		vType := strings.TrimSpace(w.Type)
		if vType == "" {
			vType = "semantic"
		}

		violations = append(violations, check.Violation{
			Type:        vType,
			Severity:    config.ParseSeverity(w.Severity),
			Line:        line,
			Column:      w.Column,
			Description: w.Description,
			Reference:   w.Reference,
		})
	}

	return violations, nil
}

// extractJSON locates the outermost JSON object or array in text.
func extractJSON(text string) (string, error) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", errNoJSON
	}

	open := text[start]
	closing := byte('}')
	if open == '[' {
		closing = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", errNoJSON
}
