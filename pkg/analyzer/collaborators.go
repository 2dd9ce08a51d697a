package analyzer

import (
	"context"

	"github.com/yaklabco/cppgrader/pkg/check"
)

// SemanticAnalyzer is the contract for the LLM-backed collaborator that
// produces additional violations. A failure is never fatal: the analyzer
// proceeds with built-in violations only.
type SemanticAnalyzer interface {
	Analyze(ctx context.Context, code, styleGuide, ragContext string) ([]check.Violation, error)
}

// ContextRetriever is the contract for the vector-similarity collaborator.
// Its results are purely advisory context forwarded to the SemanticAnalyzer.
type ContextRetriever interface {
	Search(ctx context.Context, query string, topK int) ([]string, error)
}
