// Package analyzer orchestrates the C++ style analysis pipeline: built-in
// checks, rule-dispatched checks, optional semantic analysis, violation
// merging, and result aggregation.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/source"
	"github.com/yaklabco/cppgrader/pkg/styleguide"
)

// ragQueryLimit caps the length of the retrieval query built from source
// content.
const ragQueryLimit = 500

// Analyzer runs the full analysis pipeline for one file at a time.
// Concurrent analyses of different files are independent; the Analyzer
// holds no mutable per-analysis state.
type Analyzer struct {
	engine *check.Engine

	// semantic is optional; nil disables semantic analysis.
	semantic SemanticAnalyzer

	// retriever is optional; nil disables context retrieval.
	retriever ContextRetriever

	// topK is the number of context chunks requested from the retriever.
	topK int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSemanticAnalyzer attaches the LLM-backed collaborator.
func WithSemanticAnalyzer(s SemanticAnalyzer) Option {
	return func(a *Analyzer) { a.semantic = s }
}

// WithContextRetriever attaches the retrieval collaborator.
func WithContextRetriever(r ContextRetriever, topK int) Option {
	return func(a *Analyzer) {
		a.retriever = r
		a.topK = topK
	}
}

// New creates an Analyzer running the given engine.
func New(engine *check.Engine, opts ...Option) *Analyzer {
	a := &Analyzer{
		engine: engine,
		topK:   3,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze grades a source file against a style guide and returns the
// assembled result. It never returns an error: any fault escaping the
// pipeline is converted into a Result with Status == StatusError.
func (a *Analyzer) Analyze(
	ctx context.Context,
	file *source.File,
	guide *styleguide.Guide,
	useRAG bool,
) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error("analysis pipeline fault",
				logging.FieldFile, file.Name,
				logging.FieldError, fmt.Sprint(r),
			)
			result = newErrorResult(file.Name, file.Path, fmt.Sprintf("internal fault: %v", r))
		}
	}()

	logger := logging.FromContext(ctx)

	guideText := ""
	if guide != nil {
		guideText = guide.RawContent
	}

	// Phase 1: the built-in battery, independent of the uploaded rules.
	builtin := a.runBuiltin(ctx, file, guideText)

	// Phase 2: rule-dispatched checks for the parsed guide.
	dispatched := a.runDispatched(ctx, file, guide)

	// Phase 3: semantic violations from the LLM collaborator.
	semantic := a.runSemantic(ctx, file, guideText, useRAG)

	merged := Merge(builtin, dispatched, semantic)

	logger.Debug("analysis complete",
		logging.FieldFile, file.Name,
		logging.FieldViolations, len(merged),
	)

	return newSuccessResult(file.Name, file.Path, merged)
}

// runBuiltin executes the built-in battery. Individual checker faults are
// logged and treated as "found nothing".
func (a *Analyzer) runBuiltin(ctx context.Context, file *source.File, guideText string) []check.Violation {
	logger := logging.FromContext(ctx)

	report, err := a.engine.Run(ctx, file, guideText)
	if err != nil {
		logger.Warn("built-in checks aborted",
			logging.FieldFile, file.Name,
			logging.FieldError, err,
		)
	}
	if report == nil {
		return nil
	}

	for id, checkErr := range report.CheckerErrors {
		logger.Warn("checker failed, continuing",
			logging.FieldChecker, id,
			logging.FieldError, checkErr,
		)
	}

	return report.Violations
}

// runDispatched routes each parsed rule through the keyword dispatcher and
// runs the selected checks with the rule's severity. Unmatched rules are
// skipped silently.
func (a *Analyzer) runDispatched(ctx context.Context, file *source.File, guide *styleguide.Guide) []check.Violation {
	if guide == nil {
		return nil
	}

	logger := logging.FromContext(ctx)
	var violations []check.Violation

	for _, rule := range guide.Rules {
		bound, ok := check.Dispatch(rule.Text)
		if !ok {
			logger.Debug("rule has no deterministic check",
				logging.FieldRule, rule.ID,
			)
			continue
		}

		found := bound.Run(file, rule.Severity)
		for i := range found {
			if found[i].Reference == "" {
				found[i].Reference = rule.Section
			}
		}
		violations = append(violations, found...)
	}

	return violations
}

// runSemantic gathers retrieval context and invokes the semantic analyzer.
// Collaborator failures degrade gracefully to an empty violation list.
func (a *Analyzer) runSemantic(ctx context.Context, file *source.File, guideText string, useRAG bool) []check.Violation {
	if a.semantic == nil {
		return nil
	}

	logger := logging.FromContext(ctx)

	ragContext := ""
	if useRAG && a.retriever != nil {
		chunks, err := a.retriever.Search(ctx, ragQuery(file), a.topK)
		if err != nil {
			logger.Warn("context retrieval failed, continuing without context",
				logging.FieldFile, file.Name,
				logging.FieldError, err,
			)
		} else {
			ragContext = strings.Join(chunks, "\n\n")
		}
	}

	violations, err := a.semantic.Analyze(ctx, file.Content, guideText, ragContext)
	if err != nil {
		logger.Warn("semantic analysis failed, using built-in violations only",
			logging.FieldFile, file.Name,
			logging.FieldError, err,
		)
		return nil
	}

	// Model output may reference lines the file does not have. Clamp to the
	// valid range so every reported line maps back to the file.
	maxLine := file.LineCount() + 1
	for i := range violations {
		if violations[i].Line < 1 {
			violations[i].Line = 1
		}
		if violations[i].Line > maxLine {
			logger.Debug("semantic violation line out of range, clamping",
				logging.FieldFile, file.Name,
				logging.FieldLine, violations[i].Line,
			)
			violations[i].Line = maxLine
		}
	}

	return violations
}

// ragQuery builds a retrieval query from the head of the source file.
func ragQuery(file *source.File) string {
	content := file.Content
	if len(content) > ragQueryLimit {
		content = content[:ragQueryLimit]
	}
	return content
}
