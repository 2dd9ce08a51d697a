package check

import (
	"context"
	"fmt"

	"github.com/yaklabco/cppgrader/pkg/source"
)

// Report contains the results of running the built-in battery on one file.
type Report struct {
	// Violations contains all issues found, in checker order.
	Violations []Violation

	// CheckerErrors records internal failures per checker ID. A failed
	// checker contributes no violations; it never aborts the run.
	CheckerErrors map[string]error
}

// HasIssues returns true if any violations were found.
func (r *Report) HasIssues() bool {
	return len(r.Violations) > 0
}

// Engine runs the registered checkers over a source file.
type Engine struct {
	// Registry holds the checkers to run.
	Registry *Registry
}

// NewEngine creates an Engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Run executes every registered checker against the file, in fixed ID order.
// Each checker degrades independently: a returned error or a panic is
// recorded in CheckerErrors and treated as "this check found nothing".
func (e *Engine) Run(ctx context.Context, file *source.File, guideText string) (*Report, error) {
	report := &Report{
		CheckerErrors: make(map[string]error),
	}

	checkCtx := NewContext(ctx, file, guideText)

	for _, checker := range e.Registry.Checkers() {
		select {
		case <-ctx.Done():
			return report, fmt.Errorf("checks cancelled: %w", ctx.Err())
		default:
		}

		violations, err := runChecker(checker, checkCtx)
		if err != nil {
			report.CheckerErrors[checker.ID()] = err
			continue
		}

		for i := range violations {
			if violations[i].Severity == "" {
				violations[i].Severity = checker.DefaultSeverity()
			}
		}

		report.Violations = append(report.Violations, violations...)
	}

	return report, nil
}

// runChecker invokes a single checker, converting panics into errors so one
// faulty check can never take down the whole analysis.
func runChecker(checker Checker, ctx *Context) (violations []Violation, err error) {
	defer func() {
		if r := recover(); r != nil {
			violations = nil
			err = fmt.Errorf("checker %s panicked: %v", checker.ID(), r)
		}
	}()

	return checker.Check(ctx)
}
