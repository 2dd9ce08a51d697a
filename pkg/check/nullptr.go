package check

import (
	"regexp"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// nullTokenRe matches the NULL macro as a whole token.
var nullTokenRe = regexp.MustCompile(`\bNULL\b`)

// NullptrChecker flags uses of the NULL macro in favor of nullptr.
type NullptrChecker struct {
	BaseChecker
}

// NewNullptrChecker creates the NULL-vs-nullptr checker.
func NewNullptrChecker() *NullptrChecker {
	return &NullptrChecker{
		BaseChecker: NewBaseChecker(
			"CPP010",
			"use-nullptr",
			"Use nullptr instead of the NULL macro",
			config.SeverityWarning,
			[]string{"modernize"},
		),
	}
}

// Check reports every non-comment, non-preprocessor line containing NULL.
func (c *NullptrChecker) Check(ctx *Context) ([]Violation, error) {
	var violations []Violation

	for n := 1; n <= ctx.File.LineCount(); n++ {
		line := ctx.File.Line(n)
		if source.IsComment(line) || source.IsPreprocessor(line) {
			continue
		}

		loc := nullTokenRe.FindStringIndex(line)
		if loc == nil {
			continue
		}

		violations = append(violations, Violation{
			Type:        TypeUseNullptr,
			Severity:    config.SeverityWarning,
			Line:        n,
			Column:      loc[0] + 1,
			Description: "Use nullptr instead of NULL",
			Snippet:     ctx.File.Snippet(n),
		})
	}

	return violations, nil
}
