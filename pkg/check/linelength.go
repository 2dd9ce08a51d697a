package check

import (
	"fmt"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// maxLineLength is the fixed threshold for the built-in line-length check.
// URLs receive no special treatment in this variant.
const maxLineLength = 200

// LineLengthChecker flags lines longer than maxLineLength characters.
type LineLengthChecker struct {
	BaseChecker
}

// NewLineLengthChecker creates the built-in line-length checker.
func NewLineLengthChecker() *LineLengthChecker {
	return &LineLengthChecker{
		BaseChecker: NewBaseChecker(
			"CPP003",
			"line-length",
			"Lines should not exceed 200 characters",
			config.SeverityMinor,
			[]string{"formatting", "line_length"},
		),
	}
}

// Check reports every line exceeding the fixed threshold.
func (c *LineLengthChecker) Check(ctx *Context) ([]Violation, error) {
	return checkLineLength(ctx.File, maxLineLength, config.SeverityMinor), nil
}

// checkLineLength is shared between the built-in checker (fixed threshold)
// and the dispatched line-length check (limit taken from the rule text).
func checkLineLength(file *source.File, limit int, sev config.Severity) []Violation {
	var violations []Violation

	for n := 1; n <= file.LineCount(); n++ {
		length := len(file.Line(n))
		if length <= limit {
			continue
		}
		violations = append(violations, Violation{
			Type:        TypeLineTooLong,
			Severity:    sev,
			Line:        n,
			Column:      limit + 1,
			Description: fmt.Sprintf("Line length %d exceeds maximum %d", length, limit),
		})
	}

	return violations
}
