package check

import (
	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// headerWindow is the number of leading lines searched for a file header
// comment. Lines beyond the window are covered by the no-comments check.
const headerWindow = 10

// FileHeaderChecker verifies the file opens with a header comment.
type FileHeaderChecker struct {
	BaseChecker
}

// NewFileHeaderChecker creates the file-header checker.
func NewFileHeaderChecker() *FileHeaderChecker {
	return &FileHeaderChecker{
		BaseChecker: NewBaseChecker(
			"CPP005",
			"file-header",
			"Files should begin with a header comment describing their purpose",
			config.SeverityMinor,
			[]string{"documentation"},
		),
	}
}

// Check emits one violation at line 1 when none of the first ten lines
// begins a comment.
func (c *FileHeaderChecker) Check(ctx *Context) ([]Violation, error) {
	limit := min(headerWindow, ctx.File.LineCount())
	for n := 1; n <= limit; n++ {
		if source.IsComment(ctx.File.Line(n)) {
			return nil, nil
		}
	}

	return []Violation{{
		Type:        TypeMissingFileHeader,
		Severity:    config.SeverityMinor,
		Line:        1,
		Column:      1,
		Description: "File is missing a header comment",
	}}, nil
}

// NoCommentsChecker verifies the body of the file carries at least one
// comment beyond the header window.
type NoCommentsChecker struct {
	BaseChecker
}

// NewNoCommentsChecker creates the no-comments checker.
func NewNoCommentsChecker() *NoCommentsChecker {
	return &NoCommentsChecker{
		BaseChecker: NewBaseChecker(
			"CPP006",
			"no-comments",
			"Code beyond the file header should contain explanatory comments",
			config.SeverityCritical,
			[]string{"documentation"},
		),
	}
}

// Check scans lines after the header window. Files of ten lines or fewer
// have no body to inspect and are never flagged; an eleven-line file with no
// comment from line 11 onward yields one violation anchored at line 11.
func (c *NoCommentsChecker) Check(ctx *Context) ([]Violation, error) {
	if ctx.File.LineCount() <= headerWindow {
		return nil, nil
	}

	for n := headerWindow + 1; n <= ctx.File.LineCount(); n++ {
		if source.IsComment(ctx.File.Line(n)) {
			return nil, nil
		}
	}

	return []Violation{{
		Type:        TypeNoComments,
		Severity:    config.SeverityCritical,
		Line:        headerWindow + 1,
		Column:      1,
		Description: "No comments found beyond the file header",
	}}, nil
}
