package check

import (
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// checkNoTabs is the dispatched no-tabs check: it flags every line indented
// with a tab character.
func checkNoTabs(file *source.File, sev config.Severity) []Violation {
	var violations []Violation

	for n := 1; n <= file.LineCount(); n++ {
		ws := source.LeadingWhitespace(file.Line(n))
		if !strings.Contains(ws, "\t") {
			continue
		}
		violations = append(violations, Violation{
			Type:        TypeTabIndentation,
			Severity:    sev,
			Line:        n,
			Column:      1,
			Description: "Line is indented with tabs",
			Snippet:     file.Snippet(n),
		})
	}

	return violations
}

// checkTrailingWhitespace is the dispatched trailing-whitespace check.
func checkTrailingWhitespace(file *source.File, sev config.Severity) []Violation {
	var violations []Violation

	for n := 1; n <= file.LineCount(); n++ {
		line := file.Line(n)
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line || trimmed == "" {
			continue
		}
		violations = append(violations, Violation{
			Type:        TypeTrailingWhitespace,
			Severity:    sev,
			Line:        n,
			Column:      len(trimmed) + 1,
			Description: "Line has trailing whitespace",
		})
	}

	return violations
}

// checkFileHeaderComment is the dispatched file-header check. It mirrors the
// built-in checker but carries the rule's severity.
func checkFileHeaderComment(file *source.File, sev config.Severity) []Violation {
	limit := min(headerWindow, file.LineCount())
	for n := 1; n <= limit; n++ {
		if source.IsComment(file.Line(n)) {
			return nil
		}
	}

	return []Violation{{
		Type:        TypeMissingFileHeader,
		Severity:    sev,
		Line:        1,
		Column:      1,
		Description: "File is missing a header comment",
	}}
}
