package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// FormatViolation formats a single violation for terminal output.
func (s *Styles) FormatViolation(path string, v *check.Violation, showContext bool) string {
	var builder strings.Builder

	// Location: path:line or path:line:col when the column is known.
	location := s.FilePath.Render(path) + fmt.Sprintf(":%d", v.Line)
	if v.Column > 0 {
		location += fmt.Sprintf(":%d", v.Column)
	}

	severity := s.FormatSeverity(v.Severity)
	typeTag := s.TypeTag.Render("(" + v.Type + ")")

	// Main line: location  severity  description  (type)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(v.Description),
		typeTag,
	))

	if showContext && v.Snippet != "" {
		builder.WriteString(s.FormatSourceContext(v.Snippet, v.Column))
	}

	if v.Reference != "" {
		builder.WriteString("    " + s.Dim.Render("Rule:") + " " +
			s.Reference.Render(v.Reference) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityCritical:
		return s.Critical.Render("critical")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityMinor:
		return s.Minor.Render("minor")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker. The
// column is 1-indexed against the line; the caret padding mirrors the
// line's own prefix so tab indentation stays aligned.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with violation output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		builder.WriteString(indent + caretPadding(line, column) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// caretPadding returns whitespace positioning a caret under the column,
// preserving tabs from the line so the caret lands on the same screen cell.
func caretPadding(line string, column int) string {
	padding := []byte(line[:column-1])
	for i, b := range padding {
		if b != '\t' {
			padding[i] = ' '
		}
	}
	return string(padding)
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
