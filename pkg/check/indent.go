package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// spacesPerLevel is the assumed indent width when a file indents with spaces.
const spacesPerLevel = 4

// indentStyle is the locked indentation character of a file.
type indentStyle int

const (
	indentUnknown indentStyle = iota
	indentTabs
	indentSpaces
)

// detectIndentStyle classifies the file by the first leading-whitespace
// character observed on a non-blank line. The first classification locks the
// file's style.
func detectIndentStyle(file *source.File) indentStyle {
	for n := 1; n <= file.LineCount(); n++ {
		line := file.Line(n)
		if file.IsBlank(n) {
			continue
		}
		ws := source.LeadingWhitespace(line)
		if ws == "" {
			continue
		}
		if ws[0] == '\t' {
			return indentTabs
		}
		return indentSpaces
	}
	return indentUnknown
}

// indentLevel measures a line's nesting level under the given style.
// Tabs: leading-tab count. Spaces: leading-space count divided by four.
func indentLevel(line string, style indentStyle) int {
	ws := source.LeadingWhitespace(line)
	if style == indentTabs {
		return strings.Count(ws, "\t")
	}
	return strings.Count(ws, " ") / spacesPerLevel
}

// MixedIndentationChecker flags the first line whose indentation character
// disagrees with the file's locked style.
type MixedIndentationChecker struct {
	BaseChecker
}

// NewMixedIndentationChecker creates the mixed-indentation checker.
func NewMixedIndentationChecker() *MixedIndentationChecker {
	return &MixedIndentationChecker{
		BaseChecker: NewBaseChecker(
			"CPP001",
			"mixed-indentation",
			"Indentation must use either tabs or spaces consistently within a file",
			config.SeverityWarning,
			[]string{"formatting", "indentation"},
		),
	}
}

// Check locks the file's indent style on first use and reports at most one
// violation for the first line that uses the other character.
func (c *MixedIndentationChecker) Check(ctx *Context) ([]Violation, error) {
	style := indentUnknown

	for n := 1; n <= ctx.File.LineCount(); n++ {
		if ctx.File.IsBlank(n) {
			continue
		}
		ws := source.LeadingWhitespace(ctx.File.Line(n))
		if ws == "" {
			continue
		}

		lineStyle := indentSpaces
		if ws[0] == '\t' {
			lineStyle = indentTabs
		}

		if style == indentUnknown {
			style = lineStyle
			continue
		}

		if lineStyle != style {
			kind := "spaces"
			expected := "tabs"
			if lineStyle == indentTabs {
				kind, expected = "tabs", "spaces"
			}
			return []Violation{{
				Type:        TypeMixedIndentation,
				Severity:    config.SeverityWarning,
				Line:        n,
				Column:      1,
				Description: fmt.Sprintf("Line indented with %s but the file uses %s", kind, expected),
				Snippet:     ctx.File.Snippet(n),
			}}, nil
		}
	}

	return nil, nil
}

// caseLabelRe matches case and default labels inside switch bodies.
var caseLabelRe = regexp.MustCompile(`^(case\b|default\s*:)`)

// switchOpenRe matches a switch statement that opens its body on the same line.
var switchOpenRe = regexp.MustCompile(`^switch\b.*\{`)

// NestingIndentationChecker verifies that each line's indentation matches the
// brace nesting level it appears at.
type NestingIndentationChecker struct {
	BaseChecker
}

// NewNestingIndentationChecker creates the nesting-level indentation checker.
func NewNestingIndentationChecker() *NestingIndentationChecker {
	return &NestingIndentationChecker{
		BaseChecker: NewBaseChecker(
			"CPP002",
			"nesting-indentation",
			"Indentation depth must match the surrounding brace nesting level",
			config.SeverityWarning,
			[]string{"formatting", "indentation"},
		),
	}
}

// Check tracks a running expected nesting level from brace counts and flags
// lines whose actual indent disagrees. Comments, preprocessor directives,
// labels, and case/default lines are exempt; lines inside a switch body may
// sit one level deeper than expected.
func (c *NestingIndentationChecker) Check(ctx *Context) ([]Violation, error) {
	style := detectIndentStyle(ctx.File)
	if style == indentUnknown {
		// A file with no indented lines has nothing to verify.
		return nil, nil
	}

	var violations []Violation

	expected := 0
	inSwitch := false
	switchLevel := 0

	for n := 1; n <= ctx.File.LineCount(); n++ {
		line := ctx.File.Line(n)
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || source.IsComment(line) || source.IsPreprocessor(line) {
			continue
		}

		// Closing braces outdent before the line is compared.
		compare := expected
		if strings.HasPrefix(trimmed, "}") {
			compare--
		}
		if compare < 0 {
			compare = 0
		}

		exempt := strings.HasSuffix(trimmed, ":") || caseLabelRe.MatchString(trimmed)

		if !exempt {
			actual := indentLevel(line, style)
			ok := actual == compare
			// Statements under a case label sit one deeper.
			if inSwitch && actual == compare+1 {
				ok = true
			}
			if !ok {
				violations = append(violations, Violation{
					Type:     TypeImproperIndentation,
					Severity: config.SeverityWarning,
					Line:     n,
					Column:   1,
					Description: fmt.Sprintf(
						"Expected indentation level %d, found %d", compare, actual),
					Snippet: ctx.File.Snippet(n),
				})
			}
		}

		if switchOpenRe.MatchString(trimmed) {
			inSwitch = true
			switchLevel = expected
		}

		expected += strings.Count(line, "{") - strings.Count(line, "}")
		if expected < 0 {
			expected = 0
		}

		if inSwitch && expected <= switchLevel {
			inSwitch = false
		}
	}

	return violations, nil
}
