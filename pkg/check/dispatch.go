package check

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// defaultRuleLineLength is used when a line-length rule names no limit.
const defaultRuleLineLength = 100

// firstIntRe extracts the first integer literal from a rule's text.
var firstIntRe = regexp.MustCompile(`\d+`)

// BoundCheck is a checker function bound to a style-guide rule. Violations
// it produces carry the rule's severity.
type BoundCheck struct {
	// Name identifies the selected check (e.g., "no-tabs").
	Name string

	// Run executes the check with the rule's severity.
	Run func(file *source.File, sev config.Severity) []Violation
}

// dispatchEntry pairs a textual predicate with a binding constructor.
// Entries are evaluated in fixed order; the first match wins.
type dispatchEntry struct {
	matches func(text string) bool
	bind    func(text string) BoundCheck
}

// dispatchTable is the finite routing table from rule text to checkers.
//
//nolint:gochecknoglobals // Fixed routing table is intentional
var dispatchTable = []dispatchEntry{
	{
		matches: func(t string) bool {
			return strings.Contains(t, "tab") &&
				(strings.Contains(t, "indent") || strings.Contains(t, "tabs") ||
					strings.Contains(t, "no tab"))
		},
		bind: func(string) BoundCheck {
			return BoundCheck{Name: "no-tabs", Run: checkNoTabs}
		},
	},
	{
		matches: func(t string) bool {
			return strings.Contains(t, "trailing whitespace") ||
				strings.Contains(t, "trailing spaces")
		},
		bind: func(string) BoundCheck {
			return BoundCheck{Name: "trailing-whitespace", Run: checkTrailingWhitespace}
		},
	},
	{
		matches: func(t string) bool {
			return strings.Contains(t, "line length") ||
				strings.Contains(t, "max line length") ||
				strings.Contains(t, "maximum line length")
		},
		bind: func(t string) BoundCheck {
			limit := defaultRuleLineLength
			if m := firstIntRe.FindString(t); m != "" {
				if parsed, err := strconv.Atoi(m); err == nil && parsed > 0 {
					limit = parsed
				}
			}
			return BoundCheck{
				Name: "line-length",
				Run: func(file *source.File, sev config.Severity) []Violation {
					return checkLineLength(file, limit, sev)
				},
			}
		},
	},
	{
		matches: func(t string) bool {
			return (strings.Contains(t, "brace") || strings.Contains(t, "braces")) &&
				(strings.Contains(t, "same line") || strings.Contains(t, "k&r") ||
					strings.Contains(t, "opening brace"))
		},
		bind: func(string) BoundCheck {
			return BoundCheck{Name: "brace-same-line", Run: checkBraceOnSameLine}
		},
	},
	{
		matches: func(t string) bool {
			return strings.Contains(t, "file header") ||
				strings.Contains(t, "header comment") ||
				strings.Contains(t, "file comment")
		},
		bind: func(string) BoundCheck {
			return BoundCheck{Name: "file-header", Run: checkFileHeaderComment}
		},
	},
}

// Dispatch maps a rule's text to one of the fixed deterministic checks via
// keyword heuristics. A rule matching no entry is recorded but produces no
// automatic violations: the second result is false and the rule is skipped,
// which is intentional behavior, not an error.
func Dispatch(ruleText string) (BoundCheck, bool) {
	text := strings.ToLower(ruleText)

	for _, entry := range dispatchTable {
		if entry.matches(text) {
			return entry.bind(text), true
		}
	}

	return BoundCheck{}, false
}
