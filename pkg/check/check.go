// Package check provides the deterministic violation-detection engine,
// checker registry, and the built-in battery of C++ style checks.
package check

import "github.com/yaklabco/cppgrader/pkg/config"

// Violation type tags produced by the built-in battery and dispatched checks.
const (
	TypeMixedIndentation    = "mixed_indentation"
	TypeImproperIndentation = "improper_indentation"
	TypeLineTooLong         = "line_too_long"
	TypeMissingBraces       = "missing_braces"
	TypeMissingFileHeader   = "missing_file_header"
	TypeNoComments          = "no_comments"
	TypeMemoryLeak          = "memory_leak"
	TypeWrongDeleteType     = "wrong_delete_type"
	TypeNamingConvention    = "naming_convention"
	TypeMagicNumber         = "magic_number"
	TypeUseNullptr          = "use_nullptr"
	TypeTabIndentation      = "tab_indentation"
	TypeTrailingWhitespace  = "trailing_whitespace"
	TypeBraceStyle          = "brace_style"
)

// Violation represents a single detected style issue. It is a value type:
// two violations are the same for dedup purposes when their (Line, Type)
// pairs match.
type Violation struct {
	// Type is the violation's tag (e.g., "memory_leak").
	Type string `json:"type"`

	// Severity is assigned once, at detection time, and never changes.
	Severity config.Severity `json:"severity"`

	// Line is the 1-based line number. Header and EOF sentinel violations
	// may point one past the last line.
	Line int `json:"line"`

	// Column is the 1-based column number, when known.
	Column int `json:"column,omitempty"`

	// Description is the human-readable explanation of the issue.
	Description string `json:"description"`

	// Reference optionally names the style-guide rule or section that the
	// violation traces back to.
	Reference string `json:"reference,omitempty"`

	// Snippet optionally carries the source text of the offending line.
	Snippet string `json:"snippet,omitempty"`
}

// Key identifies a violation for deduplication. Violations on the same line
// with the same type tag are treated as one finding, even when their
// descriptions differ.
type Key struct {
	Line int
	Type string
}

// Key returns the violation's dedup key.
func (v Violation) Key() Key {
	return Key{Line: v.Line, Type: v.Type}
}

// Checker defines the interface implemented by all built-in checks.
//
// Checkers must:
//   - Operate only on the immutable Context input.
//   - Return violations for each issue found.
//   - Return error only for internal failures, never for violations.
type Checker interface {
	// ID returns the unique identifier for this checker (e.g., "CPP001").
	ID() string

	// Name returns the human-readable name (e.g., "mixed-indentation").
	Name() string

	// Description returns a detailed description of what the checker does.
	Description() string

	// DefaultSeverity returns the severity assigned to this checker's
	// violations.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags (e.g., ["formatting"]).
	Tags() []string

	// Check executes the checker against the given context.
	Check(ctx *Context) ([]Violation, error)
}

// BaseChecker provides a default implementation of the Checker interface.
// Embed this in checker implementations and override methods as needed.
type BaseChecker struct {
	id       string
	name     string
	desc     string
	severity config.Severity
	tags     []string
}

// NewBaseChecker creates a BaseChecker with the given properties.
func NewBaseChecker(id, name, desc string, severity config.Severity, tags []string) BaseChecker {
	return BaseChecker{
		id:       id,
		name:     name,
		desc:     desc,
		severity: severity,
		tags:     tags,
	}
}

// ID returns the unique identifier for this checker.
func (c *BaseChecker) ID() string { return c.id }

// Name returns the human-readable name of the checker.
func (c *BaseChecker) Name() string { return c.name }

// Description returns a detailed description of what the checker does.
func (c *BaseChecker) Description() string { return c.desc }

// DefaultSeverity returns the severity assigned to this checker's violations.
func (c *BaseChecker) DefaultSeverity() config.Severity { return c.severity }

// Tags returns categorization tags for this checker.
func (c *BaseChecker) Tags() []string { return c.tags }

// Check must be overridden by concrete checker implementations.
func (c *BaseChecker) Check(_ *Context) ([]Violation, error) {
	return nil, nil
}
