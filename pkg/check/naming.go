package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

var (
	// classDeclRe captures the name of a class declaration.
	classDeclRe = regexp.MustCompile(`\bclass\s+([A-Za-z_]\w*)`)

	// pascalCaseRe is the expected shape of a class name.
	pascalCaseRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

	// funcDeclRe captures a lowercase function name preceded by a return
	// type on the same line.
	funcDeclRe = regexp.MustCompile(`^[A-Za-z_][\w:<>,*&\s]*?\s[*&]*([a-z]\w*)\s*\(`)
)

// funcKeywords are identifiers that look like function heads but are not
// function declarations.
var funcKeywords = map[string]bool{
	"if":      true,
	"else":    true,
	"for":     true,
	"while":   true,
	"switch":  true,
	"return":  true,
	"sizeof":  true,
	"catch":   true,
	"new":     true,
	"delete":  true,
	"main":    true,
	"typedef": true,
	"using":   true,
}

// NamingChecker verifies class names are PascalCase and free function names
// are camelCase (no underscores).
type NamingChecker struct {
	BaseChecker
}

// NewNamingChecker creates the naming-convention checker.
func NewNamingChecker() *NamingChecker {
	return &NamingChecker{
		BaseChecker: NewBaseChecker(
			"CPP008",
			"naming-convention",
			"Classes use PascalCase and functions use camelCase",
			config.SeverityWarning,
			[]string{"naming"},
		),
	}
}

// Check scans declarations line by line. Function detection is textual: a
// lowercase identifier followed by a balanced parameter list and then "{" or
// ";" on a line that starts with a return type.
func (c *NamingChecker) Check(ctx *Context) ([]Violation, error) {
	var violations []Violation

	for n := 1; n <= ctx.File.LineCount(); n++ {
		line := ctx.File.Line(n)
		if source.IsComment(line) || source.IsPreprocessor(line) {
			continue
		}
		trimmed := strings.TrimSpace(line)

		if m := classDeclRe.FindStringSubmatch(trimmed); m != nil {
			if !pascalCaseRe.MatchString(m[1]) {
				violations = append(violations, Violation{
					Type:        TypeNamingConvention,
					Severity:    config.SeverityWarning,
					Line:        n,
					Description: fmt.Sprintf("Class name %q should be PascalCase", m[1]),
					Snippet:     ctx.File.Snippet(n),
				})
			}
			continue
		}

		if name, ok := functionName(trimmed); ok {
			if strings.Contains(name, "_") {
				violations = append(violations, Violation{
					Type:        TypeNamingConvention,
					Severity:    config.SeverityWarning,
					Line:        n,
					Description: fmt.Sprintf("Function name %q should be camelCase", name),
					Snippet:     ctx.File.Snippet(n),
				})
			}
		}
	}

	return violations, nil
}

// functionName extracts a declared function name from a line, or ok=false
// when the line does not look like a function declaration.
func functionName(trimmed string) (string, bool) {
	m := funcDeclRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	name := m[1]
	if funcKeywords[name] {
		return "", false
	}

	rest, balanced := afterCondition(trimmed)
	if !balanced {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest != "" && !strings.HasPrefix(rest, "{") && !strings.HasPrefix(rest, ";") {
		return "", false
	}

	return name, true
}
