package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// numberLiteralRe matches integer and floating-point literals.
var numberLiteralRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

// loopHeadRe matches lines that open a for or while statement; numeric
// literals inside their conditions are conventional and exempt.
var loopHeadRe = regexp.MustCompile(`^(for|while)\b`)

// guideMentions are the style-guide phrases that activate the magic-number
// check. The check only runs when the uploaded guide asks for it.
var guideMentions = []string{"magic number", "const", "named constant"}

// MagicNumberChecker flags unnamed numeric literals when the style guide
// calls for named constants.
type MagicNumberChecker struct {
	BaseChecker
}

// NewMagicNumberChecker creates the magic-number checker.
func NewMagicNumberChecker() *MagicNumberChecker {
	return &MagicNumberChecker{
		BaseChecker: NewBaseChecker(
			"CPP009",
			"magic-numbers",
			"Numeric literals other than 0 and 1 should be named constants",
			config.SeverityWarning,
			[]string{"constants"},
		),
	}
}

// Check reports at most one magic number per line. Literals 0 and 1, loop
// conditions, and array indices are exempt.
func (c *MagicNumberChecker) Check(ctx *Context) ([]Violation, error) {
	if !guideWantsMagicNumbers(ctx.GuideText) {
		return nil, nil
	}

	var violations []Violation

	for n := 1; n <= ctx.File.LineCount(); n++ {
		line := ctx.File.Line(n)
		if source.IsComment(line) || source.IsPreprocessor(line) {
			continue
		}
		if loopHeadRe.MatchString(strings.TrimSpace(line)) {
			continue
		}

		for _, loc := range numberLiteralRe.FindAllStringIndex(line, -1) {
			literal := line[loc[0]:loc[1]]
			if literal == "0" || literal == "1" {
				continue
			}
			if isArrayIndex(line, loc[0], loc[1]) {
				continue
			}

			violations = append(violations, Violation{
				Type:        TypeMagicNumber,
				Severity:    config.SeverityWarning,
				Line:        n,
				Column:      loc[0] + 1,
				Description: fmt.Sprintf("Magic number %s should be a named constant", literal),
				Snippet:     ctx.File.Snippet(n),
			})
			break
		}
	}

	return violations, nil
}

// guideWantsMagicNumbers reports whether the style-guide text activates this
// check.
func guideWantsMagicNumbers(guideText string) bool {
	lower := strings.ToLower(guideText)
	for _, phrase := range guideMentions {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// isArrayIndex reports whether the literal at [start, end) is enclosed in
// brackets, i.e. used as an array index.
func isArrayIndex(line string, start, end int) bool {
	i := start - 1
	for i >= 0 && (line[i] == ' ' || line[i] == '\t') {
		i--
	}
	if i < 0 || line[i] != '[' {
		return false
	}

	j := end
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	return j < len(line) && line[j] == ']'
}
