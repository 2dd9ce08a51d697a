package styleguide

import (
	"regexp"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
)

// defaultSection is the section name used for bullets that appear before any
// section header.
const defaultSection = "GENERAL"

var (
	// sectionRe matches bare uppercase section header lines, e.g.
	// "CRITICAL", "NAMING RULES", "WARNING - FORMATTING".
	sectionRe = regexp.MustCompile(`^[A-Z][A-Z0-9 _-]{2,}$`)

	// bulletRe matches "-" or "*" bulleted rule lines and captures the
	// rule text.
	bulletRe = regexp.MustCompile(`^[-*]\s*(\S.*)$`)
)

// Parse converts plain-text style guide content into a Guide.
//
// Section headers are bare uppercase lines; bullets beneath a header become
// rules carrying the severity implied by the header. Non-bullet, non-header
// lines are ignored. An empty guide yields zero rules without error.
func Parse(name, content string) *Guide {
	guide := &Guide{
		Name:       name,
		RawContent: content,
	}

	section := defaultSection
	severity := config.DefaultSeverity

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if sectionRe.MatchString(line) {
			section = line
			severity = sectionSeverity(line)
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[1])
			if text != "" {
				guide.Rules = append(guide.Rules, newRule(section, text, severity))
			}
		}
	}

	return guide
}

// sectionSeverity derives a severity from a section header. A header that
// contains CRITICAL, WARNING, or MINOR (case-insensitive) takes that
// severity; anything else defaults to config.DefaultSeverity.
func sectionSeverity(header string) config.Severity {
	upper := strings.ToUpper(header)
	switch {
	case strings.Contains(upper, string(config.SeverityCritical)):
		return config.SeverityCritical
	case strings.Contains(upper, string(config.SeverityWarning)):
		return config.SeverityWarning
	case strings.Contains(upper, string(config.SeverityMinor)):
		return config.SeverityMinor
	default:
		return config.DefaultSeverity
	}
}
