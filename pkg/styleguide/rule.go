// Package styleguide parses free-text style guides into structured rules.
package styleguide

import (
	"fmt"
	"hash/fnv"

	"github.com/yaklabco/cppgrader/pkg/config"
)

// Rule is one style-guide requirement. Rules are immutable once parsed and
// owned by the Guide they belong to.
type Rule struct {
	// ID is a stable hash of (section, text). Identical rule text under the
	// same section always yields the same ID, so re-parsing is idempotent.
	ID string `json:"id"`

	// Text is the trimmed bullet text of the rule.
	Text string `json:"text"`

	// Severity comes from the nearest preceding section header.
	Severity config.Severity `json:"severity"`

	// Section is the name of the section the rule appeared under.
	Section string `json:"section"`
}

// Guide is a parsed style guide document.
type Guide struct {
	Name       string `json:"name"`
	Rules      []Rule `json:"rules"`
	RawContent string `json:"raw_content"`
}

// RulesBySeverity returns the guide's rules of the given severity, in
// document order.
func (g *Guide) RulesBySeverity(sev config.Severity) []Rule {
	var out []Rule
	for _, r := range g.Rules {
		if r.Severity == sev {
			out = append(out, r)
		}
	}
	return out
}

// RuleID computes the deterministic rule id for a (section, text) pair.
func RuleID(section, text string) string {
	h := fnv.New64a()
	// Write on fnv hashes never fails.
	_, _ = h.Write([]byte(section))
	_, _ = h.Write([]byte("::"))
	_, _ = h.Write([]byte(text))
	return fmt.Sprintf("%016x", h.Sum64())
}

func newRule(section, text string, sev config.Severity) Rule {
	return Rule{
		ID:       RuleID(section, text),
		Text:     text,
		Severity: sev,
		Section:  section,
	}
}
