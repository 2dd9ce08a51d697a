package analyzer

import (
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// Aggregate computes per-severity and per-type counts for a violation list.
//
// The severity map is pre-seeded with all three severities at zero, so
// absent severities report 0 rather than a missing key. The type map is
// sparse: only observed types appear.
func Aggregate(violations []check.Violation) (map[config.Severity]int, map[string]int) {
	bySeverity := make(map[config.Severity]int, 3)
	for _, sev := range config.AllSeverities() {
		bySeverity[sev] = 0
	}

	byType := make(map[string]int)

	for _, v := range violations {
		sev := v.Severity
		if !sev.IsValid() {
			// Keeps the severity map to exactly the three known keys.
			sev = config.DefaultSeverity
		}
		bySeverity[sev]++
		byType[v.Type]++
	}

	return bySeverity, byType
}
