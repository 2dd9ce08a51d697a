package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/cppgrader/internal/ui/pretty"
	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

func statsWith(critical, warnings, minor, files int) runner.Stats {
	return runner.Stats{
		FilesProcessed:  files,
		FilesWithIssues: files,
		ViolationsTotal: critical + warnings + minor,
		ViolationsBySeverity: map[config.Severity]int{
			config.SeverityCritical: critical,
			config.SeverityWarning:  warnings,
			config.SeverityMinor:    minor,
		},
	}
}

func TestFormatSummaryOneLine_Clean(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	stats := statsWith(0, 0, 0, 4)
	stats.FilesWithIssues = 0

	out := styles.FormatSummaryOneLine(stats)
	assert.Contains(t, out, "No violations found")
	assert.Contains(t, out, "(4 files checked)")
}

func TestFormatSummaryOneLine_Breakdown(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSummaryOneLine(statsWith(2, 3, 1, 2))

	assert.Contains(t, out, "6 violations")
	assert.Contains(t, out, "2 critical")
	assert.Contains(t, out, "3 warnings")
	assert.Contains(t, out, "1 minor")
	assert.Contains(t, out, "in 2 files")
}

func TestFormatSummaryOneLine_Singulars(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSummaryOneLine(statsWith(0, 1, 0, 1))

	assert.Contains(t, out, "1 violation (")
	assert.Contains(t, out, "in 1 file")
}

func TestFormatSummary_FailedStatus(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSummary(statsWith(1, 0, 0, 1))

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files checked:")
	assert.Contains(t, out, "Total violations:")
	assert.Contains(t, out, "Critical:")
	assert.Contains(t, out, "Grading failed with critical violations")
}

func TestFormatSummary_WarningStatus(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSummary(statsWith(0, 2, 0, 1))

	assert.Contains(t, out, "Grading completed with warnings")
	assert.NotContains(t, out, "Critical:")
}

func TestFormatSummary_PassedStatus(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	stats := statsWith(0, 0, 0, 2)
	stats.FilesWithIssues = 0

	out := styles.FormatSummary(stats)
	assert.Contains(t, out, "Grading passed")
	assert.NotContains(t, out, "Files with issues:")
}
