package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 violations (8 critical, 4 warnings) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ViolationsTotal == 0 {
		return s.Success.Render("No violations found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	var parts []string

	violationWord := "violations"
	if stats.ViolationsTotal == 1 {
		violationWord = "violation"
	}

	// Build severity breakdown
	var severityParts []string
	if critical := stats.ViolationsBySeverity[config.SeverityCritical]; critical > 0 {
		severityParts = append(severityParts, s.Critical.Render(fmt.Sprintf("%d critical", critical)))
	}
	if warnings := stats.ViolationsBySeverity[config.SeverityWarning]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if minor := stats.ViolationsBySeverity[config.SeverityMinor]; minor > 0 {
		severityParts = append(severityParts, s.Minor.Render(fmt.Sprintf("%d minor", minor)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.ViolationsTotal, violationWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.ViolationsTotal, violationWord))
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	// Violations by severity
	builder.WriteString("  Total violations:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.ViolationsTotal)) + "\n")

	if critical := stats.ViolationsBySeverity[config.SeverityCritical]; critical > 0 {
		builder.WriteString("    Critical:        " +
			s.Critical.Render(strconv.Itoa(critical)) + "\n")
	}
	if warnings := stats.ViolationsBySeverity[config.SeverityWarning]; warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if minor := stats.ViolationsBySeverity[config.SeverityMinor]; minor > 0 {
		builder.WriteString("    Minor:           " +
			s.Minor.Render(strconv.Itoa(minor)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.ViolationsBySeverity[config.SeverityCritical] > 0:
		builder.WriteString(s.Failure.Render("Grading failed with critical violations"))
	case stats.ViolationsBySeverity[config.SeverityWarning] > 0:
		builder.WriteString(s.Warning.Render("Grading completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Grading passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
