package runner

import (
	"github.com/yaklabco/cppgrader/pkg/analyzer"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// FileOutcome wraps an analysis result with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was analyzed.
	Path string

	// Result contains the analysis result for this file.
	// May be nil if the file could not be read at all.
	Result *analyzer.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully analyzed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one violation.
	FilesWithIssues int

	// ViolationsTotal is the total number of violations across all files.
	ViolationsTotal int

	// ViolationsBySeverity maps severity levels to counts.
	ViolationsBySeverity map[config.Severity]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each analyzed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any critical violations occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsBySeverity[config.SeverityCritical] > 0
}

// HasIssues reports whether any violations were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	bySeverity := make(map[config.Severity]int, len(config.AllSeverities()))
	for _, sev := range config.AllSeverities() {
		bySeverity[sev] = 0
	}
	return Stats{ViolationsBySeverity: bySeverity}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	if outcome.Result.Status == analyzer.StatusError {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.ViolationsTotal += outcome.Result.TotalViolations

	if outcome.Result.TotalViolations > 0 {
		r.Stats.FilesWithIssues++
	}

	for sev, count := range outcome.Result.BySeverity {
		r.Stats.ViolationsBySeverity[sev] += count
	}
}
