package cli

import (
	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

// Exit codes for cppgrader.
const (
	// ExitSuccess indicates successful execution with no critical violations.
	ExitSuccess = 0

	// ExitViolations indicates grading completed but found critical violations.
	ExitViolations = 1

	// ExitWarnings indicates grading found warnings (when strict mode).
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	critical := result.Stats.ViolationsBySeverity[config.SeverityCritical]
	warnings := result.Stats.ViolationsBySeverity[config.SeverityWarning]

	if critical > 0 {
		return ExitViolations
	}

	if strict && warnings > 0 {
		return ExitWarnings
	}

	return ExitSuccess
}
