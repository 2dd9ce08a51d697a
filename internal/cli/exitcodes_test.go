package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/cppgrader/internal/cli"
	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

func resultWithSeverities(critical, warnings, minor int) *runner.Result {
	return &runner.Result{
		Stats: runner.Stats{
			ViolationsTotal: critical + warnings + minor,
			ViolationsBySeverity: map[config.Severity]int{
				config.SeverityCritical: critical,
				config.SeverityWarning:  warnings,
				config.SeverityMinor:    minor,
			},
		},
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, false, cli.ExitSuccess},
		{"clean", resultWithSeverities(0, 0, 0), false, cli.ExitSuccess},
		{"critical", resultWithSeverities(1, 0, 0), false, cli.ExitViolations},
		{"critical beats strict warnings", resultWithSeverities(1, 2, 0), true, cli.ExitViolations},
		{"warnings lax", resultWithSeverities(0, 3, 0), false, cli.ExitSuccess},
		{"warnings strict", resultWithSeverities(0, 3, 0), true, cli.ExitWarnings},
		{"minor only strict", resultWithSeverities(0, 0, 2), true, cli.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}
