package analyzer

import (
	"time"

	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// Analysis status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of analyzing a single file. It is built once per
// analysis call and never mutated afterwards; error results are rebuilt
// wholesale.
type Result struct {
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	Violations      []check.Violation `json:"violations"`
	TotalViolations int               `json:"total_violations"`

	BySeverity map[config.Severity]int `json:"violations_by_severity"`
	ByType     map[string]int          `json:"violations_by_type"`

	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// newSuccessResult assembles a success Result from merged violations.
func newSuccessResult(fileName, filePath string, violations []check.Violation) *Result {
	bySeverity, byType := Aggregate(violations)

	if violations == nil {
		violations = []check.Violation{}
	}

	return &Result{
		FileName:        fileName,
		FilePath:        filePath,
		Timestamp:       time.Now().UTC(),
		Violations:      violations,
		TotalViolations: len(violations),
		BySeverity:      bySeverity,
		ByType:          byType,
		Status:          StatusSuccess,
	}
}

// newErrorResult assembles an error Result carrying no violations.
func newErrorResult(fileName, filePath, message string) *Result {
	bySeverity, byType := Aggregate(nil)

	return &Result{
		FileName:        fileName,
		FilePath:        filePath,
		Timestamp:       time.Now().UTC(),
		Violations:      []check.Violation{},
		TotalViolations: 0,
		BySeverity:      bySeverity,
		ByType:          byType,
		Status:          StatusError,
		ErrorMessage:    message,
	}
}
