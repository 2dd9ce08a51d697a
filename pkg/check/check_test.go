package check_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/source"
)

// runChecker executes a single checker against inline source content.
func runChecker(t *testing.T, c check.Checker, content, guideText string) []check.Violation {
	t.Helper()

	file := source.New("test.cpp", "", content)
	ctx := check.NewContext(context.Background(), file, guideText)

	violations, err := c.Check(ctx)
	require.NoError(t, err)
	return violations
}
