package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/pkg/analyzer"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestMerge_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	builtin := []check.Violation{
		{Type: "line_too_long", Line: 5, Severity: config.SeverityMinor, Description: "from battery"},
	}
	semantic := []check.Violation{
		{Type: "line_too_long", Line: 5, Severity: config.SeverityCritical, Description: "from model"},
	}

	merged := analyzer.Merge(builtin, semantic)

	require.Len(t, merged, 1)
	assert.Equal(t, "from battery", merged[0].Description)
	assert.Equal(t, config.SeverityMinor, merged[0].Severity)
}

func TestMerge_DistinctKeysKept(t *testing.T) {
	t.Parallel()

	a := []check.Violation{{Type: "memory_leak", Line: 3}}
	b := []check.Violation{
		{Type: "memory_leak", Line: 4},
		{Type: "use_nullptr", Line: 3},
	}

	merged := analyzer.Merge(a, b)
	assert.Len(t, merged, 3)
}

func TestMerge_PreservesConcatenationOrder(t *testing.T) {
	t.Parallel()

	a := []check.Violation{{Type: "b", Line: 9}, {Type: "a", Line: 2}}
	b := []check.Violation{{Type: "c", Line: 1}}

	merged := analyzer.Merge(a, b)

	require.Len(t, merged, 3)
	assert.Equal(t, 9, merged[0].Line)
	assert.Equal(t, 2, merged[1].Line)
	assert.Equal(t, 1, merged[2].Line, "merge never re-sorts by line")
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	list := []check.Violation{
		{Type: "a", Line: 1},
		{Type: "b", Line: 2},
	}

	once := analyzer.Merge(list)
	twice := analyzer.Merge(once, once)
	assert.Equal(t, once, twice)
}

func TestMerge_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, analyzer.Merge())
	assert.Empty(t, analyzer.Merge(nil, nil))
}
