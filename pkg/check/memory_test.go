package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestMemory_LeakReportedAtAllocation(t *testing.T) {
	t.Parallel()

	src := "int main() {\n    int* p = new int;\n    return 0;\n}\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeMemoryLeak, violations[0].Type)
	assert.Equal(t, config.SeverityCritical, violations[0].Severity)
	assert.Equal(t, 2, violations[0].Line)
	assert.Contains(t, violations[0].Description, `"p"`)
	assert.Contains(t, violations[0].Description, "never freed with delete")
}

func TestMemory_ArrayLeakNamesArrayForm(t *testing.T) {
	t.Parallel()

	src := "int* buf = new int[64];\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Description, "delete[]")
}

func TestMemory_MatchedDelete(t *testing.T) {
	t.Parallel()

	src := "int* p = new int;\ndelete p;\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	assert.Empty(t, violations)
}

func TestMemory_MatchedArrayDelete(t *testing.T) {
	t.Parallel()

	src := "int* buf = new int[8];\ndelete[] buf;\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	assert.Empty(t, violations)
}

func TestMemory_WrongDeleteType(t *testing.T) {
	t.Parallel()

	src := "int* buf = new int[8];\nint x = 0;\ndelete buf;\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeWrongDeleteType, violations[0].Type)
	assert.Equal(t, config.SeverityCritical, violations[0].Severity)
	assert.Equal(t, 3, violations[0].Line)
	assert.Contains(t, violations[0].Description, `"buf"`)
}

func TestMemory_ScalarFreedWithArrayDelete(t *testing.T) {
	t.Parallel()

	src := "int* p = new int;\ndelete[] p;\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeWrongDeleteType, violations[0].Type)
	assert.Equal(t, 2, violations[0].Line)
}

func TestMemory_CommentedCodeIgnored(t *testing.T) {
	t.Parallel()

	src := "// int* p = new int;\nint x = 0;\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	assert.Empty(t, violations)
}

func TestMemory_MultipleAllocations(t *testing.T) {
	t.Parallel()

	src := "int* a = new int;\nint* b = new int;\ndelete a;\n"
	violations := runChecker(t, check.NewMemoryChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].Line)
	assert.Contains(t, violations[0].Description, `"b"`)
}
