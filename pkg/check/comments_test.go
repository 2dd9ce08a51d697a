package check_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestFileHeader_Missing(t *testing.T) {
	t.Parallel()

	src := "#include <iostream>\n\nint main() {\n    return 0;\n}\n"
	violations := runChecker(t, check.NewFileHeaderChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeMissingFileHeader, violations[0].Type)
	assert.Equal(t, config.SeverityMinor, violations[0].Severity)
	assert.Equal(t, 1, violations[0].Line)
}

func TestFileHeader_Present(t *testing.T) {
	t.Parallel()

	src := "// utils.cpp: string helpers\n#include <string>\n"
	violations := runChecker(t, check.NewFileHeaderChecker(), src, "")

	assert.Empty(t, violations)
}

func TestFileHeader_BlockCommentCounts(t *testing.T) {
	t.Parallel()

	src := "/*\n * main.cpp\n */\nint main() { return 0; }\n"
	violations := runChecker(t, check.NewFileHeaderChecker(), src, "")

	assert.Empty(t, violations)
}

func TestFileHeader_CommentBeyondWindowIgnored(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("int x;\n")
	}
	b.WriteString("// too late to be a header\n")

	violations := runChecker(t, check.NewFileHeaderChecker(), b.String(), "")

	require.Len(t, violations, 1)
	assert.Equal(t, 1, violations[0].Line)
}

func TestNoComments_ShortFileSkipped(t *testing.T) {
	t.Parallel()

	src := "int a;\nint b;\nint c;\n"
	violations := runChecker(t, check.NewNoCommentsChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNoComments_ExactlyTenLinesSkipped(t *testing.T) {
	t.Parallel()

	// No trailing newline, so ten source lines are ten physical lines.
	src := strings.TrimSuffix(strings.Repeat("int x;\n", 10), "\n")

	violations := runChecker(t, check.NewNoCommentsChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNoComments_ElevenLinesFire(t *testing.T) {
	t.Parallel()

	src := strings.TrimSuffix(strings.Repeat("int x;\n", 11), "\n")

	violations := runChecker(t, check.NewNoCommentsChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeNoComments, violations[0].Type)
	assert.Equal(t, 11, violations[0].Line)
}

func TestNoComments_TrailingNewlineCountsAsLine(t *testing.T) {
	t.Parallel()

	// Ten source lines ending in a newline split into eleven physical
	// lines, which is past the header window.
	src := strings.Repeat("int x;\n", 10)

	violations := runChecker(t, check.NewNoCommentsChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, 11, violations[0].Line)
}

func TestNoComments_LongFileWithoutComments(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("int x;\n")
	}

	violations := runChecker(t, check.NewNoCommentsChecker(), b.String(), "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeNoComments, violations[0].Type)
	assert.Equal(t, config.SeverityCritical, violations[0].Severity)
	assert.Equal(t, 11, violations[0].Line)
}

func TestNoComments_CommentInBodyClears(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("int x;\n")
	}
	b.WriteString("// accumulate totals\n")
	b.WriteString("int y;\n")

	violations := runChecker(t, check.NewNoCommentsChecker(), b.String(), "")

	assert.Empty(t, violations)
}

func TestNoComments_HeaderCommentDoesNotClear(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("// header comment\n")
	for i := 0; i < 14; i++ {
		b.WriteString("int x;\n")
	}

	violations := runChecker(t, check.NewNoCommentsChecker(), b.String(), "")

	require.Len(t, violations, 1)
	assert.Equal(t, 11, violations[0].Line)
}
