package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/internal/ui/pretty"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestFormatViolation_Basic(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	v := &check.Violation{
		Type:        check.TypeMemoryLeak,
		Severity:    config.SeverityCritical,
		Line:        12,
		Description: `Variable "p" is allocated with new but never freed with delete`,
	}

	out := styles.FormatViolation("main.cpp", v, false)

	assert.Contains(t, out, "main.cpp:12")
	assert.Contains(t, out, "critical")
	assert.Contains(t, out, "never freed")
	assert.Contains(t, out, "(memory_leak)")
}

func TestFormatViolation_ColumnInLocation(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	v := &check.Violation{
		Type:     check.TypeUseNullptr,
		Severity: config.SeverityWarning,
		Line:     3,
		Column:   10,
	}

	out := styles.FormatViolation("main.cpp", v, false)
	assert.Contains(t, out, "main.cpp:3:10")
}

func TestFormatViolation_ContextAndCaret(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	v := &check.Violation{
		Type:     check.TypeUseNullptr,
		Severity: config.SeverityWarning,
		Line:     1,
		Column:   10,
		Snippet:  "int* p = NULL;",
	}

	withContext := styles.FormatViolation("main.cpp", v, true)
	assert.Contains(t, withContext, "int* p = NULL;")
	assert.Contains(t, withContext, "^")

	withoutContext := styles.FormatViolation("main.cpp", v, false)
	assert.NotContains(t, withoutContext, "int* p = NULL;")
}

func TestFormatSourceContext_CaretUnderIndentedColumn(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	snippet := "    int* p = NULL;"
	column := strings.Index(snippet, "NULL") + 1

	out := styles.FormatSourceContext(snippet, column)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	assert.Equal(t, strings.Index(lines[0], "NULL"), strings.Index(lines[1], "^"))
}

func TestFormatSourceContext_TabIndentKeepsTabs(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	snippet := "\tint* p = NULL;"
	column := strings.Index(snippet, "NULL") + 1

	out := styles.FormatSourceContext(snippet, column)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	caretLine := lines[1]
	assert.Contains(t, caretLine, "\t", "padding keeps the line's tabs")
	assert.Equal(t, strings.Index(lines[0], "NULL"), strings.Index(caretLine, "^"))
}

func TestFormatSourceContext_ColumnPastLineOmitsCaret(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	out := styles.FormatSourceContext("int x;", 40)
	assert.NotContains(t, out, "^")
}

func TestFormatViolation_Reference(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	v := &check.Violation{
		Type:      check.TypeTrailingWhitespace,
		Severity:  config.SeverityMinor,
		Line:      2,
		Reference: "FORMATTING RULES",
	}

	out := styles.FormatViolation("main.cpp", v, false)
	assert.Contains(t, out, "Rule:")
	assert.Contains(t, out, "FORMATTING RULES")
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "main.cpp (3 issues)", styles.FormatFileHeader("main.cpp", 3))
	assert.Equal(t, "clean.cpp", styles.FormatFileHeader("clean.cpp", 0))
}
