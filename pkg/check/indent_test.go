package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestMixedIndentation_ConsistentTabs(t *testing.T) {
	t.Parallel()

	src := "int main() {\n\tint x = 1;\n\treturn x;\n}\n"
	violations := runChecker(t, check.NewMixedIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestMixedIndentation_ConsistentSpaces(t *testing.T) {
	t.Parallel()

	src := "int main() {\n    int x = 1;\n    return x;\n}\n"
	violations := runChecker(t, check.NewMixedIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestMixedIndentation_FirstStyleLocks(t *testing.T) {
	t.Parallel()

	// Spaces lock the style on line 2; the tab on line 3 is the violation.
	src := "int main() {\n    int x = 1;\n\tint y = 2;\n    int z = 3;\n\tint w = 4;\n}\n"
	violations := runChecker(t, check.NewMixedIndentationChecker(), src, "")

	require.Len(t, violations, 1) // only the first offender is reported
	assert.Equal(t, check.TypeMixedIndentation, violations[0].Type)
	assert.Equal(t, 3, violations[0].Line)
	assert.Equal(t, config.SeverityWarning, violations[0].Severity)
}

func TestMixedIndentation_TabsLockFirst(t *testing.T) {
	t.Parallel()

	src := "int main() {\n\tint x = 1;\n    int y = 2;\n}\n"
	violations := runChecker(t, check.NewMixedIndentationChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, 3, violations[0].Line)
}

func TestMixedIndentation_NoIndentedLines(t *testing.T) {
	t.Parallel()

	src := "int x;\nint y;\n"
	violations := runChecker(t, check.NewMixedIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNestingIndentation_CorrectFile(t *testing.T) {
	t.Parallel()

	src := `int main() {
    if (true) {
        doThing();
    }
    return 0;
}
`
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNestingIndentation_OverIndented(t *testing.T) {
	t.Parallel()

	src := "int main() {\n        int x = 1;\n}\n"
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	require.Len(t, violations, 1)
	assert.Equal(t, check.TypeImproperIndentation, violations[0].Type)
	assert.Equal(t, 2, violations[0].Line)
}

func TestNestingIndentation_ClosingBraceOutdents(t *testing.T) {
	t.Parallel()

	// The closing brace sits at the outer level; it must not be flagged.
	src := "int main() {\n    int x = 1;\n}\n"
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNestingIndentation_SwitchCaseOneDeeper(t *testing.T) {
	t.Parallel()

	src := `int main() {
    switch (x) {
    case 1:
        doThing();
        break;
    default:
        break;
    }
}
`
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNestingIndentation_ExemptLines(t *testing.T) {
	t.Parallel()

	// Comments and preprocessor lines are never measured.
	src := "int main() {\n// flush-left comment\n#define X 1\n    int x = 1;\n}\n"
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNestingIndentation_TabStyle(t *testing.T) {
	t.Parallel()

	src := "int main() {\n\tif (x) {\n\t\tdoThing();\n\t}\n}\n"
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	assert.Empty(t, violations)
}

func TestNestingIndentation_FlatFileSkipped(t *testing.T) {
	t.Parallel()

	// No indented line anywhere: style is unknowable, nothing to verify.
	src := "int x;\nint y;\n"
	violations := runChecker(t, check.NewNestingIndentationChecker(), src, "")

	assert.Empty(t, violations)
}
