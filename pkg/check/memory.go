package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/source"
)

var (
	// allocRe captures "var = new ..." occurrences. The remainder is used
	// to detect the array form ("new T[...]").
	allocRe = regexp.MustCompile(`([A-Za-z_]\w*)\s*=\s*new\b([^;]*)`)

	// deleteRe captures "delete var" and "delete[] var" occurrences.
	deleteRe = regexp.MustCompile(`\bdelete\s*(\[\s*\])?\s*([A-Za-z_]\w*)`)
)

// allocation is one "var = new ..." site.
type allocation struct {
	name  string
	line  int
	array bool
}

// deletion is one "delete var" or "delete[] var" site.
type deletion struct {
	line  int
	array bool
}

// MemoryChecker pairs new allocations with delete statements by variable
// name. This is a textual heuristic, not a reachability analysis: reused
// variable names and conditional paths can produce false positives and
// negatives, which is accepted behavior.
type MemoryChecker struct {
	BaseChecker
}

// NewMemoryChecker creates the new/delete matching checker.
func NewMemoryChecker() *MemoryChecker {
	return &MemoryChecker{
		BaseChecker: NewBaseChecker(
			"CPP007",
			"memory-management",
			"Every new must have a matching delete of the same form",
			config.SeverityCritical,
			[]string{"memory"},
		),
	}
}

// Check collects allocations and deletions across the whole file, then flags
// allocations with no delete (memory_leak) and deletes whose array form
// disagrees with the allocation (wrong_delete_type).
func (c *MemoryChecker) Check(ctx *Context) ([]Violation, error) {
	var allocs []allocation
	deletes := make(map[string][]deletion)

	for n := 1; n <= ctx.File.LineCount(); n++ {
		line := ctx.File.Line(n)
		if source.IsComment(line) || source.IsPreprocessor(line) {
			continue
		}

		for _, m := range allocRe.FindAllStringSubmatch(line, -1) {
			allocs = append(allocs, allocation{
				name:  m[1],
				line:  n,
				array: strings.Contains(m[2], "["),
			})
		}

		for _, m := range deleteRe.FindAllStringSubmatch(line, -1) {
			name := m[2]
			deletes[name] = append(deletes[name], deletion{
				line:  n,
				array: m[1] != "",
			})
		}
	}

	var violations []Violation

	for _, alloc := range allocs {
		matched := deletes[alloc.name]
		if len(matched) == 0 {
			form := "delete"
			if alloc.array {
				form = "delete[]"
			}
			violations = append(violations, Violation{
				Type:     TypeMemoryLeak,
				Severity: config.SeverityCritical,
				Line:     alloc.line,
				Description: fmt.Sprintf(
					"Variable %q is allocated with new but never freed with %s", alloc.name, form),
				Snippet: ctx.File.Snippet(alloc.line),
			})
			continue
		}

		sameForm := false
		for _, d := range matched {
			if d.array == alloc.array {
				sameForm = true
				break
			}
		}
		if !sameForm {
			got, want := "delete", "delete[]"
			if !alloc.array {
				got, want = "delete[]", "delete"
			}
			violations = append(violations, Violation{
				Type:     TypeWrongDeleteType,
				Severity: config.SeverityCritical,
				Line:     matched[0].line,
				Description: fmt.Sprintf(
					"Variable %q is freed with %s but was allocated for %s", alloc.name, got, want),
				Snippet: ctx.File.Snippet(matched[0].line),
			})
		}
	}

	return violations, nil
}
