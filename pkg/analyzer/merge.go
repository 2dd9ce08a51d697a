package analyzer

import "github.com/yaklabco/cppgrader/pkg/check"

// Merge concatenates violation lists in the given phase order and
// deduplicates them by (line, type): the first occurrence under a key is
// kept and later ones dropped, regardless of which source produced them.
//
// The result preserves concatenation order; violations are deliberately not
// re-sorted by line number. Merge is idempotent: merging an already
// deduplicated list with itself yields the same list.
func Merge(lists ...[]check.Violation) []check.Violation {
	seen := make(map[check.Key]bool)
	var merged []check.Violation

	for _, list := range lists {
		for _, v := range list {
			key := v.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, v)
		}
	}

	return merged
}
