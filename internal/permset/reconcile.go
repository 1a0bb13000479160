package permset

import (
	"sort"
	"strings"
)

// ExtractAll runs Extract over each line of text and returns the distinct
// names in first-seen order. Dedup compares exact strings.
func ExtractAll(text string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		name, ok := Extract(line)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ToSet returns the extracted names as a membership set.
func ToSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range ExtractAll(text) {
		set[name] = struct{}{}
	}
	return set
}

// Normalize is ExtractAll rendered back to text, one name per line.
// Re-normalizing is a no-op except for names that still carry a glued
// delimiter (a comma kept by a higher-priority split), which settle on the
// next pass.
func Normalize(text string) string {
	return strings.Join(ExtractAll(text), "\n")
}

// Diff returns the names the mirror text contains that the user text does
// not, sorted case-insensitively. Membership is exact-string, so names
// differing only by case count as missing; the sort is stable so such pairs
// keep their extraction order.
func Diff(userText, mirrorText string) []string {
	userSet := ToSet(userText)

	var missing []string
	for _, name := range ExtractAll(mirrorText) {
		if _, ok := userSet[name]; !ok {
			missing = append(missing, name)
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return strings.ToLower(missing[i]) < strings.ToLower(missing[j])
	})
	return missing
}
