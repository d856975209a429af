package metadoc

import (
	"cmp"
	"maps"
	"slices"
)

// Priority maps keys to display priorities. Higher priorities sort first;
// keys that are not listed have priority 0.
type Priority map[string]int

// Sort sorts keys alphabetically, then stably by descending priority, so
// keys of equal priority keep their alphabetical order.
func (p Priority) Sort(keys []string) {
	sortByPriority(keys, p)
}

// SortedKeys returns the keys of m in [Priority.Sort] order.
func SortedKeys[M ~map[K]V, K ~string, V any](m M, p Priority) []K {
	keys := slices.Collect(maps.Keys(m))
	sortByPriority(keys, p)

	return keys
}

func sortByPriority[K ~string](keys []K, p Priority) {
	slices.Sort(keys)
	slices.SortStableFunc(keys, func(a, b K) int {
		return cmp.Compare(p[string(b)], p[string(a)])
	})
}
