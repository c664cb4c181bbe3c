package genni

import (
	"cmp"
	"slices"
)

// Flatten concatenates per-worker result slices in slot order. Duplicates
// are kept: the same pair reached through two index paths is reported twice.
func Flatten[T any](parts [][]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// SortSolutions orders sols by x, then y, in place. The search never calls
// it; it exists for consumers that want stable output.
func SortSolutions(sols []Solution) {
	slices.SortFunc(sols, func(a, b Solution) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
}
