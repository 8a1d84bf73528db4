// util/pairs.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "iter"

// AdjacentPairs returns an iterator over successive overlapping pairs of
// the elements of s: (s[0], s[1]), (s[1], s[2]), and so forth. A slice
// with fewer than two elements yields nothing. The returned iterator may
// be ranged over multiple times; each range restarts from the first pair.
func AdjacentPairs[S ~[]E, E any](s S) iter.Seq2[E, E] {
	return func(yield func(E, E) bool) {
		for i := 0; i+1 < len(s); i++ {
			if !yield(s[i], s[i+1]) {
				return
			}
		}
	}
}
