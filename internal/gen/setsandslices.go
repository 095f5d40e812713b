//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"cmp"
	"slices"
	"sort"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{}, len(sl))
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// StringMapKeysIntoSlice - convert map[string]T to []string
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	sl := make([]string, len(mp))
	i := 0
	for k := range mp {
		sl[i] = k
		i += 1
	}
	return sl
}

// SortedKeys - StringMapKeysIntoSlice in lexical order
func SortedKeys[T any](mp map[string]T) []string {
	sl := StringMapKeysIntoSlice(mp)
	sort.Strings(sl)
	return sl
}

// FirstN - the first n items of a slice; all of them if there are fewer than n
func FirstN[T any](sl []T, n int) []T {
	if n < 0 || n >= len(sl) {
		return sl
	}
	return sl[:n]
}

// TopNIndices - indices of the n largest values, largest first; equal values keep their index order
func TopNIndices[T cmp.Ordered](vals []T, n int) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(vals[b], vals[a])
	})
	return FirstN(idx, n)
}
