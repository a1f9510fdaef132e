// SPDX-License-Identifier: MPL-2.0

// Package sliceutil provides generic slice transformations. Helpers that
// already exist in golang.org/x/exp/slices (Contains, Index, Clone, ...)
// are deliberately not duplicated here.
package sliceutil

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Map transforms every element of in with fn.
func Map[T, U any](in []T, fn func(T) U) []U {
	if in == nil {
		return nil
	}
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of in for which keep returns true.
func Filter[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds in into a single value, starting from init.
func Reduce[T, A any](in []T, init A, fn func(A, T) A) A {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Uniq returns in with duplicates removed, keeping first occurrences in order.
func Uniq[T comparable](in []T) []T {
	return UniqBy(in, func(v T) T { return v })
}

// UniqBy returns in with key-duplicates removed, keeping first occurrences
// in order.
func UniqBy[T any, K comparable](in []T, key func(T) K) []T {
	if in == nil {
		return nil
	}
	seen := make(map[K]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Chunk splits in into consecutive slices of at most size elements.
// It panics when size is not positive. The chunks share in's backing array.
func Chunk[T any](in []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil: chunk size must be positive")
	}
	if len(in) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(in)+size-1)/size)
	for size < len(in) {
		out = append(out, in[:size:size])
		in = in[size:]
	}
	return append(out, in)
}

// Partition splits in into the elements satisfying pred and the rest,
// preserving order within both halves.
func Partition[T any](in []T, pred func(T) bool) (yes, no []T) {
	for _, v := range in {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}
	return yes, no
}

// GroupBy buckets the elements of in by key, preserving order within
// each bucket.
func GroupBy[T any, K comparable](in []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range in {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// First returns the first element, comma-ok.
func First[T any](in []T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	return in[0], true
}

// Last returns the last element, comma-ok.
func Last[T any](in []T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	return in[len(in)-1], true
}

// Flatten concatenates the inner slices in order.
func Flatten[T any](in [][]T) []T {
	var n int
	for _, inner := range in {
		n += len(inner)
	}
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for _, inner := range in {
		out = append(out, inner...)
	}
	return out
}

// Reverse returns a reversed copy of in.
func Reverse[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// SortedBy returns a copy of in stably sorted by key.
func SortedBy[T any, K cmp.Ordered](in []T, key func(T) K) []T {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// Without returns in with every occurrence of the given values removed.
func Without[T comparable](in []T, values ...T) []T {
	drop := make(map[T]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}
	return Filter(in, func(v T) bool {
		_, found := drop[v]
		return !found
	})
}
