// SPDX-License-Identifier: MPL-2.0

// Package maputil provides generic map helpers, including shallow and deep
// merging of nested string-keyed maps.
package maputil

import (
	"cmp"
	"fmt"

	"dario.cat/mergo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	return maps.Keys(m)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	return maps.Values(m)
}

// Invert swaps keys and values. When several keys share a value, the
// surviving key is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Pick returns the subset of m containing only the given keys.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// MapValues transforms every value of m with fn, keeping keys.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// Merge shallow-merges the given maps left to right: later maps win on
// key conflicts. The inputs are not mutated.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// DeepMerge merges overlay into a copy of base, recursing into nested
// map[string]any values. Overlay values win on conflicts; neither input
// is mutated.
func DeepMerge(base, overlay map[string]any) (map[string]any, error) {
	out := cloneNested(base)
	if err := mergo.Merge(&out, overlay, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("deep merge failed: %w", err)
	}
	return out, nil
}

// cloneNested copies m, recursing into nested map[string]any values so the
// merge cannot write through shared references into the original.
func cloneNested(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneNested(nested)
			continue
		}
		out[k] = v
	}
	return out
}
