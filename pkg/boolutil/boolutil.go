// SPDX-License-Identifier: MPL-2.0

// Package boolutil provides small boolean helpers and a lenient parser for
// the boolean spellings commonly found in configuration and environment
// variables.
package boolutil

import "strings"

// Ternary returns yes when cond is true, otherwise no. Both branches are
// evaluated eagerly.
func Ternary[T any](cond bool, yes, no T) T {
	if cond {
		return yes
	}
	return no
}

// All reports whether every value is true. All() is true.
func All(values ...bool) bool {
	for _, v := range values {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether at least one value is true. Any() is false.
func Any(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}

// None reports whether every value is false.
func None(values ...bool) bool { return !Any(values...) }

// Xor reports whether exactly one of a and b is true.
func Xor(a, b bool) bool { return a != b }

// Implies reports the material implication a -> b.
func Implies(a, b bool) bool { return !a || b }

// ParseLenient parses the boolean spellings 1/0, t/f, true/false, yes/no,
// y/n, and on/off, case-insensitively and ignoring surrounding whitespace.
// The second result reports whether the input was recognized.
func ParseLenient(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, true
	case "0", "f", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
