// SPDX-License-Identifier: MPL-2.0

// Package mathutil provides generic numeric helpers that the standard math
// package only offers for float64.
package mathutil

import (
	"cmp"
	"math"
)

// Number covers the built-in integer and float kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp limits v to the closed interval [lo, hi]. It panics when lo > hi.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if lo > hi {
		panic("mathutil: clamp interval is inverted")
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t, where t is typically
// in [0, 1]. Values of t outside the interval extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// ApproxEqual reports whether a and b differ by at most epsilon.
func ApproxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// GCD returns the greatest common divisor of a and b (non-negative).
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or zero when either
// is zero.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// Sum adds the elements of in.
func Sum[T Number](in []T) T {
	var total T
	for _, v := range in {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of in, comma-ok. The ok result is
// false for an empty slice.
func Mean[T Number](in []T) (float64, bool) {
	if len(in) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range in {
		total += float64(v)
	}
	return total / float64(len(in)), true
}
