// SPDX-License-Identifier: MPL-2.0

package refined

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel error wrapped by OutOfRangeError.
var ErrOutOfRange = errors.New("value is out of range")

// OutOfRangeError is returned by InRange when a value falls outside the
// requested closed interval. It wraps ErrOutOfRange for errors.Is().
type OutOfRangeError struct {
	Value, Lo, Hi any
}

// Error implements the error interface for OutOfRangeError.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("invalid value %v: must be in range %v-%v", e.Value, e.Lo, e.Hi)
}

// Unwrap returns ErrOutOfRange for errors.Is() compatibility.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// InRange validates lo <= v <= hi and returns v unchanged. It is the
// ad-hoc counterpart to the named brands for one-off interval refinements.
func InRange[T cmp.Ordered](v, lo, hi T) (T, error) {
	if v < lo || v > hi {
		var zero T
		return zero, &OutOfRangeError{Value: v, Lo: lo, Hi: hi}
	}
	return v, nil
}

// MustInRange is InRange that panics on invalid input.
func MustInRange[T cmp.Ordered](v, lo, hi T) T {
	return must(InRange(v, lo, hi))
}

// TryInRange is the comma-ok variant of InRange.
func TryInRange[T cmp.Ordered](v, lo, hi T) (T, bool) {
	return try(InRange(v, lo, hi))
}
