// SPDX-License-Identifier: MPL-2.0

// Package tabletest provides a small generic framework for table-driven
// tests: a Case pairs an input with its expected output (or expected
// error), and Run executes every case as a parallel subtest with
// errors.Is matching and deep-equality comparison.
package tabletest

import (
	"errors"
	"reflect"
	"testing"
)

type (
	// Case is one row of a test table: a named input with either an
	// expected value or an expected error.
	Case[I, W any] struct {
		// Name is the subtest name.
		Name string
		// In is the input handed to the function under test.
		In I
		// Want is the expected output. Ignored when WantErr is set.
		Want W
		// WantErr, when non-nil, requires the function to fail with an
		// error matching it via errors.Is.
		WantErr error
	}

	// Func is a fallible unary function under test.
	Func[I, W any] func(I) (W, error)

	// TotalFunc is an infallible unary function under test.
	TotalFunc[I, W any] func(I) W
)

// Run executes every case as a parallel subtest of t. A case with WantErr
// set passes when fn fails with a matching error; any other case passes
// when fn succeeds and its result deep-equals Want.
func Run[I, W any](t *testing.T, cases []Case[I, W], fn Func[I, W]) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			got, err := fn(tc.In)
			if tc.WantErr != nil {
				if err == nil {
					t.Fatalf("fn(%v) returned nil, want error matching %v", tc.In, tc.WantErr)
				}
				if !errors.Is(err, tc.WantErr) {
					t.Errorf("fn(%v) error = %v, want match for %v", tc.In, err, tc.WantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("fn(%v) returned unexpected error: %v", tc.In, err)
			}
			if !reflect.DeepEqual(got, tc.Want) {
				t.Errorf("fn(%v) = %#v, want %#v", tc.In, got, tc.Want)
			}
		})
	}
}

// RunTotal executes cases against an infallible function. It adapts fn to
// the fallible shape and delegates to Run; WantErr must be unset.
func RunTotal[I, W any](t *testing.T, cases []Case[I, W], fn TotalFunc[I, W]) {
	t.Helper()
	Run(t, cases, func(in I) (W, error) { return fn(in), nil })
}
