// SPDX-License-Identifier: MPL-2.0

package tabletest

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestRun_ValueCases(t *testing.T) {
	t.Parallel()

	Run(t, []Case[string, int]{
		{Name: "decimal", In: "42", Want: 42},
		{Name: "negative", In: "-7", Want: -7},
		{Name: "zero", In: "0", Want: 0},
	}, func(s string) (int, error) {
		return strconv.Atoi(s)
	})
}

func TestRun_ErrorCases(t *testing.T) {
	t.Parallel()

	Run(t, []Case[string, int]{
		{Name: "not a number", In: "x", WantErr: strconv.ErrSyntax},
		{Name: "overflow", In: "99999999999999999999", WantErr: strconv.ErrRange},
	}, func(s string) (int, error) {
		return strconv.Atoi(s)
	})
}

func TestRun_WrappedErrorMatches(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")

	Run(t, []Case[int, int]{
		{Name: "wrapped sentinel matches", In: 1, WantErr: sentinel},
	}, func(int) (int, error) {
		return 0, fmt.Errorf("outer context: %w", sentinel)
	})
}

func TestRunTotal(t *testing.T) {
	t.Parallel()

	RunTotal(t, []Case[int, int]{
		{Name: "doubles", In: 2, Want: 4},
		{Name: "zero", In: 0, Want: 0},
		{Name: "negative", In: -3, Want: -6},
	}, func(i int) int { return i * 2 })
}
