// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_MessageWithoutErr(t *testing.T) {
	t.Parallel()

	err := &ExitError{Code: 3}
	if err.Error() != "exit status 3" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit status 3")
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestExitError_MessageWithErr(t *testing.T) {
	t.Parallel()

	underlying := errors.New("command failed")
	err := &ExitError{Code: 1, Err: underlying}

	if err.Error() != "command failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "command failed")
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error via Unwrap")
	}
}

func TestExitError_AsTarget(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", &ExitError{Code: 2})

	var exitErr *ExitError
	if !errors.As(wrapped, &exitErr) {
		t.Fatal("errors.As should unwrap to *ExitError")
	}
	if exitErr.Code != 2 {
		t.Errorf("Code = %d, want 2", exitErr.Code)
	}
}
