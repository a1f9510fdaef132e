// SPDX-License-Identifier: MPL-2.0

// Package fsio provides thin, synchronous wrappers around host filesystem
// primitives: text read/write, existence checks, and directory creation.
// The Loc-typed variants accept fsloc file locations so callers moving
// decoded locations around never drop back to raw strings at the I/O
// boundary.
package fsio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"corekit/pkg/fsloc"
)

// ErrNotFile is the sentinel error wrapped by NotFileError.
var ErrNotFile = errors.New("location is not a file")

// NotFileError is returned by the Loc-typed helpers when the location
// names a directory. It wraps ErrNotFile for errors.Is() compatibility.
type NotFileError struct {
	Loc fsloc.Loc
}

// Error implements the error interface for NotFileError.
func (e *NotFileError) Error() string {
	return fmt.Sprintf("location %q is not a file", e.Loc)
}

// Unwrap returns ErrNotFile for errors.Is() compatibility.
func (e *NotFileError) Unwrap() error { return ErrNotFile }

// Exists reports whether path exists (file or directory).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates the directory (and any missing parents).
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ReadText reads the whole file as a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText writes content to path with mode 0o644, creating missing
// parent directories.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst (mode 0o644), creating missing parent
// directories of dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return nil
}

// ReadLoc reads the file named by a Loc. The location must be a file.
func ReadLoc(l fsloc.Loc) (string, error) {
	if !l.IsFile() {
		return "", &NotFileError{Loc: l}
	}
	return ReadText(hostPath(l))
}

// WriteLoc writes content to the file named by a Loc. The location must
// be a file.
func WriteLoc(l fsloc.Loc, content string) error {
	if !l.IsFile() {
		return &NotFileError{Loc: l}
	}
	return WriteText(hostPath(l), content)
}

// ExistsLoc reports whether the location exists on the host filesystem.
func ExistsLoc(l fsloc.Loc) bool {
	return Exists(hostPath(l))
}

// hostPath converts a canonical location encoding to the host separator.
func hostPath(l fsloc.Loc) string {
	return filepath.FromSlash(l.Encode())
}
