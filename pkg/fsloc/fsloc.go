// SPDX-License-Identifier: MPL-2.0

// Package fsloc provides an immutable filesystem-location value type that
// distinguishes absolute from relative locations and file from directory
// locations. A Loc is produced by the Decode family of constructors, carries
// an ordered sequence of parent segments plus an optional name/extension pair,
// and re-encodes deterministically via Encode.
//
// Locations use '/' as the separator regardless of host platform, mirroring
// the canonical slash form used throughout configuration files and manifests.
package fsloc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAnchor is the sentinel error wrapped by InvalidAnchorError.
var ErrInvalidAnchor = errors.New("invalid anchor")

// ErrInvalidClass is the sentinel error wrapped by InvalidClassError.
var ErrInvalidClass = errors.New("invalid class")

const (
	// AnchorAbs marks a location resolved from the filesystem root.
	AnchorAbs Anchor = "abs"
	// AnchorRel marks a location resolved from some base directory.
	AnchorRel Anchor = "rel"

	// ClassFile marks a location naming a file.
	ClassFile Class = "file"
	// ClassDir marks a location naming a directory.
	ClassDir Class = "dir"

	// Separator is the canonical path separator used by encoded locations.
	Separator = "/"
)

type (
	// Anchor specifies whether a location is absolute or relative.
	Anchor string

	// InvalidAnchorError is returned when an Anchor value is not recognized.
	// It wraps ErrInvalidAnchor for errors.Is() compatibility.
	InvalidAnchorError struct {
		Value Anchor
	}

	// Class specifies whether a location names a file or a directory.
	Class string

	// InvalidClassError is returned when a Class value is not recognized.
	// It wraps ErrInvalidClass for errors.Is() compatibility.
	InvalidClassError struct {
		Value Class
	}

	// Loc is an immutable filesystem location.
	//
	// Invariants (established by the Decode constructors and preserved by
	// all operations):
	//   - absolute locations never contain "." or ".." segments
	//   - relative locations carry their leading ".." chain in ups, and
	//     segments never contain "." or ".."
	//   - file locations always have a non-empty name (extension optional)
	//   - directory locations never have a name or extension
	Loc struct {
		anchor Anchor
		class  Class

		// ups is the number of leading ".." components. Always zero for
		// absolute locations.
		ups int

		// segments are the parent directory components, in order, with no
		// "." or ".." entries.
		segments []string

		// name is the file name without its extension ("" for directories).
		// Leading-dot names such as ".gitignore" are stored whole.
		name string

		// ext is the file extension without the dot ("" when absent).
		ext string
	}
)

// String returns the string representation of the Anchor.
func (a Anchor) String() string { return string(a) }

// IsValid returns whether the Anchor is one of the defined anchors,
// and a list of validation errors if it is not.
func (a Anchor) IsValid() (bool, []error) {
	switch a {
	case AnchorAbs, AnchorRel:
		return true, nil
	default:
		return false, []error{&InvalidAnchorError{Value: a}}
	}
}

// Error implements the error interface for InvalidAnchorError.
func (e *InvalidAnchorError) Error() string {
	return fmt.Sprintf("invalid anchor %q (valid: abs, rel)", e.Value)
}

// Unwrap returns ErrInvalidAnchor for errors.Is() compatibility.
func (e *InvalidAnchorError) Unwrap() error { return ErrInvalidAnchor }

// String returns the string representation of the Class.
func (c Class) String() string { return string(c) }

// IsValid returns whether the Class is one of the defined classes,
// and a list of validation errors if it is not.
func (c Class) IsValid() (bool, []error) {
	switch c {
	case ClassFile, ClassDir:
		return true, nil
	default:
		return false, []error{&InvalidClassError{Value: c}}
	}
}

// Error implements the error interface for InvalidClassError.
func (e *InvalidClassError) Error() string {
	return fmt.Sprintf("invalid class %q (valid: file, dir)", e.Value)
}

// Unwrap returns ErrInvalidClass for errors.Is() compatibility.
func (e *InvalidClassError) Unwrap() error { return ErrInvalidClass }

// Anchor returns whether the location is absolute or relative.
func (l Loc) Anchor() Anchor { return l.anchor }

// Class returns whether the location names a file or a directory.
func (l Loc) Class() Class { return l.class }

// IsAbs reports whether the location is absolute.
func (l Loc) IsAbs() bool { return l.anchor == AnchorAbs }

// IsDir reports whether the location names a directory.
func (l Loc) IsDir() bool { return l.class == ClassDir }

// IsFile reports whether the location names a file.
func (l Loc) IsFile() bool { return l.class == ClassFile }

// IsRoot reports whether the location is the absolute root directory "/".
func (l Loc) IsRoot() bool {
	return l.anchor == AnchorAbs && l.class == ClassDir && len(l.segments) == 0
}

// Name returns the file name without its extension. Directories return "".
func (l Loc) Name() string { return l.name }

// Ext returns the file extension without the dot, or "" when absent.
// Leading-dot names such as ".gitignore" have no extension, while
// ".env.local" has extension "local". A trailing dot is part of the name,
// not an extension separator.
func (l Loc) Ext() string { return l.ext }

// FileName returns the full file name including its extension.
// Directories return "".
func (l Loc) FileName() string {
	if l.class != ClassFile {
		return ""
	}
	if l.ext == "" {
		return l.name
	}
	return l.name + "." + l.ext
}

// Segments returns a copy of the parent directory components.
// Leading ".." components of relative locations are not included; see Ups.
func (l Loc) Segments() []string {
	out := make([]string, len(l.segments))
	copy(out, l.segments)
	return out
}

// Ups returns the number of leading ".." components of a relative location.
// Always zero for absolute locations.
func (l Loc) Ups() int { return l.ups }

// Depth returns the number of path components, counting ".." chains,
// parent segments, and the file name (when present).
func (l Loc) Depth() int {
	n := l.ups + len(l.segments)
	if l.class == ClassFile {
		n++
	}
	return n
}

// Parent returns the directory containing this location. The parent of the
// absolute root is the root itself; the parent of the empty relative
// directory "./" is "../".
func (l Loc) Parent() Loc {
	p := Loc{anchor: l.anchor, class: ClassDir, ups: l.ups}
	p.segments = append(p.segments, l.segments...)

	if l.class == ClassFile {
		return p
	}
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
		return p
	}
	if l.anchor == AnchorRel {
		p.ups++
	}
	return p
}

// Equal reports whether two locations denote the same anchor, class, and path.
func (l Loc) Equal(other Loc) bool {
	if l.anchor != other.anchor || l.class != other.class ||
		l.ups != other.ups || l.name != other.name || l.ext != other.ext {
		return false
	}
	if len(l.segments) != len(other.segments) {
		return false
	}
	for i := range l.segments {
		if l.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// splitExt splits a file name into its stem and extension. The extension is
// the substring after the last '.', except that a dot in the leading or
// trailing position does not start an extension: ".gitignore" has no
// extension, ".env.local" has extension "local", "archive.tar.gz" has
// extension "gz", and "foo." is the extension-less name "foo." whole (so
// the trailing dot survives FileName and Encode).
func splitExt(fileName string) (stem, ext string) {
	idx := strings.LastIndexByte(fileName, '.')
	if idx <= 0 || idx == len(fileName)-1 {
		return fileName, ""
	}
	return fileName[:idx], fileName[idx+1:]
}
