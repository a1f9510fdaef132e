// SPDX-License-Identifier: MPL-2.0

package fsloc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("location parse failed")

// ParseError is returned by the anchored/classed Decode variants when the
// input string classifies to a different anchor or class than requested.
// It wraps ErrParse for errors.Is() compatibility.
type ParseError struct {
	// Input is the original path string.
	Input string
	// Want describes the requested shape (e.g. "absolute file location").
	Want string
	// Got describes the shape the analyzer produced.
	Got string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid location %q: want %s, got %s", e.Input, e.Want, e.Got)
}

// Unwrap returns ErrParse for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrParse }

// Decode parses a path string into a Loc. Decode is total: every input
// produces a location.
//
// Classification: the input is a directory when it is empty, ".", "./",
// "..", "../", or ends with the separator; otherwise it is a directory when
// the last segment carries no dot (and therefore no file shape), and a file
// when it does. The extension, when present, is the substring after the last
// dot of the file name, except that a leading dot starts the name and a
// trailing dot stays in it (".gitignore" has no extension; ".env.local" has
// extension "local"; "foo." is a file named "foo." with no extension).
//
// "." and ".." components are resolved during parsing. Absolute locations
// clamp ".." at the root; relative locations accumulate leading ".."
// components.
func Decode(s string) Loc {
	abs := strings.HasPrefix(s, Separator)
	dirSignal := s == "" || s == "." || s == ".." || strings.HasSuffix(s, Separator)

	var (
		segments []string
		ups      int
	)
	for _, seg := range strings.Split(s, Separator) {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			} else if !abs {
				ups++
			}
			// ".." at the absolute root is clamped away.
		default:
			segments = append(segments, seg)
		}
	}

	anchor := AnchorRel
	if abs {
		anchor = AnchorAbs
	}

	isDir := dirSignal || len(segments) == 0 ||
		!strings.ContainsRune(segments[len(segments)-1], '.')
	if isDir {
		return Loc{anchor: anchor, class: ClassDir, ups: ups, segments: segments}
	}

	fileName := segments[len(segments)-1]
	segments = segments[:len(segments)-1]
	name, ext := splitExt(fileName)
	return Loc{anchor: anchor, class: ClassFile, ups: ups, segments: segments, name: name, ext: ext}
}

// DecodeAbs parses s and requires an absolute location of either class.
func DecodeAbs(s string) (Loc, error) {
	l := Decode(s)
	if l.anchor != AnchorAbs {
		return Loc{}, &ParseError{Input: s, Want: "absolute location", Got: describe(l)}
	}
	return l, nil
}

// DecodeRel parses s and requires a relative location of either class.
func DecodeRel(s string) (Loc, error) {
	l := Decode(s)
	if l.anchor != AnchorRel {
		return Loc{}, &ParseError{Input: s, Want: "relative location", Got: describe(l)}
	}
	return l, nil
}

// DecodeFile parses s and requires a file location of either anchor.
func DecodeFile(s string) (Loc, error) {
	l := Decode(s)
	if l.class != ClassFile {
		return Loc{}, &ParseError{Input: s, Want: "file location", Got: describe(l)}
	}
	return l, nil
}

// DecodeDir parses s and requires a directory location of either anchor.
func DecodeDir(s string) (Loc, error) {
	l := Decode(s)
	if l.class != ClassDir {
		return Loc{}, &ParseError{Input: s, Want: "directory location", Got: describe(l)}
	}
	return l, nil
}

// DecodeAbsFile parses s and requires an absolute file location.
func DecodeAbsFile(s string) (Loc, error) { return decodeExact(s, AnchorAbs, ClassFile) }

// DecodeAbsDir parses s and requires an absolute directory location.
func DecodeAbsDir(s string) (Loc, error) { return decodeExact(s, AnchorAbs, ClassDir) }

// DecodeRelFile parses s and requires a relative file location.
func DecodeRelFile(s string) (Loc, error) { return decodeExact(s, AnchorRel, ClassFile) }

// DecodeRelDir parses s and requires a relative directory location.
func DecodeRelDir(s string) (Loc, error) { return decodeExact(s, AnchorRel, ClassDir) }

func decodeExact(s string, anchor Anchor, class Class) (Loc, error) {
	l := Decode(s)
	if l.anchor != anchor || l.class != class {
		return Loc{}, &ParseError{
			Input: s,
			Want:  describeShape(anchor, class),
			Got:   describe(l),
		}
	}
	return l, nil
}

func describe(l Loc) string { return describeShape(l.anchor, l.class) }

func describeShape(anchor Anchor, class Class) string {
	a := "relative"
	if anchor == AnchorAbs {
		a = "absolute"
	}
	c := "directory"
	if class == ClassFile {
		c = "file"
	}
	return a + " " + c + " location"
}
