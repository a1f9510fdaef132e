// SPDX-License-Identifier: MPL-2.0

package fsloc

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrJoin is the sentinel error wrapped by JoinError.
var ErrJoin = errors.New("location join failed")

// ErrRelativize is the sentinel error wrapped by RelativizeError.
var ErrRelativize = errors.New("location relativize failed")

type (
	// JoinError is returned by Join when the operands have the wrong shape:
	// the base must be a directory and the operand must be relative.
	// It wraps ErrJoin for errors.Is() compatibility.
	JoinError struct {
		Base    Loc
		Operand Loc
		Reason  string
	}

	// RelativizeError is returned by RelativeTo when the operands have the
	// wrong shape or no relative walk exists between them.
	// It wraps ErrRelativize for errors.Is() compatibility.
	RelativizeError struct {
		Base   Loc
		Target Loc
		Reason string
	}
)

// Error implements the error interface for JoinError.
func (e *JoinError) Error() string {
	return fmt.Sprintf("cannot join %q with %q: %s", e.Base, e.Operand, e.Reason)
}

// Unwrap returns ErrJoin for errors.Is() compatibility.
func (e *JoinError) Unwrap() error { return ErrJoin }

// Error implements the error interface for RelativizeError.
func (e *RelativizeError) Error() string {
	return fmt.Sprintf("cannot relativize %q against %q: %s", e.Target, e.Base, e.Reason)
}

// Unwrap returns ErrRelativize for errors.Is() compatibility.
func (e *RelativizeError) Unwrap() error { return ErrRelativize }

// Join resolves a relative operand against a base directory. The result
// inherits the base's anchor and the operand's class. Leading ".."
// components of the operand walk up through the base's segments; absolute
// bases clamp the walk at the root, relative bases accumulate the overflow.
func Join(base, operand Loc) (Loc, error) {
	if base.class != ClassDir {
		return Loc{}, &JoinError{Base: base, Operand: operand, Reason: "base must be a directory"}
	}
	if operand.anchor != AnchorRel {
		return Loc{}, &JoinError{Base: base, Operand: operand, Reason: "operand must be relative"}
	}

	out := Loc{
		anchor: base.anchor,
		class:  operand.class,
		ups:    base.ups,
		name:   operand.name,
		ext:    operand.ext,
	}
	segments := append([]string(nil), base.segments...)

	for range operand.ups {
		if len(segments) > 0 {
			segments = segments[:len(segments)-1]
		} else if base.anchor == AnchorRel {
			out.ups++
		}
		// walking above the absolute root is clamped, matching Decode
	}

	out.segments = append(segments, operand.segments...)
	return out, nil
}

// RelativeTo computes the relative walk from a base directory to target,
// delegating to filepath.Rel on the canonical encoded forms. Both locations
// must share the same anchor and the base must be a directory. The result is
// always relative and keeps the target's class.
func RelativeTo(base, target Loc) (Loc, error) {
	if base.class != ClassDir {
		return Loc{}, &RelativizeError{Base: base, Target: target, Reason: "base must be a directory"}
	}
	if base.anchor != target.anchor {
		return Loc{}, &RelativizeError{Base: base, Target: target, Reason: "anchors must match"}
	}

	rel, err := filepath.Rel(filepath.FromSlash(base.Encode()), filepath.FromSlash(target.Encode()))
	if err != nil {
		return Loc{}, &RelativizeError{Base: base, Target: target, Reason: err.Error()}
	}

	out := Decode(filepath.ToSlash(rel))
	// filepath.Rel drops the trailing separator, so a dotted directory name
	// such as "v1.2" re-decodes as a file. The class comes from the target.
	if target.class == ClassDir && out.class == ClassFile {
		out.segments = append(out.segments, out.FileName())
		out.name, out.ext = "", ""
	}
	out.class = target.class
	return out, nil
}

// Match reports whether the location matches a doublestar glob pattern.
// The pattern is applied to the canonical encoding with the leading "./"
// and the trailing separator stripped, so "src/**/*.txt" matches the
// location decoded from "./src/notes/a.txt".
func (l Loc) Match(pattern string) (bool, error) {
	subject := strings.TrimPrefix(l.Encode(), "."+Separator)
	if len(subject) > 1 {
		subject = strings.TrimSuffix(subject, Separator)
	}
	ok, err := doublestar.Match(pattern, subject)
	if err != nil {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return ok, nil
}
