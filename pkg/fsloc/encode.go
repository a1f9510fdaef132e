// SPDX-License-Identifier: MPL-2.0

package fsloc

import "strings"

// Encode renders the location in its canonical string form:
//
//   - absolute locations start with "/"
//   - relative locations start with "./", or with their "../" chain
//   - directory locations end with "/"
//
// Encode is deterministic: decoding any spelling of a path and re-encoding
// it always yields the same canonical string, and Decode(l.Encode())
// reproduces l exactly.
func (l Loc) Encode() string {
	var sb strings.Builder

	switch {
	case l.anchor == AnchorAbs:
		sb.WriteString(Separator)
	case l.ups > 0:
		for range l.ups {
			sb.WriteString("..")
			sb.WriteString(Separator)
		}
	default:
		sb.WriteString(".")
		sb.WriteString(Separator)
	}

	for _, seg := range l.segments {
		sb.WriteString(seg)
		sb.WriteString(Separator)
	}

	if l.class == ClassFile {
		sb.WriteString(l.FileName())
	}

	return sb.String()
}

// String returns the canonical encoded form. It implements fmt.Stringer.
func (l Loc) String() string { return l.Encode() }

// Normalize is the canonical spelling of a path string: Decode followed by
// Encode. Well-formed inputs round-trip through it unchanged.
func Normalize(s string) string { return Decode(s).Encode() }
