// SPDX-License-Identifier: MPL-2.0

package fsloc

import (
	"errors"
	"testing"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		operand string
		want    string
	}{
		{"abs dir with rel file", "/a/b/", "c/d.txt", "/a/b/c/d.txt"},
		{"abs dir with rel dir", "/a/", "x/y/", "/a/x/y/"},
		{"operand walks up", "/a/b/", "../c.txt", "/a/c.txt"},
		{"operand walks above abs root clamps", "/a/", "../../../c.txt", "/c.txt"},
		{"rel base accumulates ups", "x/", "../../y/", "../y/"},
		{"rel base with up chain", "../x/", "../../z.txt", "../../z.txt"},
		{"empty relative operand", "/a/", "./", "/a/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Join(Decode(tt.base), Decode(tt.operand))
			if err != nil {
				t.Fatalf("Join(%q, %q) returned error: %v", tt.base, tt.operand, err)
			}
			if got.Encode() != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q", tt.base, tt.operand, got.Encode(), tt.want)
			}
		})
	}
}

func TestJoin_ShapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		operand string
	}{
		{"file base", "/a/b.txt", "c.txt"},
		{"absolute operand", "/a/", "/b/c.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Join(Decode(tt.base), Decode(tt.operand))
			if err == nil {
				t.Fatalf("Join(%q, %q) returned nil, want error", tt.base, tt.operand)
			}
			if !errors.Is(err, ErrJoin) {
				t.Errorf("error should wrap ErrJoin, got: %v", err)
			}
			var je *JoinError
			if !errors.As(err, &je) {
				t.Errorf("error should be *JoinError, got: %T", err)
			}
		})
	}
}

func TestRelativeTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		base   string
		target string
		want   string
	}{
		{"sibling file", "/a/b/", "/a/c/d.txt", "../c/d.txt"},
		{"descendant file", "/a/", "/a/b/c.txt", "./b/c.txt"},
		{"same dir", "/a/b/", "/a/b/", "./"},
		{"ancestor dir", "/a/b/c/", "/a/", "../../"},
		{"relative operands", "x/y/", "x/z.txt", "../z.txt"},
		{"dotted dir target keeps class", "/a/", "/a/v1.2/", "./v1.2/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RelativeTo(Decode(tt.base), Decode(tt.target))
			if err != nil {
				t.Fatalf("RelativeTo(%q, %q) returned error: %v", tt.base, tt.target, err)
			}
			if got.IsAbs() {
				t.Errorf("RelativeTo result should be relative, got %q", got.Encode())
			}
			if got.Encode() != tt.want {
				t.Errorf("RelativeTo(%q, %q) = %q, want %q", tt.base, tt.target, got.Encode(), tt.want)
			}
			if got.Class() != Decode(tt.target).Class() {
				t.Errorf("result class = %q, want target class %q", got.Class(), Decode(tt.target).Class())
			}
		})
	}
}

func TestRelativeTo_ShapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		base   string
		target string
	}{
		{"file base", "/a/b.txt", "/a/c.txt"},
		{"anchor mismatch", "/a/", "b/c.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := RelativeTo(Decode(tt.base), Decode(tt.target))
			if err == nil {
				t.Fatalf("RelativeTo(%q, %q) returned nil, want error", tt.base, tt.target)
			}
			if !errors.Is(err, ErrRelativize) {
				t.Errorf("error should wrap ErrRelativize, got: %v", err)
			}
			var re *RelativizeError
			if !errors.As(err, &re) {
				t.Errorf("error should be *RelativizeError, got: %T", err)
			}
		})
	}
}

func TestLoc_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		pattern string
		want    bool
	}{
		{"doublestar matches nested file", "./src/notes/a.txt", "src/**/*.txt", true},
		{"extension mismatch", "src/notes/a.md", "src/**/*.txt", false},
		{"absolute pattern", "/var/log/sys.log", "/var/**/*.log", true},
		{"directory without trailing slash", "src/utils/", "src/*", true},
		{"single star does not cross separators", "src/a/b.txt", "src/*.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tt.input).Match(tt.pattern)
			if err != nil {
				t.Fatalf("Match(%q) returned error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q).Match(%q) = %v, want %v", tt.input, tt.pattern, got, tt.want)
			}
		})
	}

	if _, err := Decode("a.txt").Match("[unclosed"); err == nil {
		t.Error("malformed pattern should return an error")
	}
}
