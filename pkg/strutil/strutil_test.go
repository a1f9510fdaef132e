// SPDX-License-Identifier: MPL-2.0

package strutil

import (
	"testing"

	"corekit/pkg/tabletest"
)

func TestIsBlank(t *testing.T) {
	t.Parallel()

	tabletest.RunTotal(t, []tabletest.Case[string, bool]{
		{Name: "empty", In: "", Want: true},
		{Name: "spaces", In: "   ", Want: true},
		{Name: "tabs and newlines", In: "\t\n", Want: true},
		{Name: "word", In: "x", Want: false},
		{Name: "padded word", In: "  x  ", Want: false},
	}, IsBlank)
}

func TestEnsurePrefixSuffix(t *testing.T) {
	t.Parallel()

	if got := EnsurePrefix("bin", "/"); got != "/bin" {
		t.Errorf("EnsurePrefix = %q, want %q", got, "/bin")
	}
	if got := EnsurePrefix("/bin", "/"); got != "/bin" {
		t.Errorf("EnsurePrefix should be idempotent, got %q", got)
	}
	if got := EnsureSuffix("dir", "/"); got != "dir/" {
		t.Errorf("EnsureSuffix = %q, want %q", got, "dir/")
	}
	if got := EnsureSuffix("dir/", "/"); got != "dir/" {
		t.Errorf("EnsureSuffix should be idempotent, got %q", got)
	}
}

func TestFirstNonBlank(t *testing.T) {
	t.Parallel()

	if got := FirstNonBlank("", "  ", "a", "b"); got != "a" {
		t.Errorf("FirstNonBlank = %q, want %q", got, "a")
	}
	if got := FirstNonBlank("", "\t"); got != "" {
		t.Errorf("FirstNonBlank with all blank = %q, want %q", got, "")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short string unchanged", "abc", 10, "abc"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"truncated with ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny max yields bare ellipsis", "abcdefgh", 2, "..."},
		{"multibyte runes counted once", "héllö wörld", 8, "héllö..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestLinesRoundTrip(t *testing.T) {
	t.Parallel()

	if got := Lines("a\nb\nc\n"); len(got) != 3 || got[2] != "c" {
		t.Errorf("Lines = %v, want [a b c]", got)
	}
	if got := Lines(""); got != nil {
		t.Errorf("Lines(\"\") = %v, want nil", got)
	}
	if got := JoinLines([]string{"a", "b"}); got != "a\nb\n" {
		t.Errorf("JoinLines = %q, want %q", got, "a\nb\n")
	}
	if got := JoinLines(Lines("a\nb\n")); got != "a\nb\n" {
		t.Errorf("JoinLines(Lines) should round-trip, got %q", got)
	}
}

func TestIndentDedent(t *testing.T) {
	t.Parallel()

	if got := Indent("a\n\nb", "  "); got != "  a\n\n  b" {
		t.Errorf("Indent = %q, want %q", got, "  a\n\n  b")
	}

	in := "    if x {\n        y()\n    }"
	want := "if x {\n    y()\n}"
	if got := Dedent(in); got != want {
		t.Errorf("Dedent = %q, want %q", got, want)
	}

	// Blank lines do not contribute to the margin.
	if got := Dedent("  a\n\n  b"); got != "a\n\nb" {
		t.Errorf("Dedent with blank line = %q, want %q", got, "a\n\nb")
	}
}

func TestCaseConversions(t *testing.T) {
	t.Parallel()

	tabletest.RunTotal(t, []tabletest.Case[string, string]{
		{Name: "camel", In: "someFieldName", Want: "some_field_name"},
		{Name: "pascal", In: "SomeFieldName", Want: "some_field_name"},
		{Name: "acronym run", In: "parseHTTPResponse", Want: "parse_http_response"},
		{Name: "already snake", In: "already_snake", Want: "already_snake"},
		{Name: "single word", In: "word", Want: "word"},
	}, CamelToSnake)

	tabletest.RunTotal(t, []tabletest.Case[string, string]{
		{Name: "simple", In: "some_field_name", Want: "someFieldName"},
		{Name: "leading underscore dropped", In: "_private", Want: "private"},
		{Name: "double underscore collapses", In: "a__b", Want: "aB"},
		{Name: "no underscores", In: "word", Want: "word"},
	}, SnakeToCamel)
}
