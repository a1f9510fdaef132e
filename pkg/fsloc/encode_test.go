// SPDX-License-Identifier: MPL-2.0

package fsloc

import "testing"

func TestEncode_Canonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "./"},
		{"dot", ".", "./"},
		{"dotdot", "..", "../"},
		{"root", "/", "/"},
		{"absolute dir", "/usr/bin/", "/usr/bin/"},
		{"absolute dir without slash", "/usr/bin", "/usr/bin/"},
		{"absolute file", "/var/log/sys.log", "/var/log/sys.log"},
		{"relative file gains dot prefix", "src/app.ts", "./src/app.ts"},
		{"relative dir gains dot prefix", "src/utils", "./src/utils/"},
		{"up chain file", "../../a/b.txt", "../../a/b.txt"},
		{"dot segments collapse", "./a/./b/c.txt", "./a/b/c.txt"},
		{"dotdot resolves", "/a/../b/c.txt", "/b/c.txt"},
		{"root clamp", "/../..", "/"},
		{"double separators collapse", "a//b//", "./a/b/"},
		{"leading dot file", ".gitignore", "./.gitignore"},
		{"trailing dot file keeps its dot", "foo.", "./foo."},
		{"absolute trailing dot file", "/srv/a.b.", "/srv/a.b."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Decode(tt.input).Encode()
			if got != tt.want {
				t.Errorf("Decode(%q).Encode() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Encoding is a fixed point: decoding a canonical form and re-encoding it
// yields the same string, and the decoded values are equal.
func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", ".", "..", "../", "/", "/a/", "/a/b.txt", "a/b/c/",
		"src/app.ts", "../x/y.tar.gz", ".env.local", "/deep/../n/.npmrc",
		"a//b/./c/../d.md", "foo.", "a.b.",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			canonical := Normalize(input)
			if again := Normalize(canonical); again != canonical {
				t.Errorf("Normalize is not idempotent: %q -> %q -> %q", input, canonical, again)
			}
			if !Decode(canonical).Equal(Decode(input)) {
				t.Errorf("Decode(%q) and Decode(%q) differ", input, canonical)
			}
		})
	}
}

func TestLoc_Equal(t *testing.T) {
	t.Parallel()

	if !Decode("a/b.txt").Equal(Decode("./a/./b.txt")) {
		t.Error("equivalent spellings should be Equal")
	}
	if Decode("a/b.txt").Equal(Decode("/a/b.txt")) {
		t.Error("different anchors should not be Equal")
	}
	if Decode("a/b/").Equal(Decode("a/c/")) {
		t.Error("different segments should not be Equal")
	}
}
