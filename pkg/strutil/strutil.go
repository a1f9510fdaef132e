// SPDX-License-Identifier: MPL-2.0

// Package strutil provides small, pure string helpers.
package strutil

import (
	"strings"
	"unicode"
)

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EnsurePrefix returns s guaranteed to start with prefix.
func EnsurePrefix(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s
	}
	return prefix + s
}

// EnsureSuffix returns s guaranteed to end with suffix.
func EnsureSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}
	return s + suffix
}

// FirstNonBlank returns the first candidate that is not blank, or "".
func FirstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if !IsBlank(c) {
			return c
		}
	}
	return ""
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// truncation happens. max values below the ellipsis length return the
// bare ellipsis.
func Truncate(s string, max int) string {
	const ellipsis = "..."
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}

// Lines splits s on newlines. Unlike strings.Split, a trailing newline
// does not produce a final empty element.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// JoinLines joins lines with newlines and terminates with a final newline.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Indent prefixes every non-empty line of s with the given prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Dedent removes the longest common leading whitespace from every
// non-empty line of s.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	margin := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return s
	}

	for i, line := range lines {
		if len(line) >= margin && strings.TrimLeft(line[:margin], " \t") == "" {
			lines[i] = line[margin:]
		}
	}
	return strings.Join(lines, "\n")
}

// CamelToSnake converts camelCase or PascalCase to snake_case.
// Runs of upper-case letters are kept together: "parseHTTPResponse"
// becomes "parse_http_response".
func CamelToSnake(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SnakeToCamel converts snake_case to camelCase. Consecutive underscores
// collapse; leading and trailing underscores are dropped.
func SnakeToCamel(s string) string {
	var sb strings.Builder
	upperNext := false
	for _, r := range s {
		if r == '_' {
			upperNext = sb.Len() > 0
			continue
		}
		if upperNext {
			sb.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
