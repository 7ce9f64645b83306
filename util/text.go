package util

import (
	"strings"
	"unicode"
)

// Group splits s into blocks of n runes separated by single spaces, the
// way cipher text is traditionally written.  n <= 0 returns s as is.
func Group(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/n)
	for i, r := range runes {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Squeeze removes all white space from s.
func Squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Tail returns at most the last n runes of s, with a leading ellipsis
// when anything was cut.
func Tail(s string, n int) string {
	runes := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return "…" + string(runes[len(runes)-n+1:])
}
