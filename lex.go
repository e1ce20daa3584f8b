// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "strings"

// isIdentStart reports whether c can start a TypeScript identifier (ASCII subset).
func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentPart reports whether c can continue a TypeScript identifier (ASCII subset).
func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// isSpace reports whether c is inline or line-break whitespace.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isIdentifier reports whether s is exactly one identifier token.
func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}

	return true
}

// skipSpaces returns the first index at or after i that is not whitespace.
func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

// readIdent returns the end of the identifier starting at i, or i when none starts there.
func readIdent(s string, i int) int {
	if i >= len(s) || !isIdentStart(s[i]) {
		return i
	}

	i++
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}

	return i
}

// readQuoted reads a single-line quoted string starting at i.
// It returns the unquoted body and the index after the closing quote.
func readQuoted(s string, i int) (string, int, bool) {
	if i >= len(s) || (s[i] != '\'' && s[i] != '"') {
		return "", i, false
	}

	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case quote:
			return s[i+1 : j], j + 1, true
		case '\n', '\r':
			return "", i, false
		}
	}

	return "", i, false
}

// keywordAt reports whether word starts at i as a whole token.
func keywordAt(s string, i int, word string) bool {
	if !strings.HasPrefix(s[i:], word) {
		return false
	}

	if i > 0 && (isIdentPart(s[i-1]) || s[i-1] == '.') {
		return false
	}

	end := i + len(word)
	return end >= len(s) || !isIdentPart(s[end])
}

// lineEnd returns the index after the line terminator of the line containing i.
func lineEnd(s string, i int) int {
	j := strings.IndexByte(s[i:], '\n')
	if j < 0 {
		return len(s)
	}

	return i + j + 1
}
