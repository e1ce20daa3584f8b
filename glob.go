// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "strings"

// NormalizeGlob turns an include/exclude path into a directory-matching glob.
//
// Rules, first match wins:
//   - "" and "/" become "/**"
//   - a final segment containing "*" is kept as is
//   - a file-like final segment ("b.c", ".b") is kept as is
//   - anything else is treated as a directory and gets "/**" appended
func NormalizeGlob(pattern string) string {
	if pattern == "" || pattern == "/" {
		return "/**"
	}

	last := lastSegment(pattern)
	if strings.IndexByte(last, '*') >= 0 {
		return pattern
	}

	if segmentLooksLikeFile(last) {
		return pattern
	}

	if n := len(pattern); pattern[n-1] == '/' || pattern[n-1] == '\\' {
		pattern = pattern[:n-1]
	}

	return pattern + "/**"
}

// lastSegment returns the final path segment split on either separator.
// A trailing separator yields an empty segment.
func lastSegment(pattern string) string {
	if i := strings.LastIndexAny(pattern, `/\`); i >= 0 {
		return pattern[i+1:]
	}

	return pattern
}

// segmentLooksLikeFile reports whether segment has a dot other than the "." and ".." tokens.
func segmentLooksLikeFile(segment string) bool {
	if segment == "." || segment == ".." {
		return false
	}

	return strings.IndexByte(segment, '.') >= 0
}

// patternHasGlobMeta reports whether pattern contains supported glob meta.
func patternHasGlobMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '{':
			return true
		case '[':
			if strings.IndexByte(pattern[i+1:], ']') >= 0 {
				return true
			}
		}
	}

	return false
}
