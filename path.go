// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"path"
	"strings"
)

// toSlash converts Windows separators to forward slashes on every platform.
func toSlash(raw string) string {
	if strings.Contains(raw, `\`) {
		return strings.ReplaceAll(raw, `\`, `/`)
	}

	return raw
}

// isAbsSlash reports whether a slash-separated path is absolute,
// including Windows drive paths such as "C:/src".
func isAbsSlash(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}

	return len(p) >= 3 && p[1] == ':' && p[2] == '/' &&
		((p[0] >= 'a' && p[0] <= 'z') || (p[0] >= 'A' && p[0] <= 'Z'))
}

// dirSlash returns the directory of a slash-separated file path.
func dirSlash(file string) string {
	return path.Dir(path.Clean(file))
}

// relSlash returns the path of target relative to base. Both inputs must be
// slash-separated and either both absolute or both relative.
func relSlash(base string, target string) (string, bool) {
	if isAbsSlash(base) != isAbsSlash(target) {
		return "", false
	}

	base = path.Clean(base)
	target = path.Clean(target)
	if base == target {
		return ".", true
	}

	baseParts := splitSegments(base)
	targetParts := splitSegments(target)

	common := 0
	for common < len(baseParts) && common < len(targetParts) && baseParts[common] == targetParts[common] {
		common++
	}

	// relative inputs cannot climb out of an unknown prefix
	if common < len(baseParts) && baseParts[common] == ".." {
		return "", false
	}

	// different drive letters have no relative form
	if common == 0 && isAbsSlash(base) && !strings.HasPrefix(base, "/") {
		return "", false
	}

	parts := make([]string, 0, len(baseParts)-common+len(targetParts)-common)
	for range baseParts[common:] {
		parts = append(parts, "..")
	}

	parts = append(parts, targetParts[common:]...)
	return strings.Join(parts, "/"), true
}

// splitSegments splits a cleaned slash path into segments, dropping the empty root segment.
func splitSegments(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return nil
	}

	return strings.Split(p, "/")
}

// normalizeRelPath normalizes a path to slash-separated relative clean form.
func normalizeRelPath(raw string) string {
	raw = toSlash(strings.TrimSpace(raw))
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	// Fast path for already-normalized relative paths.
	if isSimpleNormalizedPath(raw) {
		return raw
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return raw
}

// isSimpleNormalizedPath reports whether path is already normalized enough to skip path.Clean.
func isSimpleNormalizedPath(p string) bool {
	if p == "" ||
		p == "." ||
		p == ".." ||
		strings.HasPrefix(p, "/") ||
		strings.HasSuffix(p, "/") ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../") ||
		strings.Contains(p, "//") ||
		strings.Contains(p, "/./") ||
		strings.Contains(p, "/../") ||
		strings.HasSuffix(p, "/..") {
		return false
	}

	return true
}
