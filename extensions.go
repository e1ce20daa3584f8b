// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "strings"

// sourceExtensions are TypeScript extensions dropped from emitted module specifiers.
// Longer suffixes come first so ".d.ts" wins over ".ts".
var sourceExtensions = []string{
	".d.mts",
	".d.cts",
	".d.ts",
	".mts",
	".cts",
	".tsx",
	".ts",
}

// declarationExtensions are file suffixes of declaration files.
var declarationExtensions = []string{
	".d.ts",
	".d.mts",
	".d.cts",
}

// trimSourceExt removes a TypeScript source or declaration extension from a module path.
//
// Other extensions (".vue", ".js", ".json") are part of the specifier and are kept.
func trimSourceExt(p string) string {
	lower := asciiLower(p)
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(lower, ext) && len(p) > len(ext) && p[len(p)-len(ext)-1] != '/' {
			return p[:len(p)-len(ext)]
		}
	}

	return p
}

// IsDeclarationFile reports whether name ends with a declaration file extension.
func IsDeclarationFile(name string) bool {
	lower := asciiLower(name)
	for _, ext := range declarationExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

// declarationStem returns name without its declaration extension.
func declarationStem(name string) string {
	lower := asciiLower(name)
	for _, ext := range declarationExtensions {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)]
		}
	}

	return name
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
