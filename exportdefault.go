// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "strings"

// HasExportDefault reports whether code contains an `export { x as default } from '...'`
// clause. Every entry of every such clause is inspected; whitespace around the
// braces and the keywords is optional and both quote styles are accepted.
func HasExportDefault(code string) bool {
	for i := 0; ; {
		idx := strings.Index(code[i:], "export")
		if idx < 0 {
			return false
		}

		start := i + idx
		i = start + len("export")
		if !keywordAt(code, start, "export") {
			continue
		}

		list, ok := readExportFromList(code, i)
		if !ok {
			continue
		}

		for _, entry := range strings.Split(list, ",") {
			if isRenamedDefault(entry) {
				return true
			}
		}
	}
}

// readExportFromList reads `{ ... } from '<spec>'` after an export keyword
// and returns the text between the braces.
func readExportFromList(code string, i int) (string, bool) {
	i = skipSpaces(code, i)
	if keywordAt(code, i, "type") {
		i = skipSpaces(code, i+len("type"))
	}

	if i >= len(code) || code[i] != '{' {
		return "", false
	}

	closing := strings.IndexAny(code[i+1:], "{}")
	if closing < 0 || code[i+1+closing] != '}' {
		return "", false
	}

	list := code[i+1 : i+1+closing]
	j := skipSpaces(code, i+2+closing)
	if !keywordAt(code, j, "from") {
		return "", false
	}

	j = skipSpaces(code, j+len("from"))
	if _, _, ok := readQuoted(code, j); !ok {
		return "", false
	}

	return list, true
}

// isRenamedDefault reports whether one export list entry is `<ident> as default`,
// optionally prefixed by an inline `type` modifier.
func isRenamedDefault(entry string) bool {
	fields := strings.Fields(entry)
	if len(fields) == 4 && fields[0] == "type" {
		fields = fields[1:]
	}

	if len(fields) != 3 {
		return false
	}

	return isIdentifier(fields[0]) && fields[1] == "as" && fields[2] == "default"
}
