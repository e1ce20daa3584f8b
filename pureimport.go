// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "strings"

// RemovePureImport removes side-effect-only imports such as `import "./style.css";`.
//
// The input is processed line by line. Pure imports at the start of a line are
// removed; a line left with nothing but whitespace is dropped together with its
// line terminator. All other text is kept byte-identical.
func RemovePureImport(code string) string {
	if !strings.Contains(code, "import") {
		return code
	}

	var b strings.Builder
	changed := false

	for start := 0; start < len(code); {
		end := lineEnd(code, start)
		line := code[start:end]
		start = end

		body, term := splitLineTerminator(line)
		rest, removed := stripLeadingPureImports(body)
		if !removed {
			b.WriteString(line)
			continue
		}

		changed = true
		if strings.TrimSpace(rest) == "" {
			continue
		}

		b.WriteString(rest)
		b.WriteString(term)
	}

	if !changed {
		return code
	}

	return b.String()
}

// stripLeadingPureImports removes consecutive pure import statements at the
// start of one line. Leading indentation of the line is preserved.
func stripLeadingPureImports(line string) (string, bool) {
	indent := skipSpaces(line, 0)
	i := indent
	removed := false

	for {
		next, ok := matchPureImport(line, i)
		if !ok {
			break
		}

		removed = true
		i = skipSpaces(line, next)
	}

	if !removed {
		return line, false
	}

	// trailing comment belongs to the dropped statement
	if strings.HasPrefix(line[i:], "//") {
		i = len(line)
	}

	return line[:indent] + line[i:], true
}

// matchPureImport matches `import "<spec>"` with optional ";" at index i and
// returns the index after the statement.
func matchPureImport(line string, i int) (int, bool) {
	if !keywordAt(line, i, "import") {
		return i, false
	}

	j := skipSpaces(line, i+len("import"))
	spec, j, ok := readQuoted(line, j)
	if !ok || spec == "" {
		return i, false
	}

	j = skipSpaces(line, j)
	if j < len(line) {
		switch {
		case line[j] == ';':
			j++
		case strings.HasPrefix(line[j:], "//"), strings.HasPrefix(line[j:], "import"):
		default:
			// `import "a" assert {...}` and similar forms are left alone
			return i, false
		}
	}

	return j, true
}

// splitLineTerminator splits "\n" or "\r\n" off the end of line.
func splitLineTerminator(line string) (string, string) {
	if body, ok := strings.CutSuffix(line, "\r\n"); ok {
		return body, "\r\n"
	}

	if body, ok := strings.CutSuffix(line, "\n"); ok {
		return body, "\n"
	}

	return line, ""
}
