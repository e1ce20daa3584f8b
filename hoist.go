// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// NameCounter allocates synthetic local names "__DTS_<n>__" for one hoisting pass.
//
// The zero value starts at 1. A counter is owned by its caller and is not safe
// for concurrent use.
type NameCounter struct {
	last int
}

// Next returns the next synthetic name.
func (c *NameCounter) Next() string {
	c.last++
	return "__DTS_" + strconv.Itoa(c.last) + "__"
}

// nextFree returns the next synthetic name that does not already occur in code.
func (c *NameCounter) nextFree(code string) string {
	for {
		name := c.Next()
		if !strings.Contains(code, name) {
			return name
		}
	}
}

// inlineRef is one `import("<module>").<name>` occurrence.
type inlineRef struct {
	module string
	name   string
	start  int
	end    int
}

// staticImport is one `import { ... } from '<module>'` statement.
type staticImport struct {
	module string
	specs  []ImportSpecifier
	start  int
	end    int
}

// moduleRecord collects bindings hoisted for one module specifier.
type moduleRecord struct {
	// names maps exported name to local name, iterated in byte order.
	names  *treemap.Map
	module string
	first  int
}

// textEdit replaces code[start:end] with text.
type textEdit struct {
	text  string
	start int
	end   int
}

// TransformDynamicImport hoists inline `import("m").Name` type references into
// top-level named imports.
//
// References to one module are merged into one sorted import statement together
// with any existing named import of that module, which is removed from its
// original place. `default` is imported under a generated "__DTS_<n>__" alias.
// Code without inline references is returned unchanged.
func TransformDynamicImport(code string) string {
	var names NameCounter
	return TransformDynamicImportWith(code, &names)
}

// TransformDynamicImportWith is TransformDynamicImport drawing default aliases
// from names, so several texts can share one alias sequence.
func TransformDynamicImportWith(code string, names *NameCounter) string {
	refs := scanInlineRefs(code)
	if len(refs) == 0 {
		return code
	}

	records := make(map[string]*moduleRecord)
	order := make([]*moduleRecord, 0, 4)
	record := func(module string, pos int) *moduleRecord {
		rec, ok := records[module]
		if !ok {
			rec = &moduleRecord{
				module: module,
				names:  treemap.NewWithStringComparator(),
				first:  pos,
			}
			records[module] = rec
			order = append(order, rec)
		}

		return rec
	}

	for _, ref := range refs {
		record(ref.module, ref.start)
	}

	edits := make([]textEdit, 0, len(refs)+2)
	for _, imp := range scanStaticImports(code) {
		rec, ok := records[imp.module]
		if !ok {
			continue
		}

		rec.first = min(rec.first, imp.start)
		for _, spec := range imp.specs {
			if _, found := rec.names.Get(spec.ExportedName); !found {
				rec.names.Put(spec.ExportedName, spec.LocalName)
			}
		}

		edits = append(edits, textEdit{start: imp.start, end: imp.end})
	}

	for _, ref := range refs {
		rec := records[ref.module]
		local, found := rec.names.Get(ref.name)
		if !found {
			local = ref.name
			if ref.name == "default" {
				local = names.nextFree(code)
			}

			rec.names.Put(ref.name, local)
		}

		edits = append(edits, textEdit{start: ref.start, end: ref.end, text: local.(string)})
	}

	slices.SortStableFunc(order, func(a, b *moduleRecord) int {
		return a.first - b.first
	})
	slices.SortFunc(edits, func(a, b textEdit) int {
		return a.start - b.start
	})

	var b strings.Builder
	b.Grow(len(code) + 64*len(order))
	for _, rec := range order {
		writeImportStatement(&b, rec)
	}

	last := 0
	for _, e := range edits {
		b.WriteString(code[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}

	b.WriteString(code[last:])
	return b.String()
}

// writeImportStatement writes one merged import line for rec.
func writeImportStatement(b *strings.Builder, rec *moduleRecord) {
	b.WriteString("import { ")
	i := 0
	rec.names.Each(func(key any, value any) {
		if i > 0 {
			b.WriteString(", ")
		}

		i++
		spec := ImportSpecifier{ExportedName: key.(string), LocalName: value.(string)}
		b.WriteString(spec.String())
	})
	b.WriteString(" } from '")
	b.WriteString(rec.module)
	b.WriteString("';\n")
}

// scanInlineRefs finds every `import("<module>").<identifier>` occurrence in order.
func scanInlineRefs(code string) []inlineRef {
	var refs []inlineRef
	for i := 0; ; {
		idx := strings.Index(code[i:], "import(")
		if idx < 0 {
			return refs
		}

		start := i + idx
		i = start + len("import(")
		if !keywordAt(code, start, "import") {
			continue
		}

		module, j, ok := readQuoted(code, i)
		if !ok || module == "" {
			continue
		}

		if j+1 >= len(code) || code[j] != ')' || code[j+1] != '.' {
			continue
		}

		end := readIdent(code, j+2)
		if end == j+2 {
			continue
		}

		refs = append(refs, inlineRef{
			module: module,
			name:   code[j+2 : end],
			start:  start,
			end:    end,
		})
		i = end
	}
}

// scanStaticImports finds named-only import statements such as
// `import { A, B as C } from 'm';` and `import type { A } from "m"`.
//
// The reported span covers the whole line when the statement is alone on it.
func scanStaticImports(code string) []staticImport {
	var imports []staticImport
	for i := 0; ; {
		idx := strings.Index(code[i:], "import")
		if idx < 0 {
			return imports
		}

		start := i + idx
		i = start + len("import")
		if !keywordAt(code, start, "import") {
			continue
		}

		imp, ok := parseStaticImport(code, start)
		if !ok {
			continue
		}

		imports = append(imports, imp)
		i = imp.end
	}
}

// parseStaticImport parses a named-only import statement starting at start.
func parseStaticImport(code string, start int) (staticImport, bool) {
	i := skipSpaces(code, start+len("import"))
	if keywordAt(code, i, "type") {
		i = skipSpaces(code, i+len("type"))
	}

	if i >= len(code) || code[i] != '{' {
		return staticImport{}, false
	}

	closing := strings.IndexAny(code[i+1:], "{}()")
	if closing < 0 || code[i+1+closing] != '}' {
		return staticImport{}, false
	}

	specs, ok := parseImportList(code[i+1 : i+1+closing])
	if !ok {
		return staticImport{}, false
	}

	j := skipSpaces(code, i+2+closing)
	if !keywordAt(code, j, "from") {
		return staticImport{}, false
	}

	module, end, ok := readQuoted(code, skipSpaces(code, j+len("from")))
	if !ok || module == "" {
		return staticImport{}, false
	}

	if k := skipInlineSpaces(code, end); k < len(code) && code[k] == ';' {
		end = k + 1
	}

	// widen to the whole line when nothing else shares it
	lineStart := strings.LastIndexByte(code[:start], '\n') + 1
	if strings.TrimSpace(code[lineStart:start]) == "" {
		if next := lineEnd(code, end); strings.TrimSpace(code[end:next]) == "" {
			start, end = lineStart, next
		}
	}

	return staticImport{
		module: module,
		specs:  specs,
		start:  start,
		end:    end,
	}, true
}

// parseImportList parses the bindings between the braces of a named import.
func parseImportList(list string) ([]ImportSpecifier, bool) {
	var specs []ImportSpecifier
	for _, entry := range strings.Split(list, ",") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}

		if len(fields) > 1 && fields[0] == "type" {
			fields = fields[1:]
		}

		var spec ImportSpecifier
		switch {
		case len(fields) == 1 && isIdentifier(fields[0]) && fields[0] != "default":
			spec = ImportSpecifier{ExportedName: fields[0], LocalName: fields[0]}
		case len(fields) == 3 && fields[1] == "as" && isIdentifier(fields[0]) && isIdentifier(fields[2]):
			spec = ImportSpecifier{ExportedName: fields[0], LocalName: fields[2]}
		default:
			return nil, false
		}

		specs = append(specs, spec)
	}

	return specs, len(specs) > 0
}

// skipInlineSpaces skips spaces and tabs only.
func skipInlineSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	return i
}
