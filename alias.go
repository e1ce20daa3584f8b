// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// specifierRE finds module specifiers in `from '<spec>'` and `import('<spec>')` positions.
var specifierRE = regexp.MustCompile(`(\bfrom\s*|\bimport\(\s*)(['"])([^'"\r\n]+)(['"])`)

// TransformAliasImport rewrites aliased module specifiers in code to paths
// relative to the directory of filePath.
//
// The first rule matching a specifier wins. Unmatched specifiers, and
// specifiers whose target has no relative form from filePath, are kept
// byte-identical. The quote character of each specifier is preserved.
func TransformAliasImport(filePath string, code string, aliases []AliasRule) string {
	if len(aliases) == 0 {
		return code
	}

	matches := specifierRE.FindAllStringSubmatchIndex(code, -1)
	if len(matches) == 0 {
		return code
	}

	fileDir := dirSlash(toSlash(filePath))

	var b strings.Builder
	last := 0
	for _, m := range matches {
		openQuote, closeQuote := code[m[4]:m[5]], code[m[8]:m[9]]
		if openQuote != closeQuote {
			continue
		}

		// dynamic form must be closed right after the specifier
		if strings.HasPrefix(code[m[2]:m[3]], "import") {
			if j := skipSpaces(code, m[9]); j >= len(code) || code[j] != ')' {
				continue
			}
		}

		spec := code[m[6]:m[7]]
		resolved, ok := resolveAliasSpecifier(fileDir, spec, aliases)
		if !ok || resolved == spec {
			continue
		}

		b.WriteString(code[last:m[6]])
		b.WriteString(resolved)
		last = m[7]
	}

	if last == 0 {
		return code
	}

	b.WriteString(code[last:])
	return b.String()
}

// resolveAliasSpecifier maps one specifier through the first matching alias rule.
func resolveAliasSpecifier(fileDir string, spec string, aliases []AliasRule) (string, bool) {
	for i := range aliases {
		target, ok := aliases[i].apply(spec)
		if !ok {
			continue
		}

		target = toSlash(target)
		if !isAbsSlash(target) {
			target = path.Join(fileDir, target)
		}

		rel, ok := relSlash(fileDir, target)
		if !ok {
			return spec, false
		}

		return relativeSpecifier(rel), true
	}

	return spec, false
}

// relativeSpecifier turns a relative path into a module specifier.
func relativeSpecifier(rel string) string {
	rel = trimSourceExt(rel)

	switch {
	case rel == "." || rel == "..":
		return rel
	case strings.HasPrefix(rel, "../"):
		return rel
	default:
		return "./" + rel
	}
}

// apply returns the alias target for spec when the rule matches it.
func (r *AliasRule) apply(spec string) (string, bool) {
	if r.Pattern != nil {
		loc := r.Pattern.FindStringSubmatchIndex(spec)
		if loc == nil {
			return "", false
		}

		expanded := string(r.Pattern.ExpandString(nil, r.Replacement, spec, loc))
		matched := spec[loc[0]:loc[1]]
		if strings.HasSuffix(matched, "/") && !strings.HasSuffix(expanded, "/") && loc[1] < len(spec) {
			expanded += "/"
		}

		return spec[:loc[0]] + expanded + spec[loc[1]:], true
	}

	if r.Find == "" {
		return "", false
	}

	switch {
	case spec == r.Find:
		return r.Replacement, true
	case strings.HasSuffix(r.Find, "/") && strings.HasPrefix(spec, r.Find):
		return joinReplacement(r.Replacement, spec[len(r.Find):]), true
	case strings.HasPrefix(spec, r.Find+"/"):
		return joinReplacement(r.Replacement, spec[len(r.Find)+1:]), true
	}

	return "", false
}

// joinReplacement appends a specifier remainder to a replacement path.
func joinReplacement(replacement string, rest string) string {
	if rest == "" {
		return replacement
	}

	return strings.TrimSuffix(replacement, "/") + "/" + rest
}

// CompileAliases compiles serializable alias configs into ordered rules.
func CompileAliases(configs []AliasConfig) ([]AliasRule, error) {
	rules := make([]AliasRule, 0, len(configs))
	for i, cfg := range configs {
		if cfg.Find == "" {
			return nil, fmt.Errorf("%w: rule %d: empty find", ErrInvalidAlias, i)
		}

		rule := AliasRule{
			Find:        cfg.Find,
			Replacement: cfg.Replacement,
		}

		if cfg.Regexp {
			re, err := regexp.Compile(cfg.Find)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %d: compile %q: %v", ErrInvalidAlias, i, cfg.Find, err)
			}

			rule.Pattern = re
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
