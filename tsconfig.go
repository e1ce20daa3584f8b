// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
)

// tsconfigFile is the subset of tsconfig.json used for alias derivation.
type tsconfigFile struct {
	CompilerOptions struct {
		Paths   map[string][]string `json:"paths"`
		BaseURL string              `json:"baseUrl"`
	} `json:"compilerOptions"`
}

// LoadTSConfigAliases derives alias configs from compilerOptions.paths of a
// tsconfig file (comments and trailing commas allowed).
//
// "@/*": ["src/*"] becomes a regexp alias `^@/(.+)$` pointing at the absolute
// "src/${1}" under baseUrl. Keys without "*" become literal aliases. Only the
// first target of each key is used. More specific keys are emitted first.
func LoadTSConfigAliases(path string) ([]AliasConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tsconfig: %w", err)
	}

	var cfg tsconfigFile
	if err := json.Unmarshal(jsonc.ToJSON(content), &cfg); err != nil {
		return nil, fmt.Errorf("%w: tsconfig %s: %v", ErrInvalidConfig, path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs tsconfig: %w", err)
	}

	baseDir := filepath.Dir(absPath)
	if cfg.CompilerOptions.BaseURL != "" {
		baseDir = resolveAgainst(baseDir, cfg.CompilerOptions.BaseURL)
	}

	keys := make([]string, 0, len(cfg.CompilerOptions.Paths))
	for key, targets := range cfg.CompilerOptions.Paths {
		if key == "" || len(targets) == 0 || targets[0] == "" {
			continue
		}

		keys = append(keys, key)
	}

	// longer keys are more specific and must be tested first
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}

		return strings.Compare(a, b)
	})

	aliases := make([]AliasConfig, 0, len(keys))
	for _, key := range keys {
		target := cfg.CompilerOptions.Paths[key][0]
		replacement := filepath.ToSlash(resolveAgainst(baseDir, filepath.FromSlash(target)))

		prefix, suffix, wildcard := strings.Cut(key, "*")
		if !wildcard {
			aliases = append(aliases, AliasConfig{
				Find:        key,
				Replacement: replacement,
			})
			continue
		}

		aliases = append(aliases, AliasConfig{
			Find:        "^" + regexp.QuoteMeta(prefix) + "(.+)" + regexp.QuoteMeta(suffix) + "$",
			Replacement: strings.Replace(escapeExpand(replacement), "*", "${1}", 1),
			Regexp:      true,
		})
	}

	return aliases, nil
}

// escapeExpand escapes "$" so a literal path survives regexp template expansion.
func escapeExpand(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
