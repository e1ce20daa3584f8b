// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

// MergeAliases merges alias tables preserving input order, so earlier tables
// take precedence under first-match-wins evaluation.
func MergeAliases(sets ...[]AliasRule) []AliasRule {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]AliasRule, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
