// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

// Transform runs the per-file rewrite pipeline on one declaration text:
// dynamic import hoisting, alias resolution, then pure import removal.
func Transform(filePath string, code string, aliases []AliasRule) string {
	code = TransformDynamicImport(code)
	code = TransformAliasImport(filePath, code, aliases)
	return RemovePureImport(code)
}
