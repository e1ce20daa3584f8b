// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

/*
Package dtsrewrite rewrites generated TypeScript declaration text into clean, self-contained,
alias-free declarations suitable for distribution.

All transforms work on raw text with targeted scanning instead of a syntax tree. They never fail:
unmatched input passes through unchanged.

Per-file flow (`Transform` runs all three):
  - hoist inline `import("m").Name` references into top-level named imports (`TransformDynamicImport`)
  - rewrite aliased module specifiers to relative paths (`TransformAliasImport`)
  - drop side-effect-only imports (`RemovePureImport`)

Supporting pieces:
  - normalize include/exclude globs (`NormalizeGlob`) and select files (`NewScope`)
  - detect default re-exports (`HasExportDefault`) and synthesize entry files (`RollupEntry`)
  - compile alias tables (`CompileAliases`, `LoadTSConfigAliases`, `MergeAliases`)
  - load orchestrator settings (`ParseConfig` / `LoadConfigFile`)
  - rewrite a directory tree concurrently (`NewBatch`)
*/
package dtsrewrite
