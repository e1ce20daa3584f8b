// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "strings"

// RollupEntry synthesizes an entry declaration that re-exports every module in order.
//
// Star re-exports never carry a default binding, so the first module that
// re-exports something as default also gets an explicit `export { default }`.
func RollupEntry(modules []EntryModule) string {
	var b strings.Builder
	hasDefault := false

	for _, mod := range modules {
		if mod.Specifier == "" {
			continue
		}

		b.WriteString("export * from '")
		b.WriteString(mod.Specifier)
		b.WriteString("';\n")

		if !hasDefault && HasExportDefault(mod.Code) {
			hasDefault = true
			b.WriteString("export { default } from '")
			b.WriteString(mod.Specifier)
			b.WriteString("';\n")
		}
	}

	return b.String()
}
