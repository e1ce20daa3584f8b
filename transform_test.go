// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransformPipeline(t *testing.T) {
	t.Parallel()

	aliases := []AliasRule{
		{Pattern: regexp.MustCompile(`^@/(.+)`), Replacement: "/p/src/${1}"},
	}

	in := "import \"@/themes/common.scss\";\n" +
		"import type { Base } from \"@/types\";\n" +
		"export declare const a: import(\"@/components/button\").ButtonProps<Base>;\n" +
		"export declare const b: import(\"vue\").default;\n"

	want := "import { ButtonProps } from './components/button';\n" +
		"import { default as __DTS_1__ } from 'vue';\n" +
		"import type { Base } from \"./types\";\n" +
		"export declare const a: ButtonProps<Base>;\n" +
		"export declare const b: __DTS_1__;\n"

	got := Transform("/p/src/index.d.ts", in, aliases)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Transform mismatch (-want +got):\n%s", diff)
	}

	if again := Transform("/p/src/index.d.ts", got, aliases); again != got {
		t.Fatalf("second pass changed output:\n%s", cmp.Diff(got, again))
	}
}

func TestRollupEntry(t *testing.T) {
	t.Parallel()

	got := RollupEntry([]EntryModule{
		{Specifier: "./button", Code: "export declare const Button: 1;\n"},
		{Specifier: "./sdk", Code: "export { sdk as default } from './sdk-impl';\n"},
		{Specifier: "./other", Code: "export { other as default } from './x';\n"},
		{Specifier: "", Code: "export { skipped as default } from './y';\n"},
	})

	want := "export * from './button';\n" +
		"export * from './sdk';\n" +
		"export { default } from './sdk';\n" +
		"export * from './other';\n"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RollupEntry mismatch (-want +got):\n%s", diff)
	}

	if got := RollupEntry(nil); got != "" {
		t.Fatalf("RollupEntry(nil)=%q, want empty", got)
	}
}

func TestMergeAliases(t *testing.T) {
	t.Parallel()

	a := []AliasRule{{Find: "@a", Replacement: "/a"}}
	b := []AliasRule{{Find: "@b", Replacement: "/b"}, {Find: "@c", Replacement: "/c"}}

	merged := MergeAliases(a, nil, b)
	if len(merged) != 3 {
		t.Fatalf("len(merged)=%d, want 3", len(merged))
	}

	if merged[0].Find != "@a" || merged[1].Find != "@b" || merged[2].Find != "@c" {
		t.Fatalf("unexpected merged order: %+v", merged)
	}

	// Ensure result does not alias input backing arrays.
	b[0].Find = "mutated"
	if merged[1].Find != "@b" {
		t.Fatalf("merged slice was unexpectedly aliased")
	}
}
