// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchRewritesTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(root, "index.d.ts"), "export { sdk as default } from './sdk';\n")
	writeTestFile(t, filepath.Join(root, "sdk.d.ts"),
		"import '@/style.css';\nexport declare const sdk: import('@/components/button').Button;\n")
	writeTestFile(t, filepath.Join(root, "components", "button.d.ts"), "export declare class Button {}\n")
	writeTestFile(t, filepath.Join(root, "internal", "secret.d.ts"), "export {};\n")
	writeTestFile(t, filepath.Join(root, "readme.md"), "# not a declaration\n")

	scope, err := NewScope(ScopeOptions{Exclude: []string{"internal"}})
	require.NoError(t, err)

	var logs bytes.Buffer
	batch, err := NewBatch(BatchOptions{
		Root:        root,
		OutDir:      out,
		EntryFile:   "types/all.d.ts",
		Scope:       scope,
		Logger:      log.New(&logs, "", 0),
		Concurrency: 2,
		Aliases: []AliasRule{
			{Pattern: regexp.MustCompile(`^@/(.+)`), Replacement: filepath.ToSlash(root) + "/${1}"},
		},
	})
	require.NoError(t, err)

	report, err := batch.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"components/button.d.ts", "index.d.ts", "sdk.d.ts"}, report.Files)
	assert.Equal(t, "types/all.d.ts", report.Entry)

	sdk := readTestFile(t, filepath.Join(out, "sdk.d.ts"))
	assert.Equal(t, "import { Button } from './components/button';\nexport declare const sdk: Button;\n", sdk)

	assert.NoFileExists(t, filepath.Join(out, "internal", "secret.d.ts"))
	assert.NoFileExists(t, filepath.Join(out, "readme.md"))

	entry := readTestFile(t, filepath.Join(out, "types", "all.d.ts"))
	assert.Equal(t,
		"export * from '../components/button';\n"+
			"export * from '../index';\n"+
			"export { default } from '../index';\n"+
			"export * from '../sdk';\n",
		entry,
	)

	assert.Contains(t, logs.String(), "rewrote sdk.d.ts")
	assert.Contains(t, logs.String(), "wrote entry types/all.d.ts (3 modules)")
}

func TestBatchInPlace(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "a.d.ts")
	writeTestFile(t, path, "x: import('vue').Ref<number>;\n")

	batch, err := NewBatch(BatchOptions{Root: root})
	require.NoError(t, err)

	report, err := batch.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.d.ts"}, report.Files)
	assert.Empty(t, report.Entry)
	assert.Equal(t, "import { Ref } from 'vue';\nx: Ref<number>;\n", readTestFile(t, path))
}

func TestBatchSkipsNestedOutDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.d.ts"), "export {};\n")
	writeTestFile(t, filepath.Join(root, "out", "stale.d.ts"), "export {};\n")

	batch, err := NewBatch(BatchOptions{Root: root, OutDir: filepath.Join(root, "out")})
	require.NoError(t, err)

	report, err := batch.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.d.ts"}, report.Files)
}

func TestBatchCanceled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.d.ts"), "export {};\n")

	batch, err := NewBatch(BatchOptions{Root: root})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = batch.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewBatchValidation(t *testing.T) {
	t.Parallel()

	_, err := NewBatch(BatchOptions{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	for _, entry := range []string{"../x.d.ts", "/abs.d.ts", "..", "a/../../b.d.ts"} {
		_, err := NewBatch(BatchOptions{Root: t.TempDir(), EntryFile: entry})
		require.ErrorIs(t, err, ErrPathOutsideRoot, "entry %q", entry)
	}

	var nilBatch *Batch
	_, err = nilBatch.Run(context.Background())
	require.ErrorIs(t, err, ErrNilBatch)
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}
