// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigYAML(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(strings.NewReader(`
root: dist/types
out_dir: dist/clean
entry_file: index.d.ts
include: [src, types/]
exclude:
  - "**/*.test.d.ts"
aliases:
  - find: "^@/(.+)"
    regexp: true
    replacement: /p/src/${1}
  - find: $src
    replacement: /p/src
concurrency: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "dist/types", cfg.Root)
	assert.Equal(t, "dist/clean", cfg.OutDir)
	assert.Equal(t, "index.d.ts", cfg.EntryFile)
	assert.Equal(t, []string{"src", "types/"}, cfg.Include)
	assert.Equal(t, []string{"**/*.test.d.ts"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Concurrency)
	require.Len(t, cfg.Aliases, 2)
	assert.Equal(t, AliasConfig{Find: "^@/(.+)", Regexp: true, Replacement: "/p/src/${1}"}, cfg.Aliases[0])

	rules, err := cfg.AliasRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.NotNil(t, rules[0].Pattern)
	assert.Nil(t, rules[1].Pattern)
}

func TestParseConfigJSON(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(strings.NewReader(`{"root": "types", "aliases": [{"find": "@", "replacement": "/src"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "types", cfg.Root)
	assert.Equal(t, []AliasConfig{{Find: "@", Replacement: "/src"}}, cfg.Aliases)
}

func TestParseConfigEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []string{
		"unknown_field: 1\n",
		"concurrency: -1\n",
		"aliases:\n  - replacement: /p\n",
		"root: [unterminated\n",
	}

	for _, src := range tests {
		_, err := ParseConfig(strings.NewReader(src))
		require.ErrorIs(t, err, ErrInvalidConfig, "source %q", src)
	}
}

func TestConfigAliasRulesInvalidRegexp(t *testing.T) {
	t.Parallel()

	cfg := Config{Aliases: []AliasConfig{{Find: "^(", Regexp: true}}}
	_, err := cfg.AliasRules()
	require.ErrorIs(t, err, ErrInvalidAlias)
}

func TestLoadConfigFileResolvesPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "dtsrewrite.yaml")
	writeTestFile(t, path, "root: types\nout_dir: /abs/out\ntsconfig: tsconfig.json\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "types"), cfg.Root)
	assert.Equal(t, "/abs/out", cfg.OutDir)
	assert.Equal(t, filepath.Join(dir, "tsconfig.json"), cfg.TSConfig)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoadTSConfigAliases(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tsconfig.json")
	writeTestFile(t, path, `{
  // comments and trailing commas are allowed
  "compilerOptions": {
    "baseUrl": ".",
    "paths": {
      "@/*": ["src/*"],
      "@components/*": ["src/components/*", "fallback/*"],
      "config": ["src/config.ts"],
      "empty/*": [],
    },
  },
}`)

	aliases, err := LoadTSConfigAliases(path)
	require.NoError(t, err)

	base := filepath.ToSlash(dir)
	want := []AliasConfig{
		{Find: `^@components/(.+)$`, Replacement: base + "/src/components/${1}", Regexp: true},
		{Find: "config", Replacement: base + "/src/config.ts"},
		{Find: `^@/(.+)$`, Replacement: base + "/src/${1}", Regexp: true},
	}
	assert.Equal(t, want, aliases)

	rules, err := CompileAliases(aliases)
	require.NoError(t, err)

	got := TransformAliasImport(
		base+"/src/index.d.ts",
		"import { B } from '@components/button';\nimport { C } from 'config';\nimport { U } from '@/utils';\n",
		rules,
	)
	assert.Equal(t, "import { B } from './components/button';\nimport { C } from './config';\nimport { U } from './utils';\n", got)
}

func TestLoadTSConfigAliasesErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadTSConfigAliases(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	path := filepath.Join(dir, "bad.json")
	writeTestFile(t, path, `{"compilerOptions": {"paths": 1}}`)
	_, err = LoadTSConfigAliases(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
