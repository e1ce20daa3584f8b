// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the orchestrator configuration document.
//
// YAML and JSON documents are both accepted.
type Config struct {
	// Root is the directory holding generated declaration files.
	Root string `json:"root" yaml:"root"`
	// OutDir receives rewritten files. Empty rewrites in place.
	OutDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`
	// TSConfig optionally points to a tsconfig whose compilerOptions.paths become aliases.
	TSConfig string `json:"tsconfig,omitempty" yaml:"tsconfig,omitempty"`
	// EntryFile is an optional root-relative rolled-up entry declaration to write.
	EntryFile string `json:"entry_file,omitempty" yaml:"entry_file,omitempty"`
	// Include selects root-relative files; directories select their subtree.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	// Exclude removes root-relative files from the selection.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	// Aliases are evaluated before tsconfig-derived aliases.
	Aliases []AliasConfig `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	// Concurrency limits parallel file rewrites. Zero uses the CPU count.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// ParseConfig decodes a configuration document from reader.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.Concurrency < 0 {
		return Config{}, fmt.Errorf("%w: negative concurrency %d", ErrInvalidConfig, cfg.Concurrency)
	}

	for i, alias := range cfg.Aliases {
		if alias.Find == "" {
			return Config{}, fmt.Errorf("%w: alias %d: empty find", ErrInvalidConfig, i)
		}
	}

	return cfg, nil
}

// LoadConfigFile reads and parses a configuration file.
//
// Relative Root, OutDir and TSConfig paths are resolved against the directory
// of the configuration file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	base := filepath.Dir(path)
	cfg.Root = resolveAgainst(base, cfg.Root)
	cfg.OutDir = resolveAgainst(base, cfg.OutDir)
	cfg.TSConfig = resolveAgainst(base, cfg.TSConfig)

	return cfg, nil
}

// AliasRules compiles configured aliases followed by tsconfig-derived aliases.
func (c Config) AliasRules() ([]AliasRule, error) {
	configured, err := CompileAliases(c.Aliases)
	if err != nil {
		return nil, err
	}

	if c.TSConfig == "" {
		return configured, nil
	}

	fromTSConfig, err := LoadTSConfigAliases(c.TSConfig)
	if err != nil {
		return nil, err
	}

	compiled, err := CompileAliases(fromTSConfig)
	if err != nil {
		return nil, fmt.Errorf("tsconfig aliases: %w", err)
	}

	return MergeAliases(configured, compiled), nil
}

// resolveAgainst joins a relative path onto base and leaves empty or absolute paths alone.
func resolveAgainst(base string, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
