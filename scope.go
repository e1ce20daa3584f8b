// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultScopeCacheSize = 4096

// ScopeOptions configures file selection.
type ScopeOptions struct {
	// Include lists paths or globs selecting files. Empty means everything.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	// Exclude lists paths or globs removed from the selection.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	// CacheSize bounds the decision cache. Zero uses the default, negative disables caching.
	CacheSize int `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
}

// Scope decides which root-relative paths are selected by include/exclude globs.
//
// Directory-like entries ("src", "types/") are normalized with NormalizeGlob so
// they select the whole subtree. Scope is safe for concurrent use.
type Scope struct {
	cache   *lru.Cache[string, bool]
	include []scopePattern
	exclude []scopePattern
}

// scopePattern is one normalized glob.
type scopePattern struct {
	// glob is the doublestar pattern; empty when literal is used.
	glob string
	// literal matches exactly without glob evaluation.
	literal string
}

// NewScope normalizes and validates include/exclude patterns.
func NewScope(opts ScopeOptions) (*Scope, error) {
	include, err := compileScopePatterns(opts.Include)
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}

	exclude, err := compileScopePatterns(opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	s := &Scope{
		include: include,
		exclude: exclude,
	}

	size := opts.CacheSize
	if size == 0 {
		size = defaultScopeCacheSize
	}

	if size > 0 {
		cache, err := lru.New[string, bool](size)
		if err != nil {
			return nil, fmt.Errorf("scope cache: %w", err)
		}

		s.cache = cache
	}

	return s, nil
}

// Included reports whether relPath is selected.
func (s *Scope) Included(relPath string) bool {
	if s == nil {
		return true
	}

	candidate := normalizeRelPath(relPath)
	if s.cache != nil {
		if included, ok := s.cache.Get(candidate); ok {
			return included
		}
	}

	included := s.decide(candidate)
	if s.cache != nil {
		s.cache.Add(candidate, included)
	}

	return included
}

// Excluded reports whether relPath is not selected.
func (s *Scope) Excluded(relPath string) bool {
	return !s.Included(relPath)
}

// decide evaluates patterns for a normalized candidate; exclusion wins.
func (s *Scope) decide(candidate string) bool {
	if candidate == "" {
		return false
	}

	for i := range s.exclude {
		if s.exclude[i].matches(candidate) {
			return false
		}
	}

	if len(s.include) == 0 {
		return true
	}

	for i := range s.include {
		if s.include[i].matches(candidate) {
			return true
		}
	}

	return false
}

// matches reports whether the pattern selects candidate.
func (p *scopePattern) matches(candidate string) bool {
	if p.glob == "" {
		return candidate == p.literal
	}

	return doublestar.MatchUnvalidated(p.glob, candidate)
}

// compileScopePatterns normalizes and validates patterns in input order.
func compileScopePatterns(patterns []string) ([]scopePattern, error) {
	out := make([]scopePattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		glob := toSlash(NormalizeGlob(toSlash(raw)))
		glob = strings.TrimPrefix(glob, "./")
		glob = strings.TrimPrefix(glob, "/")
		if glob == "" {
			return nil, fmt.Errorf("%w: empty after normalization (%q)", ErrInvalidPattern, raw)
		}

		if !patternHasGlobMeta(glob) {
			out = append(out, scopePattern{literal: normalizeRelPath(glob)})
			continue
		}

		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
		}

		out = append(out, scopePattern{glob: glob})
	}

	return out, nil
}
