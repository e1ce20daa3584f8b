// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "regexp"

// ImportSpecifier is one named binding of an import statement.
type ImportSpecifier struct {
	// ExportedName is the binding name exported by the module.
	ExportedName string `json:"exported_name" yaml:"exported_name"`
	// LocalName is the identifier used in the importing file.
	// It differs from ExportedName only for "default".
	LocalName string `json:"local_name" yaml:"local_name"`
}

// AliasRule is one compiled module-specifier alias.
//
// Rules are tested in slice order and the first match wins.
type AliasRule struct {
	// Pattern is a regular expression matched against the specifier.
	// When nil, Find is used as a literal prefix.
	Pattern *regexp.Regexp
	// Find is a literal alias matched as a whole specifier or as a path prefix.
	Find string
	// Replacement is the target path. Regex rules may reference capture groups
	// with "$1" or "${name}".
	Replacement string
}

// AliasConfig is the serializable form of AliasRule.
type AliasConfig struct {
	// Find is the alias literal, or a regular expression when Regexp is set.
	Find string `json:"find" yaml:"find"`
	// Replacement is the target path template.
	Replacement string `json:"replacement" yaml:"replacement"`
	// Regexp marks Find as a regular expression.
	Regexp bool `json:"regexp,omitempty" yaml:"regexp,omitempty"`
}

// EntryModule is one per-module declaration rolled up into an entry file.
type EntryModule struct {
	// Specifier is the module specifier used by the entry file.
	Specifier string `json:"specifier" yaml:"specifier"`
	// Code is the rewritten declaration text of the module.
	Code string `json:"-" yaml:"-"`
}

// String returns the binding as written inside an import list.
func (s ImportSpecifier) String() string {
	if s.LocalName == "" || s.LocalName == s.ExportedName {
		return s.ExportedName
	}

	return s.ExportedName + " as " + s.LocalName
}
