// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import "errors"

// Sentinel errors for dtsrewrite operations.
var (
	// ErrInvalidAlias indicates malformed alias rule input.
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrInvalidPattern indicates malformed include/exclude glob pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidConfig indicates malformed configuration document.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrNilBatch indicates a nil Batch receiver.
	ErrNilBatch = errors.New("batch is nil")
	// ErrPathOutsideRoot indicates path traversal or non-relative input path.
	ErrPathOutsideRoot = errors.New("path is outside batch root")
)
