// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package dtsrewrite

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures a directory rewrite.
type BatchOptions struct {
	// Scope selects root-relative files. Nil selects every declaration file.
	Scope *Scope
	// Logger receives progress messages. Nil disables logging.
	Logger *log.Logger
	// Root is the directory holding generated declaration files.
	Root string
	// OutDir receives rewritten files. Empty rewrites in place.
	OutDir string
	// EntryFile is an optional root-relative entry declaration rolled up from all rewritten files.
	EntryFile string
	// Aliases are applied to every file in order.
	Aliases []AliasRule
	// Concurrency limits parallel rewrites. Zero uses the CPU count.
	Concurrency int
}

// Report summarizes one Batch run.
type Report struct {
	// Files are rewritten root-relative slash paths in sorted order.
	Files []string `json:"files" yaml:"files"`
	// Entry is the root-relative entry file written, empty when none.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`
}

// Batch rewrites every selected declaration file under a root directory.
//
// Each file is transformed independently; files are processed concurrently.
type Batch struct {
	scope       *Scope
	logger      *log.Logger
	root        string
	outDir      string
	entryFile   string
	aliases     []AliasRule
	concurrency int
}

// NewBatch validates options and creates a Batch.
func NewBatch(opts BatchOptions) (*Batch, error) {
	if strings.TrimSpace(opts.Root) == "" {
		return nil, fmt.Errorf("%w: empty root", ErrInvalidConfig)
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	outDir := root
	if opts.OutDir != "" {
		outDir, err = filepath.Abs(opts.OutDir)
		if err != nil {
			return nil, fmt.Errorf("abs out dir: %w", err)
		}
	}

	entryFile := ""
	if strings.TrimSpace(opts.EntryFile) != "" {
		entryFile, err = cleanRelPath(opts.EntryFile)
		if err != nil {
			return nil, fmt.Errorf("entry file %q: %w", opts.EntryFile, err)
		}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	return &Batch{
		scope:       opts.Scope,
		logger:      opts.Logger,
		root:        root,
		outDir:      outDir,
		entryFile:   entryFile,
		aliases:     opts.Aliases,
		concurrency: concurrency,
	}, nil
}

// Run rewrites selected files and writes the optional entry file.
func (b *Batch) Run(ctx context.Context) (Report, error) {
	if b == nil {
		return Report{}, ErrNilBatch
	}

	files, err := b.collect()
	if err != nil {
		return Report{}, err
	}

	codes := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, rel := range files {
		i, rel := i, rel
		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			code, err := b.rewriteFile(rel)
			if err != nil {
				return err
			}

			codes[i] = code
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{Files: files}
	if b.entryFile == "" {
		return report, nil
	}

	if err := b.writeEntry(files, codes); err != nil {
		return Report{}, err
	}

	report.Entry = b.entryFile
	return report, nil
}

// collect walks root and returns selected declaration files as sorted relative paths.
func (b *Batch) collect() ([]string, error) {
	var files []string
	err := filepath.WalkDir(b.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// a nested output directory must not be fed back as input
			if p != b.root && b.outDir != b.root && p == b.outDir {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || !IsDeclarationFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(b.root, p)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if rel == b.entryFile || !b.scope.Included(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", b.root, err)
	}

	slices.Sort(files)
	return files, nil
}

// rewriteFile transforms one root-relative file and writes the result.
func (b *Batch) rewriteFile(rel string) (string, error) {
	src := filepath.Join(b.root, filepath.FromSlash(rel))
	content, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}

	code := Transform(src, string(content), b.aliases)

	dst := filepath.Join(b.outDir, filepath.FromSlash(rel))
	if err := writeFile(dst, code); err != nil {
		return "", err
	}

	b.logf("rewrote %s", rel)
	return code, nil
}

// writeEntry writes the rolled-up entry declaration for rewritten files.
func (b *Batch) writeEntry(files []string, codes []string) error {
	entryDir := path.Dir(b.entryFile)
	modules := make([]EntryModule, 0, len(files))
	for i, rel := range files {
		target := declarationStem(rel)
		spec, ok := relSlash(entryDir, target)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathOutsideRoot, rel)
		}

		modules = append(modules, EntryModule{
			Specifier: relativeSpecifier(spec),
			Code:      codes[i],
		})
	}

	dst := filepath.Join(b.outDir, filepath.FromSlash(b.entryFile))
	if err := writeFile(dst, RollupEntry(modules)); err != nil {
		return err
	}

	b.logf("wrote entry %s (%d modules)", b.entryFile, len(modules))
	return nil
}

// logf logs through the optional logger.
func (b *Batch) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

// writeFile writes content creating parent directories.
func writeFile(dst string, content string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", dst, err)
	}

	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	return nil
}

// cleanRelPath normalizes and validates one root-relative path.
func cleanRelPath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return "", ErrPathOutsideRoot
	}

	p := filepath.ToSlash(trimmed)
	if strings.HasPrefix(p, "/") {
		return "", ErrPathOutsideRoot
	}

	p = path.Clean(p)
	if p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return "", ErrPathOutsideRoot
	}

	return p, nil
}
