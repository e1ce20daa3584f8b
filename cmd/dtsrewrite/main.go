// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dtsrewrite

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/woozymasta/dtsrewrite"
)

const configEnv = "DTSREWRITE_CONFIG"

func main() {
	_ = godotenv.Load()
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runWithArgs(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// options are the parsed command line flags.
type options struct {
	configPath string
	root       string
	outDir     string
	entry      string
	tsconfig   string
	stdinPath  string
	jobs       int
	verbose    bool
}

func runWithArgs(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dtsrewrite", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", os.Getenv(configEnv), "path to YAML/JSON config (env "+configEnv+")")
	fs.StringVar(&opts.root, "root", "", "directory with generated declaration files")
	fs.StringVar(&opts.outDir, "out", "", "output directory (default: rewrite in place)")
	fs.StringVar(&opts.entry, "entry", "", "root-relative rolled-up entry declaration to write")
	fs.StringVar(&opts.tsconfig, "tsconfig", "", "tsconfig whose compilerOptions.paths become aliases")
	fs.StringVar(&opts.stdinPath, "stdin-path", "index.d.ts", "file path used for alias resolution of stdin input")
	fs.IntVar(&opts.jobs, "j", 0, "parallel rewrites (default: CPU count)")
	fs.BoolVar(&opts.verbose, "v", false, "log every rewritten file")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s [options]\n\n", fs.Name())
		_, _ = fmt.Fprintln(stderr, "Rewrites generated TypeScript declarations into alias-free, self-contained files.")
		_, _ = fmt.Fprintln(stderr, "Without -root or -config, reads one declaration from stdin and writes it to stdout.")
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 0 {
		_, _ = fmt.Fprintln(stderr, "error: unexpected arguments")
		fs.Usage()
		return 2
	}

	logger := log.New(stderr, "dtsrewrite: ", 0)

	cfg, err := loadConfig(opts)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	aliases, err := cfg.AliasRules()
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	if cfg.Root == "" {
		return rewriteStream(opts.stdinPath, aliases, stdin, stdout, logger)
	}

	scope, err := dtsrewrite.NewScope(dtsrewrite.ScopeOptions{
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	batchOpts := dtsrewrite.BatchOptions{
		Root:        cfg.Root,
		OutDir:      cfg.OutDir,
		EntryFile:   cfg.EntryFile,
		Aliases:     aliases,
		Scope:       scope,
		Concurrency: cfg.Concurrency,
	}
	if opts.verbose {
		batchOpts.Logger = logger
	}

	batch, err := dtsrewrite.NewBatch(batchOpts)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	report, err := batch.Run(ctx)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	logger.Printf("rewrote %d declaration files in %s", len(report.Files), cfg.Root)
	return 0
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(opts options) (dtsrewrite.Config, error) {
	var cfg dtsrewrite.Config
	if opts.configPath != "" {
		loaded, err := dtsrewrite.LoadConfigFile(opts.configPath)
		if err != nil {
			return dtsrewrite.Config{}, err
		}

		cfg = loaded
	}

	if opts.root != "" {
		cfg.Root = opts.root
	}

	if opts.outDir != "" {
		cfg.OutDir = opts.outDir
	}

	if opts.entry != "" {
		cfg.EntryFile = opts.entry
	}

	if opts.tsconfig != "" {
		cfg.TSConfig = opts.tsconfig
	}

	if opts.jobs > 0 {
		cfg.Concurrency = opts.jobs
	}

	return cfg, nil
}

// rewriteStream rewrites one declaration read from stdin.
func rewriteStream(filePath string, aliases []dtsrewrite.AliasRule, stdin io.Reader, stdout io.Writer, logger *log.Logger) int {
	content, err := io.ReadAll(stdin)
	if err != nil {
		logger.Printf("error: read stdin: %v", err)
		return 1
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	if _, err := io.WriteString(stdout, dtsrewrite.Transform(absPath, string(content), aliases)); err != nil {
		logger.Printf("error: write stdout: %v", err)
		return 1
	}

	return 0
}
