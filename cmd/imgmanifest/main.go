// Command imgmanifest indexes an image classification dataset laid out as
// <root>/<split>/<class>/<image>, writes per-split class counts and proposes
// a seeded, stratified train/val split.
//
// It parses flags, validates configuration and either runs layout
// diagnostics (--check) or the manifest pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/backmassage/imgmanifest/internal/check"
	"github.com/backmassage/imgmanifest/internal/config"
	"github.com/backmassage/imgmanifest/internal/display"
	"github.com/backmassage/imgmanifest/internal/logging"
	"github.com/backmassage/imgmanifest/internal/pipeline"
	"github.com/backmassage/imgmanifest/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bootstrap: no logger yet, errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, args); err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "imgmanifest: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "imgmanifest: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imgmanifest: %v\n", err)
		return 1
	}
	defer log.Close()

	if term.IsTerminal(os.Stdout) {
		display.PrintBanner(os.Stdout)
	}

	src := osfs.New(cfg.Root)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, src, log) {
			return 1
		}
		return 0
	}

	log.Info("=== imgmanifest v%s (%s) ===", version, commit)
	log.Info("Root: %s", cfg.Root)
	log.Info("Out:  %s", cfg.OutDir)
	log.Debug("Splits: %s, %s  val_ratio=%v seed=%d", cfg.TrainSplit, cfg.TestSplit, cfg.ValRatio, cfg.Seed)

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %s: %v", cfg.OutDir, err)
			return 1
		}
	}
	dst := osfs.New(cfg.OutDir)

	// Cancel on SIGINT/SIGTERM; writes check the context before each file.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := pipeline.Run(ctx, &cfg, src, dst, log)
	if err != nil {
		log.Error("%v", err)
		if len(stats.Written) > 0 {
			log.Warn("Already written: %s", strings.Join(stats.Written, ", "))
		}
		return 1
	}
	log.Debug("%d images, %d files written", stats.Images, len(stats.Written))
	return 0
}
