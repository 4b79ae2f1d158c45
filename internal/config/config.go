// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Dataset layout.
	Root       string // Required.
	TrainSplit string // Default: "train".
	TestSplit  string // Default: "test".

	// Output.
	OutDir string // Default: ".". Created if absent.

	// Split proposal.
	ValRatio float64 // Default: 0.2. Fraction in [0, 1].
	Seed     int64   // Default: 42.

	// Behavior flags.
	Verify    bool // Sniff image content and warn on mismatches.
	DryRun    bool // Scan, report and split without writing.
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		TrainSplit: "train",
		TestSplit:  "test",
		OutDir:     ".",
		ValRatio:   0.2,
		Seed:       42,
		ColorMode:  ColorAuto,
	}
}

// Splits returns the split directory names in scan order.
func (c *Config) Splits() []string {
	return []string{c.TrainSplit, c.TestSplit}
}

// NormalizeDirArg strips trailing slashes from a directory path. A path made
// only of slashes is the filesystem root "/".
func NormalizeDirArg(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// Validate checks the split proposal parameters, split names and color mode,
// and requires a dataset root.
func (c *Config) Validate() error {
	if math.IsNaN(c.ValRatio) || c.ValRatio < 0 || c.ValRatio > 1 {
		return fmt.Errorf("invalid val_ratio %v (use a fraction between 0 and 1)", c.ValRatio)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := validateSplitName("train", c.TrainSplit); err != nil {
		return err
	}
	if err := validateSplitName("test", c.TestSplit); err != nil {
		return err
	}
	if c.TrainSplit == c.TestSplit {
		return fmt.Errorf("train and test splits must differ (both %q)", c.TrainSplit)
	}

	if c.Root == "" {
		return errors.New("--root is required")
	}
	if c.OutDir == "" {
		return errors.New("--outDir must not be empty")
	}
	return nil
}

// validateSplitName requires a non-empty relative path that stays under root.
func validateSplitName(flag, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("--%s must not be empty", flag)
	}
	clean := filepath.Clean(name)
	if filepath.IsAbs(name) || clean == "." || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("--%s must be a directory under root (got %q)", flag, name)
	}
	return nil
}
