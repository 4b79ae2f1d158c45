package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into dataset, split, behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors returned by ParseFlags after printing help or version.
// Callers should exit successfully on either.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// ParseFlags parses args (normally os.Args[1:]) into cfg. On --help or
// --version it prints to stderr/stdout and returns ErrHelp or ErrVersion.
// On error it returns non-nil (e.g. unknown flag, malformed ratio).
func ParseFlags(cfg *Config, version string, args []string) error {
	return parseFlags(cfg, version, args, os.Stdout, os.Stderr)
}

func parseFlags(cfg *Config, version string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("imgmanifest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineDatasetFlags(fs, cfg)
	defineSplitFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(stderr, version)
		return ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(stdout, "imgmanifest v"+version)
		return ErrVersion
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineDatasetFlags registers --root, --train, --test, --outDir.
func defineDatasetFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Dataset root directory (required)")
	fs.StringVar(&cfg.TrainSplit, "train", cfg.TrainSplit, "Train split directory name under root")
	fs.StringVar(&cfg.TestSplit, "test", cfg.TestSplit, "Test split directory name under root")
	fs.StringVar(&cfg.OutDir, "outDir", cfg.OutDir, "Output directory for the CSV tables")
}

// defineSplitFlags registers --val_ratio and --seed.
func defineSplitFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&ratioValue{&cfg.ValRatio}, "val_ratio", "Fraction of each train label proposed as val (0-1 or 0-100%)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the deterministic shuffle")
}

// defineBehaviorFlags registers --verify, dry-run and check.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Verify, "verify", false, "Sniff image content and warn on mismatches")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Scan and split without writing files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Inspect the dataset layout and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs accepts the dataset root as a single positional
// argument when --root was not given.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch {
	case len(args) == 0:
	case len(args) == 1 && cfg.Root == "":
		cfg.Root = args[0]
	default:
		return fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}
	cfg.Root = NormalizeDirArg(cfg.Root)
	cfg.OutDir = NormalizeDirArg(cfg.OutDir)
	return nil
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "imgmanifest v" + version + " - image dataset manifest and split proposal"},
		{"", ""},
		{"  imgmanifest [OPTIONS] --root <dir>", ""},
		{"", ""},
		{"Dataset", ""},
		{"  --root <dir>", "Dataset root directory (required)"},
		{"  --train <name>", "Train split directory (default: train)"},
		{"  --test <name>", "Test split directory (default: test)"},
		{"  --outDir <dir>", "Output directory (default: .)"},
		{"", ""},
		{"Split proposal", ""},
		{"  --val_ratio <r>", "Val fraction per train label (default: 0.2)"},
		{"  --seed <n>", "Shuffle seed (default: 42)"},
		{"", ""},
		{"Behavior", ""},
		{"  --verify", "Sniff image content, warn on mismatches"},
		{"  -d, --dry-run", "Scan and split without writing files"},
		{"  -c, --check", "Inspect the dataset layout and exit"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Outputs", ""},
		{"  dataset_index.csv", "split,label,path"},
		{"  class_counts.csv", "split,<label>... (one row per split)"},
		{"  proposed_train_val_split.csv", "split,label,path,proposed_subset"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// ratioValue adapts a float64 fraction to flag.Var. It accepts "0.2" or
// "20%".
type ratioValue struct{ p *float64 }

func (r *ratioValue) String() string {
	if r.p == nil {
		return ""
	}
	return strconv.FormatFloat(*r.p, 'g', -1, 64)
}

func (r *ratioValue) Set(s string) error {
	v, err := ParseRatio(s)
	if err != nil {
		return err
	}
	*r.p = v
	return nil
}

// ParseRatio parses a fraction ("0.25") or a percentage ("25%") and returns
// the fraction. Range checking is left to Validate.
func ParseRatio(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	pct := strings.HasSuffix(raw, "%")
	if pct {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %q (use a fraction like 0.2 or a percentage like 20%%)", s)
	}
	if pct {
		v /= 100
	}
	return v, nil
}
