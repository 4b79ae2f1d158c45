package config

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/pets", "/data/pets"},
		{"single trailing slash", "/data/pets/", "/data/pets"},
		{"multiple trailing slashes", "/data/pets///", "/data/pets"},
		{"root path", "/", "/"},
		{"repeated root slashes", "///", "/"},
		{"relative path", "output", "output"},
		{"relative with slash", "output/", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Root = "/data/pets"
	return cfg
}

func TestValidate_ValRatio(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		wantErr bool
	}{
		{"zero is valid", 0, false},
		{"default is valid", 0.2, false},
		{"one is valid", 1, false},
		{"negative is invalid", -0.1, true},
		{"above one is invalid", 1.5, true},
		{"NaN is invalid", math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ValRatio = tt.ratio
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SplitNames(t *testing.T) {
	tests := []struct {
		name    string
		train   string
		test    string
		wantErr bool
	}{
		{"defaults", "train", "test", false},
		{"custom names", "training", "holdout", false},
		{"nested relative", "splits/train", "splits/test", false},
		{"empty train", "", "test", true},
		{"blank test", "  ", "train", true},
		{"same name", "data", "data", true},
		{"parent escape", "../train", "test", true},
		{"dot", ".", "test", true},
		{"absolute", "/train", "test", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.TrainSplit = tt.train
			cfg.TestSplit = tt.test
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	cfg := validConfig()
	cfg.ColorMode = "sometimes"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RequiresRoot(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate())

	cfg.Root = "data"
	assert.NoError(t, cfg.Validate())

	cfg.OutDir = ""
	assert.Error(t, cfg.Validate())
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "train", cfg.TrainSplit)
	assert.Equal(t, "test", cfg.TestSplit)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, 0.2, cfg.ValRatio)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verify)
	assert.Equal(t, []string{"train", "test"}, cfg.Splits())
}

func TestParseFlags_AllOptions(t *testing.T) {
	cfg := DefaultConfig()
	var stdout, stderr bytes.Buffer
	err := parseFlags(&cfg, "1.0.0", []string{
		"--root", "data/",
		"--train", "training",
		"--test", "holdout",
		"--outDir", "out/",
		"--val_ratio", "0.34",
		"--seed", "7",
		"--verify",
		"-d",
		"--no-color",
		"-v",
		"-l", "run.log",
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Root)
	assert.Equal(t, "training", cfg.TrainSplit)
	assert.Equal(t, "holdout", cfg.TestSplit)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 0.34, cfg.ValRatio)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "run.log", cfg.LogFile)
}

func TestParseFlags_DefaultsHold(t *testing.T) {
	cfg := DefaultConfig()
	var stdout, stderr bytes.Buffer
	require.NoError(t, parseFlags(&cfg, "1.0.0", []string{"-root", "data"}, &stdout, &stderr))

	assert.Equal(t, "data", cfg.Root)
	assert.Equal(t, 0.2, cfg.ValRatio)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
}

func TestParseFlags_PositionalRoot(t *testing.T) {
	cfg := DefaultConfig()
	var stdout, stderr bytes.Buffer
	require.NoError(t, parseFlags(&cfg, "1.0.0", []string{"--seed", "1", "data"}, &stdout, &stderr))
	assert.Equal(t, "data", cfg.Root)

	cfg = DefaultConfig()
	err := parseFlags(&cfg, "1.0.0", []string{"--root", "a", "b"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestParseFlags_SlashOnlyRootIsFilesystemRoot(t *testing.T) {
	cfg := DefaultConfig()
	var stdout, stderr bytes.Buffer
	require.NoError(t, parseFlags(&cfg, "1.0.0", []string{"--root", "///", "--outDir", "//"}, &stdout, &stderr))

	assert.Equal(t, "/", cfg.Root)
	assert.Equal(t, "/", cfg.OutDir)
	assert.NoError(t, cfg.Validate())
}

func TestParseFlags_HelpAndVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	cfg := DefaultConfig()
	err := parseFlags(&cfg, "1.2.3", []string{"--help"}, &stdout, &stderr)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, stderr.String(), "--val_ratio")

	cfg = DefaultConfig()
	err = parseFlags(&cfg, "1.2.3", []string{"-V"}, &stdout, &stderr)
	assert.ErrorIs(t, err, ErrVersion)
	assert.Contains(t, stdout.String(), "imgmanifest v1.2.3")
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"bad ratio", []string{"--val_ratio", "lots"}},
		{"bad seed", []string{"--seed", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			var stdout, stderr bytes.Buffer
			assert.Error(t, parseFlags(&cfg, "1.0.0", tt.args, &stdout, &stderr))
		})
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0.2", 0.2, false},
		{" 0.5 ", 0.5, false},
		{"25%", 0.25, false},
		{"100%", 1, false},
		{"1", 1, false},
		{"", 0, true},
		{"%", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRatio(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseFlags_ColorPrecedence(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := DefaultConfig()
	require.NoError(t, parseFlags(&cfg, "1", []string{"--color", "--no-color"}, &stdout, &stderr))
	assert.Equal(t, ColorNever, cfg.ColorMode, "--no-color wins")

	cfg = DefaultConfig()
	require.NoError(t, parseFlags(&cfg, "1", []string{"--color"}, &stdout, &stderr))
	assert.Equal(t, ColorAlways, cfg.ColorMode)
}
