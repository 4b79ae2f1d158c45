package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/imgmanifest/internal/config"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := testConfig()
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "imgmanifest.log")
	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLogger_LevelsAndStreams(t *testing.T) {
	cfg := testConfig()
	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Info("scanning %s", "train")
	l.Success("done")
	l.Warn("careful")
	l.Error("broken %d", 1)
	l.Debug("hidden")

	assert.Contains(t, stdout.String(), "[INFO] scanning train")
	assert.Contains(t, stdout.String(), "[SUCCESS] done")
	assert.Contains(t, stdout.String(), "[WARN] careful")
	assert.NotContains(t, stdout.String(), "broken")
	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stderr.String(), "[ERROR] broken 1")
}

func TestLogger_DebugWhenVerbose(t *testing.T) {
	cfg := testConfig()
	cfg.Verbose = true
	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Debug("shown")
	assert.Contains(t, stdout.String(), "[DEBUG] shown")
}

func TestLogger_FileIsUncolored(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "run.log")
	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)
	t.Cleanup(func() {
		nc := testConfig()
		_, _ = New(&nc, &stdout, &stderr)
	})

	l.Warn("colored")
	require.NoError(t, l.Close())

	assert.Contains(t, stdout.String(), "\033[")
	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\033[")
}
