// Package check provides the read-only --check diagnostics: it inspects the
// dataset root and each configured split directory and reports what a full
// run would find, without writing anything.
package check

import (
	"errors"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/imgmanifest/internal/config"
	"github.com/backmassage/imgmanifest/internal/dataset"
	"github.com/backmassage/imgmanifest/internal/display"
	"github.com/backmassage/imgmanifest/internal/scan"
)

// Sentinel errors returned by CheckLayout.
var (
	ErrRootNotFound = errors.New("dataset root not found or not a directory")
	ErrNoSplits     = errors.New("none of the configured split directories exist")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// CheckLayout verifies that root is a directory and that at least one
// configured split exists under it. fsys is rooted at the dataset root.
func CheckLayout(cfg *config.Config, fsys billy.Filesystem) error {
	info, err := fsys.Stat("")
	if err != nil || !info.IsDir() {
		return ErrRootNotFound
	}
	for _, split := range cfg.Splits() {
		if si, err := fsys.Stat(split); err == nil && si.IsDir() {
			return nil
		}
	}
	return ErrNoSplits
}

// RunCheck runs the --check flow: for every split it reports presence,
// layout (class subdirectories or flat), classes with image counts, skipped
// non-image files and unreadable entries. It returns false when
// CheckLayout fails.
func RunCheck(cfg *config.Config, fsys billy.Filesystem, log Logger) bool {
	log.Info("=== Dataset Check ===")
	log.Info("Root: %s", cfg.Root)
	log.Info("Image extensions: %s", strings.Join(dataset.ImageExtensions(), " "))

	if err := CheckLayout(cfg, fsys); errors.Is(err, ErrRootNotFound) {
		log.Error("%v: %s", err, cfg.Root)
		return false
	}

	s := scan.New(fsys, cfg.Root, scan.WithVerify(cfg.Verify))
	found := false
	for _, split := range cfg.Splits() {
		res := s.Scan(split)
		if !res.Exists {
			log.Warn("Split %q: missing (contributes no images)", split)
			continue
		}
		found = true
		reportSplit(log, res)
	}

	if !found {
		log.Error("%v", ErrNoSplits)
		return false
	}
	return true
}

func reportSplit(log Logger, res scan.Result) {
	if res.HasClassDirs {
		log.Success("Split %q: %s in %s",
			res.Split,
			display.FormatPlural(len(res.Records), "image", "images"),
			display.FormatPlural(len(res.Classes), "class", "classes"))
	} else {
		log.Success("Split %q: %s, no class subdirectories (label %q)",
			res.Split,
			display.FormatPlural(len(res.Records), "image", "images"),
			dataset.UnknownLabel)
	}

	perClass := make(map[string]int)
	for _, r := range res.Records {
		perClass[r.Label]++
	}
	for _, class := range res.Classes {
		n := perClass[class]
		if n == 0 {
			log.Warn("  %s: no images", class)
			continue
		}
		log.Info("  %s: %s", class, display.FormatCount(n))
	}

	if res.Skipped > 0 {
		log.Debug("  Skipped %s", display.FormatPlural(res.Skipped, "non-image file", "non-image files"))
	}
	for _, p := range res.Unreadable {
		log.Warn("  Unreadable: %s", p)
	}
	for _, sus := range res.Suspect {
		log.Warn("  Not an image (%s): %s", sus.MIME, sus.Path)
	}
}
