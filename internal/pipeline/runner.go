package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/imgmanifest/internal/config"
	"github.com/backmassage/imgmanifest/internal/dataset"
	"github.com/backmassage/imgmanifest/internal/display"
	"github.com/backmassage/imgmanifest/internal/logging"
	"github.com/backmassage/imgmanifest/internal/output"
	"github.com/backmassage/imgmanifest/internal/report"
	"github.com/backmassage/imgmanifest/internal/scan"
	"github.com/backmassage/imgmanifest/internal/split"
)

// stdout receives the plain result lines ("No images found.", "Wrote:").
var stdout io.Writer = os.Stdout

// Run scans the configured splits under src, builds the count matrix and the
// seeded train/val proposal, and writes the three CSV files into dst unless
// cfg.DryRun is set. A dataset with no images is not an error.
func Run(ctx context.Context, cfg *config.Config, src, dst billy.Filesystem, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	s := scan.New(src, cfg.Root, scan.WithVerify(cfg.Verify))
	records, results := s.ScanAll(cfg.Splits()...)
	for _, res := range results {
		logScanResult(log, res, &stats)
	}
	stats.Images = len(records)

	counts := report.Count(records)
	if counts.Empty() {
		fmt.Fprintln(stdout, "No images found.")
		return stats, nil
	}

	proposals := split.Propose(records, cfg.ValRatio, split.NewRand(cfg.Seed))
	for _, p := range proposals {
		switch p.Subset {
		case dataset.TrainSplit:
			stats.Train++
		case dataset.ValSubset:
			stats.Val++
		}
	}

	if cfg.DryRun {
		log.Warn("DRY RUN: no files written")
	} else {
		written, err := writeAll(ctx, output.NewWriter(dst), records, counts, proposals)
		stats.Written = written
		if err != nil {
			return stats, err
		}
		fmt.Fprintln(stdout, "Wrote:")
		for _, name := range written {
			fmt.Fprintf(stdout, " - %s\n", filepath.Join(cfg.OutDir, name))
		}
	}

	logSummary(cfg, log, &stats, counts, report.CountSubsets(proposals))
	return stats, nil
}

// writeAll writes the index, counts and proposal files in that order and
// returns the names written before any failure.
func writeAll(
	ctx context.Context,
	w *output.Writer,
	records []dataset.Record,
	counts *report.CountMatrix,
	proposals []dataset.Proposal,
) ([]string, error) {
	files := []struct {
		name string
		fill func(io.Writer) error
	}{
		{output.IndexFile, func(iw io.Writer) error { return output.WriteIndex(iw, records) }},
		{output.CountsFile, func(iw io.Writer) error { return output.WriteCounts(iw, counts) }},
		{output.ProposalFile, func(iw io.Writer) error { return output.WriteProposals(iw, proposals) }},
	}

	var written []string
	for _, f := range files {
		if err := w.WriteFile(ctx, f.name, f.fill); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, f.name)
	}
	return written, nil
}

func logScanResult(log *logging.Logger, res scan.Result, stats *RunStats) {
	if !res.Exists {
		log.Debug("Split %q: missing", res.Split)
		return
	}
	if res.HasClassDirs {
		log.Debug("Split %q: %s in %s", res.Split,
			display.FormatPlural(len(res.Records), "image", "images"),
			display.FormatPlural(len(res.Classes), "class", "classes"))
	} else {
		log.Debug("Split %q: %s, no class subdirectories", res.Split,
			display.FormatPlural(len(res.Records), "image", "images"))
	}

	stats.Skipped += res.Skipped
	stats.Unreadable += len(res.Unreadable)
	stats.Suspect += len(res.Suspect)
	for _, p := range res.Unreadable {
		log.Warn("Unreadable: %s", p)
	}
	for _, sus := range res.Suspect {
		log.Warn("Not an image (%s): %s", sus.MIME, sus.Path)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, counts, subsets *report.CountMatrix) {
	log.Info("=== Summary ===")
	log.Info("Images: %s", display.FormatCount(counts.Total()))
	for _, line := range countTable(counts) {
		log.Info("  %s", line)
	}
	if stats.Skipped > 0 {
		log.Info("Skipped %s", display.FormatPlural(stats.Skipped, "non-image file", "non-image files"))
	}
	if stats.Unreadable > 0 {
		log.Warn("Unreadable: %s", display.FormatPlural(stats.Unreadable, "entry", "entries"))
	}
	if stats.Suspect > 0 {
		log.Warn("Suspect content: %s", display.FormatPlural(stats.Suspect, "file", "files"))
	}

	log.Info("Proposal (val_ratio=%s, seed=%d): %s train, %s val (%s)",
		strconv.FormatFloat(cfg.ValRatio, 'f', -1, 64), cfg.Seed,
		display.FormatCount(stats.Train), display.FormatCount(stats.Val),
		display.FormatPercent(stats.ValShare()))
	for _, label := range subsets.Labels {
		log.Debug("  %s: %d train, %d val", label,
			subsets.Get(dataset.TrainSplit, label), subsets.Get(dataset.ValSubset, label))
	}
	log.Success("Done")
}

// countTable renders the count matrix with one row per split.
func countTable(m *report.CountMatrix) []string {
	header := append([]string{"split"}, m.Labels...)
	header = append(header, "total")
	rows := make([][]string, 0, len(m.Splits))
	for _, sp := range m.Splits {
		row := []string{sp}
		for _, n := range m.Row(sp) {
			row = append(row, display.FormatCount(n))
		}
		row = append(row, display.FormatCount(m.RowTotal(sp)))
		rows = append(rows, row)
	}
	return display.FormatTable(header, rows)
}
