// Package output serializes the manifest, the count matrix and the split
// proposal as CSV tables and writes them atomically to an output
// filesystem.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/backmassage/imgmanifest/internal/dataset"
	"github.com/backmassage/imgmanifest/internal/report"
)

// Output file names, relative to the output directory.
const (
	IndexFile    = "dataset_index.csv"
	CountsFile   = "class_counts.csv"
	ProposalFile = "proposed_train_val_split.csv"
)

// newCSV returns a writer using the Excel dialect: comma separated,
// minimal quoting, CRLF line endings.
func newCSV(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}

// WriteIndex writes one split,label,path row per record.
func WriteIndex(w io.Writer, records []dataset.Record) error {
	cw := newCSV(w)
	if err := cw.Write([]string{"split", "label", "path"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Split, r.Label, r.Path}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCounts writes one row per split with a column per label.
func WriteCounts(w io.Writer, m *report.CountMatrix) error {
	cw := newCSV(w)
	header := append([]string{"split"}, m.Labels...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range m.Splits {
		row := make([]string, 0, len(m.Labels)+1)
		row = append(row, s)
		for _, n := range m.Row(s) {
			row = append(row, strconv.Itoa(n))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProposals writes the index columns plus proposed_subset.
func WriteProposals(w io.Writer, proposals []dataset.Proposal) error {
	cw := newCSV(w)
	if err := cw.Write([]string{"split", "label", "path", "proposed_subset"}); err != nil {
		return err
	}
	for _, p := range proposals {
		if err := cw.Write([]string{p.Split, p.Label, p.Path, p.Subset}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
