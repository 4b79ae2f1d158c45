// Package report aggregates scanned records into a label-by-split count
// matrix.
package report

import (
	"sort"

	"github.com/backmassage/imgmanifest/internal/dataset"
)

// CountMatrix holds one count per (split, label) pair. Splits and labels are
// sorted lexicographically and every cell exists, zero-filled when no record
// was observed for that pair.
type CountMatrix struct {
	Splits []string
	Labels []string
	counts map[string]map[string]int
}

// Count builds the matrix for records.
func Count(records []dataset.Record) *CountMatrix {
	splitSet := make(map[string]bool)
	labelSet := make(map[string]bool)
	for _, r := range records {
		splitSet[r.Split] = true
		labelSet[r.Label] = true
	}

	m := &CountMatrix{
		Splits: sortedKeys(splitSet),
		Labels: sortedKeys(labelSet),
		counts: make(map[string]map[string]int, len(splitSet)),
	}
	for _, s := range m.Splits {
		row := make(map[string]int, len(m.Labels))
		for _, l := range m.Labels {
			row[l] = 0
		}
		m.counts[s] = row
	}
	for _, r := range records {
		m.counts[r.Split][r.Label]++
	}
	return m
}

// CountSubsets builds a matrix whose rows are proposed subsets rather than
// original splits.
func CountSubsets(proposals []dataset.Proposal) *CountMatrix {
	records := make([]dataset.Record, len(proposals))
	for i, p := range proposals {
		records[i] = dataset.Record{Split: p.Subset, Label: p.Label, Path: p.Path}
	}
	return Count(records)
}

// Get returns the count for (split, label), or 0 for unknown pairs.
func (m *CountMatrix) Get(split, label string) int {
	return m.counts[split][label]
}

// Row returns the counts of split in label order.
func (m *CountMatrix) Row(split string) []int {
	row := make([]int, len(m.Labels))
	for i, l := range m.Labels {
		row[i] = m.counts[split][l]
	}
	return row
}

// RowTotal returns the number of records in split.
func (m *CountMatrix) RowTotal(split string) int {
	total := 0
	for _, n := range m.counts[split] {
		total += n
	}
	return total
}

// Total returns the number of records counted.
func (m *CountMatrix) Total() int {
	total := 0
	for _, s := range m.Splits {
		total += m.RowTotal(s)
	}
	return total
}

// Empty reports whether no records were counted.
func (m *CountMatrix) Empty() bool {
	return len(m.Splits) == 0
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
