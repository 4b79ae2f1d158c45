// Package display holds console presentation helpers: the banner, number
// formatting and plain-text tables for log output.
package display

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount returns n with English digit grouping (e.g. "12,345").
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent returns the fraction f as a percentage with one decimal
// (e.g. 0.2 -> "20.0%").
func FormatPercent(f float64) string {
	return printer.Sprintf("%.1f%%", f*100)
}

// FormatPlural returns "1 image" or "3 images" with grouped digits.
func FormatPlural(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return FormatCount(n) + " " + plural
}

// FormatTable renders header and rows as left-aligned columns separated by
// two spaces. Missing cells render empty. Each returned line has no trailing
// whitespace.
func FormatTable(header []string, rows [][]string) []string {
	cols := len(header)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	widths := make([]int, cols)
	measure := func(r []string) {
		for i, c := range r {
			if w := utf8.RuneCountInString(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	render := func(r []string) string {
		var b strings.Builder
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			}
		}
		return strings.TrimRight(b.String(), " ")
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, render(header))
	for _, r := range rows {
		lines = append(lines, render(r))
	}
	return lines
}
