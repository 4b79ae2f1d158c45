// Package dataset defines the records shared by the scanner, reporter and
// splitter: one Record per image file found under a split directory, and
// one Proposal per Record once the train/validation split is assigned.
package dataset

import (
	"path/filepath"
	"strings"
)

const (
	// UnknownLabel is assigned when a split directory has no class
	// subdirectories.
	UnknownLabel = "unknown"

	// TrainSplit is the split name the splitter samples validation items from.
	TrainSplit = "train"

	// ValSubset is the proposed subset for sampled validation items.
	ValSubset = "val"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImagePath reports whether path has a recognized image extension.
// The comparison is case-insensitive.
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ImageExtensions returns the recognized extensions, sorted.
func ImageExtensions() []string {
	return []string{".bmp", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}
}

// Record is one observed image file.
type Record struct {
	Split string
	Label string
	Path  string
}

// Proposal is a Record with its proposed subset: "train", "val", or the
// record's original split when that split is not the train split.
type Proposal struct {
	Record
	Subset string
}
