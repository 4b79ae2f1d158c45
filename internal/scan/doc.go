// Package scan walks the split directories of a dataset root and emits one
// [dataset.Record] per image file.
//
// A split directory either holds class subdirectories (each directory name
// becomes the label of every image below it) or holds images directly, in
// which case every image gets [dataset.UnknownLabel]. A class directory may
// be a symlink to a directory elsewhere; its target is scanned under the
// link's path. Missing or unreadable directories contribute no records;
// they are never an error.
//
// Types:
//   - Scanner (New, WithVerify; Scan, ScanAll)
//   - Result (per-split classes, records, skipped, unreadable, suspect)
//   - Suspect (--verify content mismatch)
//
// Files:
//   - scan.go: layout detection and the walk
//   - sniff.go: content sniffing with mimetype
package scan
