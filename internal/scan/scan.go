package scan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/backmassage/imgmanifest/internal/dataset"
)

// Scanner collects image records from a billy filesystem rooted at the
// dataset root. It is not safe for concurrent use.
type Scanner struct {
	fs     billy.Filesystem
	root   string
	verify bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithVerify enables content sniffing of every collected image. Files whose
// content is not an image are still recorded but reported in Result.Suspect.
func WithVerify(on bool) Option {
	return func(s *Scanner) { s.verify = on }
}

// New returns a Scanner over fsys. root is the dataset root as the user
// spelled it; it prefixes every Record.Path so paths match the command line.
func New(fsys billy.Filesystem, root string, opts ...Option) *Scanner {
	s := &Scanner{fs: fsys, root: root}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suspect is an image-named file whose sniffed content is not an image.
type Suspect struct {
	Path string
	MIME string
}

// Result is the outcome of scanning one split.
type Result struct {
	Split        string
	Exists       bool     // split directory present
	HasClassDirs bool     // at least one immediate subdirectory
	Classes      []string // sorted class directory names
	Records      []dataset.Record
	Skipped      int      // non-image files ignored
	Unreadable   []string // directories or entries that could not be read
	Suspect      []Suspect
}

// Scan collects the records of one split. Class subdirectories are visited
// in lexicographic order and each class tree in lexical walk order, so the
// result is deterministic for a given file set.
func (s *Scanner) Scan(split string) Result {
	res := Result{Split: split}

	info, err := s.fs.Stat(split)
	if err != nil || !info.IsDir() {
		return res
	}
	res.Exists = true

	entries, err := s.fs.ReadDir(split)
	if err != nil {
		res.Unreadable = append(res.Unreadable, s.display(split))
		return res
	}

	for _, e := range entries {
		if s.isDir(s.fs.Join(split, e.Name()), e) {
			res.Classes = append(res.Classes, e.Name())
		}
	}
	sort.Strings(res.Classes)
	res.HasClassDirs = len(res.Classes) > 0

	if !res.HasClassDirs {
		s.walk(&res, split, dataset.UnknownLabel)
		return res
	}
	for _, class := range res.Classes {
		s.walk(&res, s.fs.Join(split, class), class)
	}
	return res
}

// ScanAll scans each split in order and concatenates the records.
func (s *Scanner) ScanAll(splits ...string) ([]dataset.Record, []Result) {
	var records []dataset.Record
	results := make([]Result, 0, len(splits))
	for _, split := range splits {
		res := s.Scan(split)
		records = append(records, res.Records...)
		results = append(results, res)
	}
	return records, results
}

// walk recursively collects image files under dir with the given label.
// dir itself may be a symlink to a directory; links found below it are
// followed only when they point at regular files. Unreadable subtrees are
// recorded and skipped.
func (s *Scanner) walk(res *Result, dir, label string) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		res.Unreadable = append(res.Unreadable, s.display(dir))
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	visit := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			res.Unreadable = append(res.Unreadable, s.display(path))
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !s.isRegular(path, info) {
			return nil
		}
		if !dataset.IsImagePath(path) {
			res.Skipped++
			return nil
		}
		display := s.display(path)
		res.Records = append(res.Records, dataset.Record{
			Split: res.Split,
			Label: label,
			Path:  display,
		})
		if s.verify {
			if mime, ok := s.sniff(path); !ok {
				res.Suspect = append(res.Suspect, Suspect{Path: display, MIME: mime})
			}
		}
		return nil
	}
	for _, e := range entries {
		_ = util.Walk(s.fs, s.fs.Join(dir, e.Name()), visit)
	}
}

// isDir reports whether the directory entry at path is a directory or a
// symlink to one.
func (s *Scanner) isDir(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := s.fs.Stat(path)
	return err == nil && target.IsDir()
}

// isRegular reports whether path is a regular file, following a symlink
// to its target. Symlinked directories are not descended into.
func (s *Scanner) isRegular(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}
	target, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}

func (s *Scanner) display(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}
