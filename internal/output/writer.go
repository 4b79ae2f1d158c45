package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/go-git/go-billy/v5"
)

const (
	defaultPerm    = 0o644
	defaultBufSize = 64 * 1024
)

// Writer writes whole files into the root of a billy filesystem. Each file
// is written to a temp file in the same directory, synced, closed and then
// renamed over the destination, so a failed write never leaves a partial
// file under the final name.
type Writer struct {
	fs   billy.Filesystem
	perm os.FileMode
}

// NewWriter returns a Writer over fsys (normally osfs rooted at the output
// directory).
func NewWriter(fsys billy.Filesystem) *Writer {
	return &Writer{fs: fsys, perm: defaultPerm}
}

// WriteFile streams the output of fill into name.
func (w *Writer) WriteFile(ctx context.Context, name string, fill func(io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpName := fmt.Sprintf(".tmp-%s-%08x", name, rand.Uint32())
	tmp, err := w.fs.OpenFile(tmpName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, w.perm)
	if err != nil {
		return fmt.Errorf("output: create temp for %q: %w", name, err)
	}
	fail := func(err error) error {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("output: write %q: %w", name, err)
	}

	bw := bufio.NewWriterSize(tmp, defaultBufSize)
	if err := fill(bw); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if s, ok := tmp.(interface{ Sync() error }); ok {
		if err := s.Sync(); err != nil {
			return fail(err)
		}
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("output: close %q: %w", name, err)
	}
	if err := w.fs.Rename(tmpName, name); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("output: rename %q: %w", name, err)
	}
	return nil
}
