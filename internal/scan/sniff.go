package scan

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniff detects the content type of path from its leading bytes and
// reports whether it is an image. An unreadable file is never an image.
func (s *Scanner) sniff(path string) (string, bool) {
	f, err := s.fs.Open(path)
	if err != nil {
		return "unreadable", false
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil || mt == nil {
		return "unreadable", false
	}
	return mt.String(), strings.HasPrefix(mt.String(), "image/")
}
