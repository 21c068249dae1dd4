package partition

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/bytom/timepart/datefmt"
)

// Scanner finds partitions below a root directory. Each path relative to the
// root, with '/' separators, is matched against the format.
type Scanner struct {
	Fs     afero.Fs
	Format *datefmt.DateFormat
}

// NewScanner returns a scanner over fs.
func NewScanner(fs afero.Fs, f *datefmt.DateFormat) *Scanner {
	return &Scanner{Fs: fs, Format: f}
}

// depth is the number of '/' separators every matching label has.
// Placeholders never render a '/'.
func depth(tmpl *datefmt.Template) int {
	n := 0
	for _, s := range tmpl.Segments() {
		if s.IsLiteral() {
			n += strings.Count(s.Literal, "/")
		}
	}
	return n
}

// Scan returns the partitions under root ordered by time, then label.
// Entries that cannot be read below root are logged and skipped.
func (s *Scanner) Scan(root string) ([]Partition, error) {
	maxDepth := depth(s.Format.Template())

	var parts []Partition
	err := afero.Walk(s.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			log.WithFields(log.Fields{"module": logModule, "path": path, "err": err}).Warn("skip unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		label := filepath.ToSlash(rel)
		if t, err := s.Format.Parse(label); err == nil {
			parts = append(parts, Partition{Label: label, Time: t})
			log.WithFields(log.Fields{"module": logModule, "label": label}).Debug("partition found")
		}

		if info.IsDir() && strings.Count(label, "/") >= maxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortPartitions(parts)
	return parts, nil
}
