package fontsource

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/hurufa/internal/logging"
)

// Scanner finds font files under a set of directories.
type Scanner struct {
	Dirs          []string
	MaxConcurrent int
}

// NewScanner returns a Scanner over dirs parsing at most maxConcurrent
// files at once.
func NewScanner(dirs []string, maxConcurrent int) *Scanner {
	return &Scanner{Dirs: dirs, MaxConcurrent: maxConcurrent}
}

// Scan walks every directory and parses the font files found. Missing
// directories and unreadable or malformed files are logged and skipped.
func (s *Scanner) Scan(ctx context.Context) (*Index, error) {
	var paths []string
	for _, dir := range s.Dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipDir
				}
				logging.Logger().Debug("skipping path", "path", path, "err", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() && IsFontFile(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	results := make([][]Entry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	limit := s.MaxConcurrent
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := ParseFile(path)
			if err != nil {
				logging.Logger().Warn("skipping font file", "path", path, "err", err)
				return nil
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, r := range results {
		all = append(all, r...)
	}
	idx := NewIndex(all)
	logging.Logger().Info("font scan finished", "files", len(paths), "fonts", idx.Len())
	return idx, nil
}
