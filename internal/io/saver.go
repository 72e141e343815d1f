package ioutils

import (
	"context"
	"fmt"
)

// DirSaver saves exported files into a single directory.
type DirSaver struct {
	Dir string
}

// NewDirSaver returns a DirSaver writing into dir.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{Dir: dir}
}

// SaveFile writes data under a sanitized form of name and returns the
// path written. Existing files are never overwritten.
func (s *DirSaver) SaveFile(ctx context.Context, name string, data []byte) (string, error) {
	if err := EnsureDir(s.Dir); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	safe := SanitizeFileName(name)
	if safe == "" {
		safe = "font"
	}
	path, err := FreePath(s.Dir, safe)
	if err != nil {
		return "", err
	}
	if err := WriteFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
