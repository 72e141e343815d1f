package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// ZipArchiver builds zip archives in memory.
type ZipArchiver struct {
	// Modified is stamped on every entry. Zero means time.Now.
	Modified time.Time
}

// BuildArchive writes entries, in order, into a deflated zip archive.
func (z ZipArchiver) BuildArchive(entries []Entry) ([]byte, error) {
	modified := z.Modified
	if modified.IsZero() {
		modified = time.Now()
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finish archive: %w", err)
	}
	return buf.Bytes(), nil
}
