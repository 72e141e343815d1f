package fontsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/handiism/hurufa/internal/model"
)

// ErrNotFound is returned by FontData when no indexed file matches.
var ErrNotFound = errors.New("fontsource: font not found")

// Entry is one font found on disk.
type Entry struct {
	Font  model.RawFont
	Path  string
	Index int // position inside a collection file
}

func (e Entry) id() string {
	if e.Font.PostscriptName != "" {
		return e.Font.PostscriptName
	}
	return e.Font.FullName
}

// Index holds the fonts found by a scan, one entry per identity.
type Index struct {
	entries []Entry

	byPostscript map[string]int
	byFullName   map[string]int
	byFamily     map[string]int
}

// NewIndex builds an Index from entries. When two entries share an
// identity the first wins.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		byPostscript: make(map[string]int),
		byFullName:   make(map[string]int),
		byFamily:     make(map[string]int),
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.id()] {
			continue
		}
		seen[e.id()] = true

		i := len(idx.entries)
		idx.entries = append(idx.entries, e)
		if ps := e.Font.PostscriptName; ps != "" {
			setOnce(idx.byPostscript, ps, i)
		}
		setOnce(idx.byFullName, e.Font.FullName, i)
		setOnce(idx.byFamily, familyKey(e.Font.Family, e.Font.Style), i)
	}
	return idx
}

func setOnce(m map[string]int, key string, i int) {
	if _, ok := m[key]; !ok {
		m[key] = i
	}
}

func familyKey(family, style string) string {
	return strings.ToLower(family) + "\x00" + strings.ToLower(style)
}

// Len returns the number of indexed fonts.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns the indexed fonts in scan order.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

// RawFonts returns the font records in scan order.
func (idx *Index) RawFonts() []model.RawFont {
	out := make([]model.RawFont, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = e.Font
	}
	return out
}

// Lookup finds the entry for font: exact PostScript name, then exact full
// name, then family and style.
func (idx *Index) Lookup(font model.Font) (Entry, bool) {
	if font.PostscriptName != "" {
		if i, ok := idx.byPostscript[font.PostscriptName]; ok {
			return idx.entries[i], true
		}
	}
	if font.FullName != "" {
		if i, ok := idx.byFullName[font.FullName]; ok {
			return idx.entries[i], true
		}
	}
	if i, ok := idx.byFamily[familyKey(font.Family, font.Style)]; ok {
		return idx.entries[i], true
	}
	return Entry{}, false
}

// FontData returns the bytes of the file backing font.
func (idx *Index) FontData(ctx context.Context, font model.Font) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := idx.Lookup(font)
	if !ok {
		return nil, fmt.Errorf("%s: %w", font.ID(), ErrNotFound)
	}
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Path, err)
	}
	return data, nil
}
