package fontsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/handiism/hurufa/internal/model"
)

var fontExts = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// IsFontFile reports whether path has a font file extension.
func IsFontFile(path string) bool {
	return fontExts[strings.ToLower(filepath.Ext(path))]
}

func isCollection(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ttc" || ext == ".otc"
}

// ParseFile reads every font in the file at path.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(path, data)
}

// ParseBytes parses data read from path. Collections yield one Entry per
// member.
func ParseBytes(path string, data []byte) ([]Entry, error) {
	if !isCollection(path) {
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return []Entry{{Font: Describe(f, path), Path: path}}, nil
	}

	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", path, err)
	}
	entries := make([]Entry, 0, c.NumFonts())
	for i := 0; i < c.NumFonts(); i++ {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("parse %s[%d]: %w", path, i, err)
		}
		entries = append(entries, Entry{Font: Describe(f, path), Path: path, Index: i})
	}
	return entries, nil
}

// Describe reads the naming fields of f. The typographic family and
// subfamily are preferred over the legacy ones, which fold weights such
// as "Light" into the family name. Missing names fall back to the file
// name and "Regular".
func Describe(f *sfnt.Font, path string) model.RawFont {
	var buf sfnt.Buffer
	name := func(ids ...sfnt.NameID) string {
		for _, id := range ids {
			if s, err := f.Name(&buf, id); err == nil && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
		return ""
	}

	raw := model.RawFont{
		Family:         name(sfnt.NameIDTypographicFamily, sfnt.NameIDFamily),
		Style:          name(sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily),
		FullName:       name(sfnt.NameIDFull),
		PostscriptName: name(sfnt.NameIDPostScript),
	}
	if raw.Family == "" {
		base := filepath.Base(path)
		raw.Family = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if raw.Style == "" {
		raw.Style = "Regular"
	}
	if raw.FullName == "" {
		raw.FullName = raw.Family + " " + raw.Style
	}
	return raw
}
