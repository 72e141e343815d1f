package model

import (
	"slices"
	"strings"
)

// RawFont is a font record as delivered by the font source, before any
// classification has been applied.
type RawFont struct {
	Family         string
	FullName       string
	Style          string
	PostscriptName string
}

// Font describes one concrete weight/style of a typeface.
//
// Font carries both the metadata reported by the font source and the user
// overlay:
//   - Tags is the set of collections the font belongs to (manual and auto-detected)
//   - Language is the single written-language assigned to the font
//
// Fonts are values. Operations that change tags or language return new
// Fonts rather than editing shared ones; use Clone before mutating a Font
// obtained from somewhere else.
type Font struct {
	// Family is the family name exactly as reported by the font source.
	Family string

	// FullName is the human-readable full name, e.g. "Roboto Bold Italic".
	FullName string

	// Style is the subfamily, e.g. "Bold Italic".
	Style string

	// PostscriptName is the preferred stable identifier. Empty when the
	// source did not report one.
	PostscriptName string

	// Tags holds collection names. Order is not significant.
	Tags []string

	// Language is the assigned written-language tag. Empty means unassigned.
	Language string
}

// NewFont wraps a raw record into a Font with no tags and the given language.
func NewFont(raw RawFont, language string) Font {
	return Font{
		Family:         raw.Family,
		FullName:       raw.FullName,
		Style:          raw.Style,
		PostscriptName: raw.PostscriptName,
		Language:       language,
	}
}

// ID returns the identity of the font: the PostScript name if present,
// otherwise the full name. Two fonts are the same entity iff their IDs match.
func (f Font) ID() string {
	if f.PostscriptName != "" {
		return f.PostscriptName
	}
	return f.FullName
}

// HasTag reports whether the font carries tag.
func (f Font) HasTag(tag string) bool {
	return slices.Contains(f.Tags, tag)
}

// Clone returns a copy of f that does not share its Tags slice.
func (f Font) Clone() Font {
	f.Tags = slices.Clone(f.Tags)
	return f
}

// Weight returns the numeric weight derived from the style keyword.
func (f Font) Weight() int {
	return WeightFromStyle(f.Style)
}

// weightKeywords is checked in order; compound keywords come before the
// plain ones they contain ("semibold" before "bold").
var weightKeywords = []struct {
	keyword string
	weight  int
}{
	{"thin", 100},
	{"hairline", 100},
	{"extralight", 200},
	{"extra light", 200},
	{"ultralight", 200},
	{"ultra light", 200},
	{"semibold", 600},
	{"semi bold", 600},
	{"demibold", 600},
	{"demi bold", 600},
	{"extrabold", 800},
	{"extra bold", 800},
	{"ultrabold", 800},
	{"ultra bold", 800},
	{"light", 300},
	{"regular", 400},
	{"normal", 400},
	{"book", 400},
	{"medium", 500},
	{"bold", 700},
	{"heavy", 900},
	{"black", 900},
}

// WeightFromStyle maps a style string such as "SemiBold Italic" to a CSS-like
// numeric weight (thin=100 ... black=900). Styles without a known keyword
// weigh 400.
func WeightFromStyle(style string) int {
	s := strings.ToLower(style)
	for _, w := range weightKeywords {
		if strings.Contains(s, w.keyword) {
			return w.weight
		}
	}
	return 400
}

// CompareFonts orders fonts by ascending weight, then by style string.
func CompareFonts(a, b Font) int {
	if wa, wb := a.Weight(), b.Weight(); wa != wb {
		return wa - wb
	}
	return strings.Compare(a.Style, b.Style)
}
