package model

// Uncategorized is the sentinel collection for families without any tag.
const Uncategorized = "Uncategorized"

// DefaultLanguage is assigned when no language keyword matches.
const DefaultLanguage = "English"

// FontFamily is a named group of fonts sharing a normalized family name.
//
// After categorization every member carries the same Tags and Language,
// which are mirrored here for convenience.
type FontFamily struct {
	// Name is the normalized family name.
	Name string

	// Fonts are sorted by weight, then style.
	Fonts []Font

	// Tags is the family's collection set, sorted.
	Tags []string

	// Language is the family's single language.
	Language string
}

// IDs returns the identities of every member font in family order.
func (f FontFamily) IDs() []string {
	ids := make([]string, len(f.Fonts))
	for i, font := range f.Fonts {
		ids[i] = font.ID()
	}
	return ids
}

// CategoryType distinguishes the classification axes.
type CategoryType int

const (
	// CategoryCollection groups families by tag.
	CategoryCollection CategoryType = iota

	// CategoryLanguage groups families by written language.
	CategoryLanguage

	// CategorySearch holds the result of a name search.
	CategorySearch
)

// String returns the display label of the category type.
func (t CategoryType) String() string {
	switch t {
	case CategoryCollection:
		return "Collections"
	case CategoryLanguage:
		return "Language"
	case CategorySearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// Category is one node of the classification tree.
type Category struct {
	Name     string
	Type     CategoryType
	Families []FontFamily
}
