package store

import (
	"slices"
	"strings"

	"github.com/handiism/hurufa/internal/catalog"
	"github.com/handiism/hurufa/internal/classify"
	"github.com/handiism/hurufa/internal/logging"
	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/selection"
)

// DisplayPrefs holds the preview settings shown on font cards.
type DisplayPrefs struct {
	FontSize      int
	CustomText    string
	TextColor     string
	LineHeight    int
	LetterSpacing int
}

// DefaultDisplayPrefs returns the preview settings used on first launch.
func DefaultDisplayPrefs() DisplayPrefs {
	return DisplayPrefs{
		FontSize:   24,
		TextColor:  "#000000",
		LineHeight: 100,
	}
}

// Store owns the font list, the category tree, the selection and the
// display preferences. Every mutation re-runs categorization before it
// returns, so readers never observe a half-updated tree.
//
// Store is not safe for concurrent use; drive it from one goroutine.
type Store struct {
	fonts      []model.Font
	families   []model.FontFamily
	categories []model.Category

	familyOf  map[string]string
	familyIDs map[string][]string

	sel      *selection.Model
	prefs    DisplayPrefs
	viewMode model.CategoryType
	query    string

	displayed []model.Category
	order     []model.Font
	cached    bool

	version uint64
}

// New returns an empty Store showing the Collection axis.
func New(prefs DisplayPrefs) *Store {
	return &Store{
		sel:       selection.New(),
		prefs:     prefs,
		viewMode:  model.CategoryCollection,
		familyOf:  make(map[string]string),
		familyIDs: make(map[string][]string),
	}
}

// Load replaces the font list with freshly enumerated fonts. Each font
// starts with no tags and the language detected from its family name.
// The selection is cleared.
func (s *Store) Load(raws []model.RawFont) {
	s.SetFonts(Ingest(raws))
}

// Ingest wraps raw records into fonts with no tags and the language
// detected from the family name.
func Ingest(raws []model.RawFont) []model.Font {
	fonts := make([]model.Font, len(raws))
	for i, raw := range raws {
		fonts[i] = model.NewFont(raw, classify.DetectLanguage(raw.Family))
	}
	return fonts
}

// SetFonts replaces the font list wholesale, keeping whatever tags and
// language the fonts already carry. The selection is cleared.
func (s *Store) SetFonts(fonts []model.Font) {
	s.fonts = cloneFonts(fonts)
	s.sel.DeselectAll()
	s.recategorize()
}

func (s *Store) recategorize() {
	res := catalog.Categorize(s.fonts)
	s.fonts = res.Fonts
	s.families = res.Families
	s.categories = res.Categories

	clear(s.familyOf)
	clear(s.familyIDs)
	for _, fam := range res.Families {
		ids := fam.IDs()
		s.familyIDs[fam.Name] = ids
		for _, id := range ids {
			s.familyOf[id] = fam.Name
		}
	}
	s.cached = false
	s.version++

	logging.Logger().Debug("fonts categorized",
		"fonts", len(s.fonts), "families", len(s.families), "categories", len(s.categories), "version", s.version)
}

// Version counts font list changes. It grows by one on every load and
// every mutation, so a higher version always means a newer font list.
func (s *Store) Version() uint64 {
	return s.version
}

// Fonts returns the authoritative font list. Callers must not modify it.
func (s *Store) Fonts() []model.Font {
	return s.fonts
}

// Families returns every family sorted by name.
func (s *Store) Families() []model.FontFamily {
	return s.families
}

// Categories returns the full category tree: collections, then languages.
func (s *Store) Categories() []model.Category {
	return s.categories
}

// Font looks up a font by identity.
func (s *Store) Font(id string) (model.Font, bool) {
	i := slices.IndexFunc(s.fonts, func(f model.Font) bool { return f.ID() == id })
	if i < 0 {
		return model.Font{}, false
	}
	return s.fonts[i], true
}

// Family looks up a family by normalized name.
func (s *Store) Family(name string) (model.FontFamily, bool) {
	i := slices.IndexFunc(s.families, func(f model.FontFamily) bool { return f.Name == name })
	if i < 0 {
		return model.FontFamily{}, false
	}
	return s.families[i], true
}

// FamilyIDs returns the identities of every font in id's family. Unknown
// identities form a family of one.
func (s *Store) FamilyIDs(id string) []string {
	if name, ok := s.familyOf[id]; ok {
		return s.familyIDs[name]
	}
	return []string{id}
}

// FamilyName returns the normalized family name of the font with identity id.
func (s *Store) FamilyName(id string) string {
	return s.familyOf[id]
}

// Displayed returns the categories currently shown: those of the active
// view mode, narrowed by the search query.
func (s *Store) Displayed() []model.Category {
	s.refreshView()
	return s.displayed
}

// DisplayOrder returns the fonts in the order they are shown, walking
// Displayed categories, then families, then each family's weights.
func (s *Store) DisplayOrder() []model.Font {
	s.refreshView()
	return s.order
}

func (s *Store) refreshView() {
	if s.cached {
		return
	}
	s.displayed = catalog.Filter(catalog.OfType(s.categories, s.viewMode), s.query)
	s.order = catalog.DisplayOrder(s.displayed)
	s.cached = true
}

// ViewMode returns which axis is displayed.
func (s *Store) ViewMode() model.CategoryType {
	return s.viewMode
}

// SetViewMode switches the displayed axis. Only Collection and Language
// are accepted; anything else is ignored.
func (s *Store) SetViewMode(mode model.CategoryType) {
	if mode != model.CategoryCollection && mode != model.CategoryLanguage {
		return
	}
	s.viewMode = mode
	s.cached = false
}

// Query returns the active search query.
func (s *Store) Query() string {
	return s.query
}

// SetQuery narrows the displayed families to names containing query.
func (s *Store) SetQuery(query string) {
	s.query = query
	s.cached = false
}

// Search returns every family matching query as a single Search category.
func (s *Store) Search(query string) model.Category {
	return catalog.Search(s.categories, query)
}

// Prefs returns the display preferences.
func (s *Store) Prefs() DisplayPrefs {
	return s.prefs
}

// SetPrefs replaces the display preferences.
func (s *Store) SetPrefs(p DisplayPrefs) {
	s.prefs = p
}

// CollectionNames returns the name of every Collection category, sorted.
func (s *Store) CollectionNames() []string {
	var names []string
	for _, c := range catalog.OfType(s.categories, model.CategoryCollection) {
		names = append(names, c.Name)
	}
	return names
}

// TagSuggestions lists existing collections containing input
// (case-insensitive) that are not already in current. Uncategorized is
// never suggested.
func (s *Store) TagSuggestions(input string, current []string) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	var out []string
	for _, name := range s.CollectionNames() {
		if name == model.Uncategorized || slices.Contains(current, name) {
			continue
		}
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

func cloneFonts(fonts []model.Font) []model.Font {
	out := make([]model.Font, len(fonts))
	for i, f := range fonts {
		out[i] = f.Clone()
	}
	return out
}
