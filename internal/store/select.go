package store

import (
	"strings"

	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/selection"
)

// Select applies a click on the font with identity id.
func (s *Store) Select(id string, mods selection.Modifiers) {
	font, ok := s.Font(id)
	if !ok {
		font = model.Font{FullName: id}
	}
	s.sel.Select(s, font, mods)
}

// SelectAt applies a click on the font shown at position pos of
// DisplayOrder. Unlike Select it knows which occurrence was clicked when a
// family is shown under several categories.
func (s *Store) SelectAt(pos int, mods selection.Modifiers) {
	s.sel.SelectAt(s, pos, mods)
}

// SelectAll selects every font; the anchor becomes the last font in list order.
func (s *Store) SelectAll() {
	s.sel.SelectAll(s.fonts)
}

// DeselectAll clears the selection.
func (s *Store) DeselectAll() {
	s.sel.DeselectAll()
}

// SelectByIDs adds or removes ids without touching the anchor.
func (s *Store) SelectByIDs(ids []string, on bool) {
	s.sel.SelectByIDs(ids, on)
}

// SelectCategory adds or removes every font of every family in the named
// displayed category.
func (s *Store) SelectCategory(name string, on bool) {
	for _, c := range s.Displayed() {
		if c.Name != name {
			continue
		}
		for _, fam := range c.Families {
			s.sel.SelectByIDs(fam.IDs(), on)
		}
	}
}

// IsSelected reports whether the font with identity id is selected.
func (s *Store) IsSelected(id string) bool {
	return s.sel.IsSelected(id)
}

// SelectionLen returns the number of selected fonts.
func (s *Store) SelectionLen() int {
	return s.sel.Len()
}

// Anchor returns the identity of the last clicked font.
func (s *Store) Anchor() string {
	return s.sel.Anchor()
}

// SelectedFonts returns the selected fonts in list order.
func (s *Store) SelectedFonts() []model.Font {
	var out []model.Font
	for _, f := range s.fonts {
		if s.sel.IsSelected(f.ID()) {
			out = append(out, f)
		}
	}
	return out
}

// SelectedFamilies returns the names of families with at least one
// selected font, sorted.
func (s *Store) SelectedFamilies() []string {
	var out []string
	for _, fam := range s.families {
		for _, id := range fam.IDs() {
			if s.sel.IsSelected(id) {
				out = append(out, fam.Name)
				break
			}
		}
	}
	return out
}

// SelectedNames returns the full names of the selected fonts, one per
// line, in display order. Fonts shown more than once are listed once.
func (s *Store) SelectedNames() string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range s.DisplayOrder() {
		id := f.ID()
		if !s.sel.IsSelected(id) || seen[id] {
			continue
		}
		seen[id] = true
		names = append(names, f.FullName)
	}
	return strings.Join(names, "\n")
}
