package selection

import (
	"slices"

	"github.com/handiism/hurufa/internal/model"
)

// View is what the selection model needs to know about the displayed fonts.
type View interface {
	// FamilyIDs returns the identities of every font in the family of the
	// font with the given identity, including that font itself.
	FamilyIDs(id string) []string

	// DisplayOrder returns the fonts in the order they are currently shown.
	DisplayOrder() []model.Font
}

// Modifiers describes the keys held during a click.
type Modifiers struct {
	// Shift extends a range from the anchor.
	Shift bool

	// Toggle is the ctrl/cmd modifier: add or remove a family without
	// clearing the rest of the selection.
	Toggle bool
}

// Model tracks selected font identities and the anchor of the last
// non-range click.
//
// The zero value is not ready for use; call New.
type Model struct {
	selected  map[string]struct{}
	anchor    string
	anchorPos int // display position of the anchor, -1 when unknown
}

// New returns an empty selection.
func New() *Model {
	return &Model{selected: make(map[string]struct{}), anchorPos: -1}
}

// Select applies a click on font.
//
// A plain click selects only the font's family. A toggle click adds the
// family, or removes it when every member is already selected. Both set
// the anchor to the clicked font.
//
// A shift click with an anchor selects, for every font between the anchor
// and the clicked font in display order, that font's whole family. The
// anchor stays where it was so further shift clicks extend from the same
// point. When the anchor or the clicked font is not displayed the click
// degrades to a plain click.
//
// Positions are resolved by identity, so a font shown more than once is
// taken at its first occurrence. Use SelectAt when the clicked row is known.
func (m *Model) Select(v View, font model.Font, mods Modifiers) {
	m.click(v, font.ID(), -1, mods)
}

// SelectAt applies a click on the font at position pos of v's display
// order. Ranges run from the anchor's row to pos itself rather than to the
// first row showing the same font. Out of range positions are ignored.
func (m *Model) SelectAt(v View, pos int, mods Modifiers) {
	order := v.DisplayOrder()
	if pos < 0 || pos >= len(order) {
		return
	}
	m.click(v, order[pos].ID(), pos, mods)
}

func (m *Model) click(v View, id string, pos int, mods Modifiers) {
	if mods.Shift && m.anchor != "" {
		if m.selectRange(v, id, pos) {
			return
		}
		m.selectOnly(v, id, pos)
		return
	}

	if mods.Toggle {
		family := v.FamilyIDs(id)
		if m.hasAll(family) {
			m.remove(family)
		} else {
			m.add(family)
		}
		m.anchor, m.anchorPos = id, pos
		return
	}

	m.selectOnly(v, id, pos)
}

func (m *Model) selectOnly(v View, id string, pos int) {
	clear(m.selected)
	m.add(v.FamilyIDs(id))
	m.anchor, m.anchorPos = id, pos
}

func (m *Model) selectRange(v View, id string, pos int) bool {
	order := v.DisplayOrder()
	from := positionOf(order, m.anchor, m.anchorPos)
	to := positionOf(order, id, pos)
	if from < 0 || to < 0 {
		return false
	}
	if from > to {
		from, to = to, from
	}

	clear(m.selected)
	for _, f := range order[from : to+1] {
		m.add(v.FamilyIDs(f.ID()))
	}
	return true
}

// SelectAll selects every font in fonts. The anchor becomes the last one.
func (m *Model) SelectAll(fonts []model.Font) {
	for _, f := range fonts {
		m.selected[f.ID()] = struct{}{}
	}
	if len(fonts) > 0 {
		m.anchor, m.anchorPos = fonts[len(fonts)-1].ID(), -1
	}
}

// DeselectAll empties the selection and drops the anchor.
func (m *Model) DeselectAll() {
	clear(m.selected)
	m.anchor, m.anchorPos = "", -1
}

// SelectByIDs adds or removes ids en masse without touching the anchor.
func (m *Model) SelectByIDs(ids []string, on bool) {
	if on {
		m.add(ids)
	} else {
		m.remove(ids)
	}
}

// IsSelected reports whether the font with identity id is selected.
func (m *Model) IsSelected(id string) bool {
	_, ok := m.selected[id]
	return ok
}

// Len returns the number of selected identities.
func (m *Model) Len() int {
	return len(m.selected)
}

// Anchor returns the identity of the anchor font, or "" if there is none.
func (m *Model) Anchor() string {
	return m.anchor
}

// IDs returns the selected identities in sorted order.
func (m *Model) IDs() []string {
	ids := make([]string, 0, len(m.selected))
	for id := range m.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *Model) add(ids []string) {
	for _, id := range ids {
		m.selected[id] = struct{}{}
	}
}

func (m *Model) remove(ids []string) {
	for _, id := range ids {
		delete(m.selected, id)
	}
}

func (m *Model) hasAll(ids []string) bool {
	for _, id := range ids {
		if _, ok := m.selected[id]; !ok {
			return false
		}
	}
	return true
}

// positionOf returns pos when it still shows id, otherwise the first
// position showing id.
func positionOf(fonts []model.Font, id string, pos int) int {
	if pos >= 0 && pos < len(fonts) && fonts[pos].ID() == id {
		return pos
	}
	return slices.IndexFunc(fonts, func(f model.Font) bool { return f.ID() == id })
}
