package store

import (
	"slices"
	"strings"

	"github.com/handiism/hurufa/internal/catalog"
	"github.com/handiism/hurufa/internal/model"
)

// BulkUpdateTags edits the tags of every selected font: tags in remove
// are dropped first, then tags in add are appended when missing. Fonts
// outside the selection are untouched.
func (s *Store) BulkUpdateTags(add, remove []string) {
	s.mutateSelected(func(f *model.Font) {
		f.Tags = editTags(f.Tags, add, remove)
	})
}

// BulkSetLanguage assigns language to every selected font.
func (s *Store) BulkSetLanguage(language string) {
	s.mutateSelected(func(f *model.Font) {
		f.Language = language
	})
}

// MoveSelectionToCollection is the drag-to-collection gesture: the
// selected fonts leave from (when set) and Uncategorized, and join to.
func (s *Store) MoveSelectionToCollection(from, to string) {
	to = strings.TrimSpace(to)
	if to == "" {
		return
	}
	remove := []string{model.Uncategorized}
	if from != "" && from != to {
		remove = append(remove, from)
	}
	s.BulkUpdateTags([]string{to}, remove)
}

// UpdateFamily replaces the tags and language of every font in the named
// family. An empty language leaves the current one.
func (s *Store) UpdateFamily(name string, tags []string, language string) {
	ids, ok := s.familyIDs[name]
	if !ok {
		return
	}
	tags = cleanTags(tags)
	s.mutate(ids, func(f *model.Font) {
		f.Tags = slices.Clone(tags)
		if language != "" {
			f.Language = language
		}
	})
}

// RenameCollection replaces tag from with to on every font.
func (s *Store) RenameCollection(from, to string) {
	to = strings.TrimSpace(to)
	if from == "" || to == "" || from == to {
		return
	}
	s.mutate(s.idsWithTag(from), func(f *model.Font) {
		f.Tags = editTags(f.Tags, []string{to}, []string{from})
	})
}

// DeleteCollection removes tag from every font. Style tags come back on
// the next pass if the family name still matches them.
func (s *Store) DeleteCollection(tag string) {
	s.mutate(s.idsWithTag(tag), func(f *model.Font) {
		f.Tags = editTags(f.Tags, nil, []string{tag})
	})
}

func (s *Store) idsWithTag(tag string) []string {
	var ids []string
	for _, f := range s.fonts {
		if f.HasTag(tag) {
			ids = append(ids, f.ID())
		}
	}
	return ids
}

func (s *Store) mutateSelected(fn func(*model.Font)) {
	var ids []string
	for _, f := range s.fonts {
		if s.sel.IsSelected(f.ID()) {
			ids = append(ids, f.ID())
		}
	}
	s.mutate(ids, fn)
}

// mutate applies fn to clones of the fonts with the given identities and
// re-runs categorization.
func (s *Store) mutate(ids []string, fn func(*model.Font)) {
	if len(ids) == 0 {
		return
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	next := make([]model.Font, len(s.fonts))
	for i, f := range s.fonts {
		if want[f.ID()] {
			f = f.Clone()
			fn(&f)
		}
		next[i] = f
	}
	s.fonts = next
	s.recategorize()
}

func editTags(tags, add, remove []string) []string {
	out := make([]string, 0, len(tags)+len(add))
	for _, t := range tags {
		if !slices.Contains(remove, t) {
			out = append(out, t)
		}
	}
	for _, t := range cleanTags(add) {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func cleanTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	catalog.SortNames(out)
	return out
}
