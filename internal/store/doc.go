// Package store holds the application state of the font organizer: the
// authoritative font list, the category tree derived from it, the
// selection and the display preferences.
//
// The Store is created by the application root and passed to whoever
// needs it; there is no package-level instance.
//
//	s := store.New(store.DefaultDisplayPrefs())
//	s.Load(raws)
//	s.Select(id, selection.Modifiers{})
//	s.BulkUpdateTags([]string{"Favorites"}, []string{model.Uncategorized})
//
// Every mutation replaces the affected fonts with edited copies and
// re-runs catalog.Categorize before returning. The flat display order
// used for shift selection is cached and rebuilt lazily whenever the
// tree, the view mode or the search query changes.
package store
