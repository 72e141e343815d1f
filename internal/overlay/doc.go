// Package overlay persists the user's edits to fonts in SQLite.
//
// The font files themselves are never modified. Tags and language are
// stored per font identity in the font_overlay table and laid back over
// freshly scanned fonts at startup:
//
//	db, err := overlay.Open(settings.OverlayPath)
//	repo := overlay.NewRepo(db)
//	recs, err := repo.Load(ctx)
//	s.SetFonts(overlay.Apply(store.Ingest(idx.RawFonts()), recs))
//
// After each edit the shell calls repo.Save with the Store's fonts.
package overlay
