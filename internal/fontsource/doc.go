// Package fontsource finds installed fonts and serves their bytes.
//
// A Scanner walks font directories, parses every .ttf, .otf, .ttc and
// .otc file with golang.org/x/image/font/sfnt and reads the family,
// subfamily, full and PostScript names from the name table. Files are
// parsed concurrently, bounded by MaxConcurrent, but the resulting Index
// lists fonts in walk order so repeated scans agree.
//
//	idx, err := fontsource.NewScanner(settings.FontDirs, settings.MaxConcurrentScans).Scan(ctx)
//	store.Load(idx.RawFonts())
//
// Index also implements the binary retrieval side of exporting: FontData
// finds the file behind a font by PostScript name, then full name, then
// family and style, and returns ErrNotFound when nothing matches. Members
// of a collection file are served as the whole collection.
package fontsource
