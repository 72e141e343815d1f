// Package model defines the core data structures used throughout
// the hurufa font organizer.
//
// # Font
//
// Font is one concrete weight/style of a typeface, wrapped from a RawFont
// reported by the font source:
//
//	font := model.NewFont(raw, "English")
//	fmt.Println(font.ID())     // PostScript name, or full name if absent
//	fmt.Println(font.Weight()) // 700 for "Bold Italic"
//
// # FontFamily
//
// FontFamily groups fonts under a normalized family name. Its fonts are
// ordered with CompareFonts (weight, then style).
//
// # Category
//
// Category is a node of the two-axis tree: a Collection (tag), a Language,
// or a Search result. A family appears in exactly one Language category and
// in one or more Collection categories; families without tags live in the
// Uncategorized collection.
package model
