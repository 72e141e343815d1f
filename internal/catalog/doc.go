// Package catalog turns a flat list of fonts into the two-axis category
// tree shown to the user.
//
// # Grouping
//
// GroupByFamily collapses fonts under NormalizeFamily keys. Normalization
// strips Powerline suffixes and trailing weight words, but keeps "Noto ..."
// and Mono/Console families verbatim so distinct scripts and monospace
// cuts are not merged.
//
// # Categorization
//
// Categorize returns a new font list with tags and language reconciled per
// family, plus the category tree:
//
//	res := catalog.Categorize(fonts)
//	for _, c := range res.Categories {
//	    fmt.Println(c.Type, c.Name, len(c.Families))
//	}
//
// Collection categories come first, then Language categories, each sorted
// by name.
//
// # Views
//
// DisplayOrder flattens displayed categories into the visual font order
// used for range selection. Filter and Search narrow the tree by family
// name.
package catalog
