// Package selection implements the click-selection model over font cards.
//
// Plain and toggle clicks work on whole families: clicking one weight
// selects or deselects every weight of its family. Shift clicks walk the
// flat display order of individual fonts between the anchor and the
// clicked font, then widen each touched font to its family.
//
//	sel := selection.New()
//	sel.Select(view, regular, selection.Modifiers{})
//	sel.Select(view, other, selection.Modifiers{Shift: true})
//	fmt.Println(sel.IDs())
package selection
