package catalog

import (
	"slices"
	"strings"

	"github.com/handiism/hurufa/internal/model"
)

// OfType returns the categories of the given type, preserving order.
func OfType(categories []model.Category, typ model.CategoryType) []model.Category {
	var out []model.Category
	for _, c := range categories {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// DisplayOrder flattens categories into the order fonts are shown:
// categories in order, then families in order, then each family's
// weight-sorted fonts. A family listed under several categories appears
// once per category.
func DisplayOrder(categories []model.Category) []model.Font {
	var out []model.Font
	for _, c := range categories {
		for _, fam := range c.Families {
			out = append(out, fam.Fonts...)
		}
	}
	return out
}

// Filter keeps, in every category, only the families whose name contains
// query (case-insensitive). Categories left empty are dropped. A blank
// query returns categories unchanged.
func Filter(categories []model.Category, query string) []model.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return categories
	}

	var out []model.Category
	for _, c := range categories {
		var fams []model.FontFamily
		for _, fam := range c.Families {
			if strings.Contains(strings.ToLower(fam.Name), q) {
				fams = append(fams, fam)
			}
		}
		if len(fams) > 0 {
			out = append(out, model.Category{Name: c.Name, Type: c.Type, Families: fams})
		}
	}
	return out
}

// Search collects every family matching query across categories into a
// single Search category, de-duplicated and sorted by name.
func Search(categories []model.Category, query string) model.Category {
	result := model.Category{Name: strings.TrimSpace(query), Type: model.CategorySearch}
	if result.Name == "" {
		return result
	}

	seen := make(map[string]bool)
	for _, c := range Filter(categories, query) {
		for _, fam := range c.Families {
			if seen[fam.Name] {
				continue
			}
			seen[fam.Name] = true
			result.Families = append(result.Families, fam)
		}
	}

	order := newNameOrder()
	slices.SortStableFunc(result.Families, func(a, b model.FontFamily) int {
		return order(a.Name, b.Name)
	})
	return result
}
