package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/handiism/hurufa/internal/classify"
	"github.com/handiism/hurufa/internal/model"
)

// Result is the output of a categorization pass.
type Result struct {
	// Fonts is the authoritative font list: the input fonts, in input
	// order, with tags and language filled in at family granularity.
	Fonts []model.Font

	// Families holds one entry per normalized family, sorted by name.
	Families []model.FontFamily

	// Categories holds the Collection categories sorted by name, followed
	// by the Language categories sorted by name.
	Categories []model.Category
}

// Categorize groups fonts into families, reconciles each family's manual
// tags and language with the auto-detected ones, and builds the category
// tree.
//
// The input is not modified. Tags already present on any member are kept;
// style detection only adds. A family's language is the first non-empty
// language found among its members in input order, or DetectLanguage of the
// family name when there is none.
func Categorize(fonts []model.Font) Result {
	groups := GroupByFamily(fonts)

	firstLanguage := make(map[string]string, len(groups))
	for _, f := range fonts {
		key := NormalizeFamily(f.Family)
		if _, ok := firstLanguage[key]; !ok && f.Language != "" {
			firstLanguage[key] = f.Language
		}
	}

	type resolved struct {
		tags     []string
		language string
	}
	byFamily := make(map[string]resolved, len(groups))

	families := make([]model.FontFamily, 0, len(groups))
	for _, g := range groups {
		var tags []string
		for _, f := range g.Fonts {
			for _, t := range f.Tags {
				if !slices.Contains(tags, t) {
					tags = append(tags, t)
				}
			}
		}
		for _, t := range classify.DetectStyleTags(g.Name) {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
		if len(tags) == 0 {
			tags = []string{model.Uncategorized}
		}
		slices.Sort(tags)

		lang, ok := firstLanguage[g.Name]
		if !ok {
			lang = classify.DetectLanguage(g.Name)
		}
		byFamily[g.Name] = resolved{tags: tags, language: lang}

		members := make([]model.Font, len(g.Fonts))
		for i, f := range g.Fonts {
			members[i] = withOverlay(f, tags, lang)
		}
		families = append(families, model.FontFamily{
			Name:     g.Name,
			Fonts:    members,
			Tags:     slices.Clone(tags),
			Language: lang,
		})
	}

	out := make([]model.Font, len(fonts))
	for i, f := range fonts {
		r := byFamily[NormalizeFamily(f.Family)]
		out[i] = withOverlay(f, r.tags, r.language)
	}

	order := newNameOrder()
	slices.SortStableFunc(families, func(a, b model.FontFamily) int {
		return order(a.Name, b.Name)
	})

	return Result{
		Fonts:      out,
		Families:   families,
		Categories: buildCategories(families, order),
	}
}

func withOverlay(f model.Font, tags []string, lang string) model.Font {
	f.Tags = slices.Clone(tags)
	f.Language = lang
	return f
}

// buildCategories expects families already sorted by name, so members of
// each category come out sorted as well.
func buildCategories(families []model.FontFamily, order func(a, b string) int) []model.Category {
	collections := make(map[string][]model.FontFamily)
	languages := make(map[string][]model.FontFamily)
	for _, fam := range families {
		for _, t := range fam.Tags {
			collections[t] = append(collections[t], fam)
		}
		languages[fam.Language] = append(languages[fam.Language], fam)
	}

	cats := make([]model.Category, 0, len(collections)+len(languages))
	cats = appendSorted(cats, collections, model.CategoryCollection, order)
	cats = appendSorted(cats, languages, model.CategoryLanguage, order)
	return cats
}

func appendSorted(dst []model.Category, m map[string][]model.FontFamily, typ model.CategoryType, order func(a, b string) int) []model.Category {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.SortFunc(names, order)
	for _, name := range names {
		dst = append(dst, model.Category{Name: name, Type: typ, Families: m[name]})
	}
	return dst
}

// newNameOrder returns a comparison that sorts names the way a person
// reading the list expects ("alpha" next to "Alpha"), falling back to byte
// order so the result is total. A collator is not safe for concurrent
// use, so each caller gets its own.
func newNameOrder() func(a, b string) int {
	c := collate.New(language.English)
	return func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}

// SortNames sorts names in place with the same ordering as categories.
func SortNames(names []string) {
	slices.SortFunc(names, newNameOrder())
}
