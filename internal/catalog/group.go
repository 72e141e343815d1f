package catalog

import (
	"regexp"
	"slices"
	"strings"

	"github.com/handiism/hurufa/internal/model"
)

var (
	powerlineSuffix = regexp.MustCompile(`(?i)\s+(for|derivative)\s+powerline$`)
	monoWord        = regexp.MustCompile(`(?i)\b(mono|console)\b`)
	weightSuffix    = regexp.MustCompile(`[- ](Regular|Bold|Italic|Light|Medium|Black)$`)
)

// NormalizeFamily returns the grouping key for a raw family name.
//
// The rules, in order:
//  1. Strip " for powerline" / " derivative powerline".
//  2. Names starting with "Noto " are kept as is, so the Noto scripts stay apart.
//  3. Names containing the word Mono or Console are kept as is.
//  4. Otherwise strip one trailing "-Bold" / " Bold" style suffix. Only the
//     capitalized style words match, so "Acme bold" is left alone.
//
// Rule 4 is a heuristic: a brand name such as "Acme Black" is merged into
// "Acme".
func NormalizeFamily(family string) string {
	name := powerlineSuffix.ReplaceAllString(family, "")
	if strings.HasPrefix(name, "Noto ") {
		return name
	}
	if monoWord.MatchString(name) {
		return name
	}
	return strings.TrimRight(weightSuffix.ReplaceAllString(name, ""), " ")
}

// Group is one family bucket produced by GroupByFamily.
type Group struct {
	Name  string
	Fonts []model.Font
}

// GroupByFamily collapses fonts into family groups keyed by NormalizeFamily.
// Groups are returned in order of first appearance; fonts inside a group
// are sorted with model.CompareFonts. Input order is kept for fonts that
// compare equal.
func GroupByFamily(fonts []model.Font) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, f := range fonts {
		key := NormalizeFamily(f.Family)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Name: key})
		}
		groups[i].Fonts = append(groups[i].Fonts, f)
	}
	for i := range groups {
		slices.SortStableFunc(groups[i].Fonts, model.CompareFonts)
	}
	return groups
}
