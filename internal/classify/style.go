package classify

import "strings"

var styleRules = []keywordRule{
	{"Serif", []string{"serif"}},
	{"Sans Serif", []string{"sans"}},
	{"Monospace", []string{"mono", "console"}},
	{"Display", []string{"display"}},
	{"Script", []string{"script", "hand"}},
}

// DetectStyleTags returns every style tag whose keywords occur in name,
// in table order. Unlike DetectLanguage all matches are collected, so
// "Noto Sans Mono" yields both "Sans Serif" and "Monospace". The result is
// empty when nothing matches; the Uncategorized fallback belongs to the
// caller.
func DetectStyleTags(name string) []string {
	lower := strings.ToLower(name)
	var tags []string
	for _, rule := range styleRules {
		if containsAny(lower, rule.Keywords) {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}
