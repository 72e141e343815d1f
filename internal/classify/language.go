package classify

import (
	"strings"

	"github.com/handiism/hurufa/internal/model"
)

// keywordRule maps a tag to the lowercase substrings that imply it.
type keywordRule struct {
	Tag      string
	Keywords []string
}

// languageRules is searched in order; the first rule with a matching
// keyword wins.
var languageRules = []keywordRule{
	{"Arabic", []string{"arabic", "arabc", "arab", "naskh", "kufi"}},
	{"Hebrew", []string{"hebrew"}},
	{"Thai", []string{"thai"}},
	{"Devanagari", []string{"devanagari"}},
	{"Hindi", []string{"hindi"}},
	{"Chinese", []string{"chinese", "hanzi", "cjk sc", "cjk tc", "simplified", "traditional"}},
	{"Japanese", []string{"japanese", "hiragana", "katakana", "kana", "cjk jp"}},
	{"Korean", []string{"korean", "hangul", "korea", "cjk kr"}},
	{"Russian", []string{"cyrillic", "russian"}},
}

// languages lists every assignable language, in picker order.
var languages = []string{
	model.DefaultLanguage,
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Russian",
	"Chinese",
	"Japanese",
	"Korean",
	"Arabic",
	"Hebrew",
	"Hindi",
	"Thai",
	"Devanagari",
}

// DetectLanguage returns the best-guess written language for a family name.
// Matching is a case-insensitive substring search over a fixed keyword
// table; the first matching language wins. Names matching nothing are
// English.
func DetectLanguage(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range languageRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Tag
		}
	}
	return model.DefaultLanguage
}

// Languages returns the languages a user may assign, in display order.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
