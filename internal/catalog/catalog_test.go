package catalog

import (
	"slices"
	"testing"

	"github.com/handiism/hurufa/internal/model"
)

func font(family, style string) model.Font {
	return model.Font{
		Family:         family,
		Style:          style,
		FullName:       family + " " + style,
		PostscriptName: family + "-" + style,
	}
}

func TestNormalizeFamily(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Roboto", "Roboto"},
		{"Roboto-Bold", "Roboto"},
		{"Roboto Bold", "Roboto"},
		{"Roboto Bold Italic", "Roboto Bold"},
		{"Acme Black", "Acme"},
		{"Fira Code for Powerline", "Fira Code"},
		{"Meslo LG S Derivative Powerline", "Meslo LG S"},
		{"DejaVu Sans Mono for Powerline", "DejaVu Sans Mono"},
		{"Noto Sans Bold", "Noto Sans Bold"},
		{"JetBrains Mono Bold", "JetBrains Mono Bold"},
		{"Lucida Console Regular", "Lucida Console Regular"},
		{"Monoton Regular", "Monoton"},
		{"Boldface", "Boldface"},
		{"Acme bold", "Acme bold"},
		{"Acme-black", "Acme-black"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeFamily(tt.input); got != tt.want {
				t.Errorf("NormalizeFamily(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGroupByFamily(t *testing.T) {
	fonts := []model.Font{
		font("Roboto", "Bold"),
		font("Arial", "Regular"),
		font("Roboto", "Regular"),
		font("Roboto Light", "Light"),
		font("Roboto", "Thin"),
	}

	groups := GroupByFamily(fonts)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "Roboto" || groups[1].Name != "Arial" {
		t.Errorf("group names = %q, %q; want Roboto, Arial", groups[0].Name, groups[1].Name)
	}

	var styles []string
	for _, f := range groups[0].Fonts {
		styles = append(styles, f.Style)
	}
	want := []string{"Thin", "Light", "Regular", "Bold"}
	if !slices.Equal(styles, want) {
		t.Errorf("Roboto styles = %v, want %v", styles, want)
	}
}

func TestGroupByFamily_Idempotent(t *testing.T) {
	fonts := []model.Font{
		font("Fira Code for Powerline", "Regular"),
		font("Fira Code", "Bold"),
		font("Noto Sans Arabic", "Regular"),
		font("Noto Sans", "Regular"),
		font("Inter-Medium", "Medium"),
		font("Inter", "Regular"),
	}

	first := GroupByFamily(fonts)
	var flat []model.Font
	for _, g := range first {
		flat = append(flat, g.Fonts...)
	}
	second := GroupByFamily(flat)

	if len(first) != len(second) {
		t.Fatalf("group count changed: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("group %d name = %q, want %q", i, second[i].Name, first[i].Name)
		}
		if !slices.Equal(fontIDs(first[i].Fonts), fontIDs(second[i].Fonts)) {
			t.Errorf("group %q fonts differ", first[i].Name)
		}
	}
}

func TestCategorize_UncategorizedScenario(t *testing.T) {
	res := Categorize([]model.Font{
		font("Roboto", "Regular"),
		font("Roboto", "Bold"),
		font("Arial", "Regular"),
	})

	cols := OfType(res.Categories, model.CategoryCollection)
	if len(cols) != 1 || cols[0].Name != model.Uncategorized {
		t.Fatalf("collections = %v, want [Uncategorized]", categoryNames(cols))
	}
	if got := familyNames(cols[0]); !slices.Equal(got, []string{"Arial", "Roboto"}) {
		t.Errorf("Uncategorized families = %v", got)
	}

	langs := OfType(res.Categories, model.CategoryLanguage)
	if len(langs) != 1 || langs[0].Name != "English" {
		t.Fatalf("languages = %v, want [English]", categoryNames(langs))
	}
	if got := familyNames(langs[0]); !slices.Equal(got, []string{"Arial", "Roboto"}) {
		t.Errorf("English families = %v", got)
	}
}

func TestCategorize_CollectionsBeforeLanguages(t *testing.T) {
	res := Categorize([]model.Font{
		font("Open Sans", "Regular"),
		font("Noto Naskh Arabic", "Regular"),
		font("Fira Mono", "Regular"),
	})

	var got []string
	for _, c := range res.Categories {
		got = append(got, c.Type.String()+":"+c.Name)
	}
	want := []string{
		"Collections:Monospace",
		"Collections:Sans Serif",
		"Collections:Uncategorized",
		"Language:Arabic",
		"Language:English",
	}
	if !slices.Equal(got, want) {
		t.Errorf("categories = %v, want %v", got, want)
	}
}

func TestCategorize_TagMonotonicity(t *testing.T) {
	regular := font("Open Sans", "Regular")
	regular.Tags = []string{"Favorites"}
	bold := font("Open Sans", "Bold")
	bold.Tags = []string{"Headings"}

	res := Categorize([]model.Font{regular, bold})

	for _, f := range res.Fonts {
		for _, tag := range []string{"Favorites", "Headings", "Sans Serif"} {
			if !f.HasTag(tag) {
				t.Errorf("%s lost tag %q: %v", f.ID(), tag, f.Tags)
			}
		}
		if f.HasTag(model.Uncategorized) {
			t.Errorf("%s should not be Uncategorized", f.ID())
		}
	}
}

func TestCategorize_LanguageSingularity(t *testing.T) {
	a := font("Inter", "Regular")
	b := font("Inter", "Bold")
	b.Language = "German"
	c := font("Inter", "Light")
	c.Language = "French"

	res := Categorize([]model.Font{a, b, c})

	for _, f := range res.Fonts {
		if f.Language != "German" {
			t.Errorf("%s language = %q, want first non-empty %q", f.ID(), f.Language, "German")
		}
	}
	if len(res.Families) != 1 || res.Families[0].Language != "German" {
		t.Errorf("family language = %q", res.Families[0].Language)
	}
}

func TestCategorize_DetectsLanguageWhenUnset(t *testing.T) {
	res := Categorize([]model.Font{font("Noto Sans Hebrew", "Regular")})
	if got := res.Fonts[0].Language; got != "Hebrew" {
		t.Errorf("language = %q, want Hebrew", got)
	}
}

func TestCategorize_DoesNotMutateInput(t *testing.T) {
	in := []model.Font{font("Roboto", "Regular")}
	in[0].Tags = []string{"Favorites"}

	res := Categorize(in)
	res.Fonts[0].Tags[0] = "Changed"

	if in[0].Language != "" {
		t.Errorf("input language mutated to %q", in[0].Language)
	}
	if !slices.Equal(in[0].Tags, []string{"Favorites"}) {
		t.Errorf("input tags mutated: %v", in[0].Tags)
	}
}

func TestCategorize_FamilyInSeveralCollections(t *testing.T) {
	res := Categorize([]model.Font{font("Noto Sans Mono", "Regular")})

	cols := OfType(res.Categories, model.CategoryCollection)
	if got := categoryNames(cols); !slices.Equal(got, []string{"Monospace", "Sans Serif"}) {
		t.Errorf("collections = %v", got)
	}
	langs := OfType(res.Categories, model.CategoryLanguage)
	if len(langs) != 1 {
		t.Errorf("family appears in %d language categories, want 1", len(langs))
	}
}

func TestCategorize_PreservesInputOrder(t *testing.T) {
	in := []model.Font{
		font("Zilla", "Bold"),
		font("Arial", "Regular"),
		font("Zilla", "Regular"),
	}
	res := Categorize(in)

	for i := range in {
		if res.Fonts[i].ID() != in[i].ID() {
			t.Errorf("Fonts[%d] = %q, want %q", i, res.Fonts[i].ID(), in[i].ID())
		}
	}
}

func TestDisplayOrder(t *testing.T) {
	res := Categorize([]model.Font{
		font("Roboto", "Bold"),
		font("Arial", "Regular"),
		font("Roboto", "Regular"),
	})

	order := DisplayOrder(OfType(res.Categories, model.CategoryCollection))
	var ids []string
	for _, f := range order {
		ids = append(ids, f.ID())
	}
	want := []string{"Arial-Regular", "Roboto-Regular", "Roboto-Bold"}
	if !slices.Equal(ids, want) {
		t.Errorf("display order = %v, want %v", ids, want)
	}
}

func TestFilterAndSearch(t *testing.T) {
	res := Categorize([]model.Font{
		font("Open Sans", "Regular"),
		font("Source Sans Pro", "Regular"),
		font("Source Serif Pro", "Regular"),
		font("Roboto", "Regular"),
	})

	filtered := Filter(res.Categories, "SOURCE")
	for _, c := range filtered {
		for _, fam := range c.Families {
			if fam.Name != "Source Sans Pro" && fam.Name != "Source Serif Pro" {
				t.Errorf("Filter kept %q in %q", fam.Name, c.Name)
			}
		}
	}
	for _, c := range filtered {
		if c.Name == model.Uncategorized {
			t.Error("Filter should drop empty categories")
		}
	}

	if got := Filter(res.Categories, "  "); len(got) != len(res.Categories) {
		t.Errorf("blank query changed categories: %d -> %d", len(res.Categories), len(got))
	}

	result := Search(res.Categories, "source")
	if result.Type != model.CategorySearch {
		t.Errorf("Search type = %v", result.Type)
	}
	if got := familyNames(result); !slices.Equal(got, []string{"Source Sans Pro", "Source Serif Pro"}) {
		t.Errorf("Search families = %v", got)
	}
}

func categoryNames(cats []model.Category) []string {
	var out []string
	for _, c := range cats {
		out = append(out, c.Name)
	}
	return out
}

func familyNames(c model.Category) []string {
	var out []string
	for _, f := range c.Families {
		out = append(out, f.Name)
	}
	return out
}

func fontIDs(fonts []model.Font) []string {
	var out []string
	for _, f := range fonts {
		out = append(out, f.ID())
	}
	return out
}
