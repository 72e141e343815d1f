package overlay

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/handiism/hurufa/internal/model"
)

func openTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "overlay.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepo(db)
}

func TestSaveAndLoad(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	fonts := []model.Font{
		{Family: "Roboto", Style: "Bold", PostscriptName: "Roboto-Bold", Tags: []string{"Favorites", "Headings"}, Language: "English"},
		{Family: "Arial", FullName: "Arial Regular", Tags: []string{model.Uncategorized}, Language: "German"},
	}
	if err := repo.Save(ctx, fonts); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	recs, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Load() returned %d records, want 2", len(recs))
	}

	roboto := recs["Roboto-Bold"]
	if !slices.Equal(roboto.Tags, []string{"Favorites", "Headings"}) || roboto.Language != "English" {
		t.Errorf("Roboto-Bold = %+v", roboto)
	}
	if roboto.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}

	arial := recs["Arial Regular"]
	if len(arial.Tags) != 0 {
		t.Errorf("Uncategorized should not be stored, got %v", arial.Tags)
	}
	if arial.Language != "German" {
		t.Errorf("Arial language = %q", arial.Language)
	}
}

func TestSave_Upserts(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	f := model.Font{PostscriptName: "Inter-Regular", Tags: []string{"Body"}, Language: "English"}
	if err := repo.Save(ctx, []model.Font{f}); err != nil {
		t.Fatal(err)
	}
	f.Tags = []string{"UI"}
	if err := repo.Save(ctx, []model.Font{f}); err != nil {
		t.Fatal(err)
	}

	recs, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := recs["Inter-Regular"].Tags; !slices.Equal(got, []string{"UI"}) {
		t.Errorf("Tags = %v, want [UI]", got)
	}
}

func TestDelete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, []model.Font{{PostscriptName: "Lato-Regular"}}); err != nil {
		t.Fatal(err)
	}
	ok, err := repo.Delete(ctx, "Lato-Regular")
	if err != nil || !ok {
		t.Fatalf("Delete() = %v, %v", ok, err)
	}
	ok, err = repo.Delete(ctx, "Lato-Regular")
	if err != nil || ok {
		t.Errorf("second Delete() = %v, %v; want false, nil", ok, err)
	}
}

func TestApply(t *testing.T) {
	fonts := []model.Font{
		{PostscriptName: "Roboto-Regular", Language: "English"},
		{PostscriptName: "Lato-Regular", Language: "English", Tags: []string{"Sans Serif"}},
	}
	recs := map[string]Record{
		"Roboto-Regular": {ID: "Roboto-Regular", Tags: []string{"Favorites"}, Language: "Italian"},
		"Lato-Regular":   {ID: "Lato-Regular", Tags: []string{"Body"}},
	}

	out := Apply(fonts, recs)

	if !slices.Equal(out[0].Tags, []string{"Favorites"}) || out[0].Language != "Italian" {
		t.Errorf("Roboto = %+v", out[0])
	}
	if !slices.Equal(out[1].Tags, []string{"Body"}) || out[1].Language != "English" {
		t.Errorf("Lato = %+v", out[1])
	}
	if fonts[0].Language != "English" || fonts[0].Tags != nil {
		t.Error("Apply modified its input")
	}
}
