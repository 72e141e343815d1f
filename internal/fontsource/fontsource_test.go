package fontsource

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/handiism/hurufa/internal/model"
)

func writeFonts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	sub := filepath.Join(dir, "go")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{
		filepath.Join(dir, "Go-Regular.ttf"): goregular.TTF,
		filepath.Join(sub, "Go-Bold.TTF"):    gobold.TTF,
		filepath.Join(dir, "broken.otf"):     []byte("not a font"),
		filepath.Join(dir, "readme.txt"):     []byte("hello"),
	}
	for path, data := range files {
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestIsFontFile(t *testing.T) {
	tests := map[string]bool{
		"a.ttf":  true,
		"a.OTF":  true,
		"a.ttc":  true,
		"a.otc":  true,
		"a.woff": false,
		"a":      false,
	}
	for path, want := range tests {
		if got := IsFontFile(path); got != want {
			t.Errorf("IsFontFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParseBytes_GoFonts(t *testing.T) {
	regular, err := ParseBytes("Go-Regular.ttf", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	bold, err := ParseBytes("Go-Bold.ttf", gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}

	r, b := regular[0].Font, bold[0].Font
	if r.Family == "" || r.Family != b.Family {
		t.Errorf("families = %q, %q; want one shared family", r.Family, b.Family)
	}
	if r.Style == b.Style {
		t.Errorf("styles should differ, both %q", r.Style)
	}
	if rid, bid := model.NewFont(r, "").ID(), model.NewFont(b, "").ID(); rid == bid {
		t.Errorf("both fonts have identity %q", rid)
	}
}

func TestParseBytes_Malformed(t *testing.T) {
	if _, err := ParseBytes("x.ttf", []byte("nope")); err == nil {
		t.Error("expected error for malformed font")
	}
}

func TestScan(t *testing.T) {
	dir := writeFonts(t)
	missing := filepath.Join(dir, "does-not-exist")

	idx, err := NewScanner([]string{missing, dir}, 2).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
	raws := idx.RawFonts()
	if raws[0].Family != raws[1].Family {
		t.Errorf("families = %q, %q", raws[0].Family, raws[1].Family)
	}
}

func TestScan_DeduplicatesIdentity(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ttf", "b.ttf"} {
		if err := os.WriteFile(filepath.Join(dir, name), goregular.TTF, 0644); err != nil {
			t.Fatal(err)
		}
	}

	idx, err := NewScanner([]string{dir}, 4).Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
	if got := filepath.Base(idx.Entries()[0].Path); got != "a.ttf" {
		t.Errorf("kept %s, want the first file", got)
	}
}

func TestFontData_RoundTrip(t *testing.T) {
	dir := writeFonts(t)
	idx, err := NewScanner([]string{dir}, 2).Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var bold model.RawFont
	for _, e := range idx.Entries() {
		if filepath.Base(e.Path) == "Go-Bold.TTF" {
			bold = e.Font
		}
	}

	data, err := idx.FontData(context.Background(), model.NewFont(bold, ""))
	if err != nil {
		t.Fatalf("FontData() error = %v", err)
	}
	if !bytes.Equal(data, gobold.TTF) {
		t.Error("FontData returned different bytes")
	}
}

func TestLookup_MatchOrder(t *testing.T) {
	idx := NewIndex([]Entry{
		{Font: model.RawFont{Family: "Inter", Style: "Regular", FullName: "Inter Regular", PostscriptName: "Inter-Regular"}, Path: "/a"},
		{Font: model.RawFont{Family: "Inter", Style: "Bold", FullName: "Inter Bold", PostscriptName: "Inter-Bold"}, Path: "/b"},
		{Font: model.RawFont{Family: "Lato", Style: "Regular", FullName: "Lato", PostscriptName: ""}, Path: "/c"},
	})

	tests := []struct {
		name string
		font model.Font
		path string
	}{
		{"postscript", model.Font{PostscriptName: "Inter-Bold", FullName: "Inter Regular"}, "/b"},
		{"full name", model.Font{PostscriptName: "Unknown", FullName: "Inter Regular"}, "/a"},
		{"family and style", model.Font{Family: "inter", Style: "BOLD"}, "/b"},
		{"no postscript", model.Font{FullName: "Lato"}, "/c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := idx.Lookup(tt.font)
			if !ok {
				t.Fatal("not found")
			}
			if e.Path != tt.path {
				t.Errorf("Path = %q, want %q", e.Path, tt.path)
			}
		})
	}
}

func TestFontData_NotFound(t *testing.T) {
	idx := NewIndex(nil)
	_, err := idx.FontData(context.Background(), model.Font{PostscriptName: "Missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
