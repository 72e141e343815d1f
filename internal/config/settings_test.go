package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/store"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.MaxConcurrentScans != 8 {
		t.Errorf("MaxConcurrentScans = %d, want 8", s.MaxConcurrentScans)
	}
	if s.LogLevel != "warn" || s.ViewMode != "collections" {
		t.Errorf("LogLevel = %q, ViewMode = %q", s.LogLevel, s.ViewMode)
	}
	if s.ToDisplayPrefs() != store.DefaultDisplayPrefs() {
		t.Errorf("ToDisplayPrefs() = %+v", s.ToDisplayPrefs())
	}
	if len(s.FontDirs) == 0 {
		t.Error("no default font directories")
	}
}

func TestDefaultFontDirs(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "/Library/Fonts"},
		{"linux", "/usr/share/fonts"},
		{"freebsd", "/usr/share/fonts"},
		{"windows", `C:\Windows\Fonts`},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			dirs := DefaultFontDirs(tt.goos, "/home/u")
			if !slices.Contains(dirs, tt.want) {
				t.Errorf("DefaultFontDirs(%q) = %v, missing %q", tt.goos, dirs, tt.want)
			}
		})
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.MaxConcurrentScans != DefaultSettings().MaxConcurrentScans {
		t.Errorf("got %+v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.ExportPath = "/tmp/fonts"
	s.SetViewMode(model.CategoryLanguage)
	s.SetDisplayPrefs(store.DisplayPrefs{FontSize: 36, CustomText: "Sphinx", TextColor: "#333333", LineHeight: 120, LetterSpacing: 2})
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ExportPath != "/tmp/fonts" {
		t.Errorf("ExportPath = %q", got.ExportPath)
	}
	if got.ToViewMode() != model.CategoryLanguage {
		t.Errorf("ToViewMode() = %v", got.ToViewMode())
	}
	if got.ToDisplayPrefs().CustomText != "Sphinx" || got.ToDisplayPrefs().FontSize != 36 {
		t.Errorf("prefs = %+v", got.ToDisplayPrefs())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"log_level": "debug"}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.FontSize != 24 {
		t.Errorf("FontSize = %d, want default 24", s.FontSize)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestToViewMode(t *testing.T) {
	for in, want := range map[string]model.CategoryType{
		"collections": model.CategoryCollection,
		"languages":   model.CategoryLanguage,
		"":            model.CategoryCollection,
		"bogus":       model.CategoryCollection,
	} {
		s := &Settings{ViewMode: in}
		if got := s.ToViewMode(); got != want {
			t.Errorf("ToViewMode(%q) = %v, want %v", in, got, want)
		}
	}
}
