package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/store"
)

// Settings holds all configuration options.
type Settings struct {
	// Font discovery
	FontDirs           []string `json:"font_dirs"`
	MaxConcurrentScans int      `json:"max_concurrent_scans"`

	// Storage
	ExportPath  string `json:"export_path"`
	OverlayPath string `json:"overlay_path"`

	// Browser
	ViewMode string `json:"view_mode"` // collections, languages
	LogLevel string `json:"log_level"` // debug, info, warn, error

	// Preview
	FontSize      int    `json:"font_size"`
	CustomText    string `json:"custom_text"`
	TextColor     string `json:"text_color"`
	LineHeight    int    `json:"line_height"`
	LetterSpacing int    `json:"letter_spacing"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	prefs := store.DefaultDisplayPrefs()
	return &Settings{
		FontDirs:           DefaultFontDirs(runtime.GOOS, homeDir),
		MaxConcurrentScans: 8,

		ExportPath:  filepath.Join(homeDir, "Downloads"),
		OverlayPath: filepath.Join(homeDir, ".hurufa", "overlay.db"),

		ViewMode: "collections",
		LogLevel: "warn",

		FontSize:      prefs.FontSize,
		CustomText:    prefs.CustomText,
		TextColor:     prefs.TextColor,
		LineHeight:    prefs.LineHeight,
		LetterSpacing: prefs.LetterSpacing,
	}
}

// DefaultFontDirs returns the usual system and user font directories
// for goos.
func DefaultFontDirs(goos, homeDir string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/Library/Fonts",
			filepath.Join(homeDir, "Library", "Fonts"),
			"/System/Library/Fonts",
			"/Network/Library/Fonts",
		}
	case "windows":
		dirs := []string{`C:\Windows\Fonts`}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(homeDir, ".local", "share", "fonts"),
			filepath.Join(homeDir, ".fonts"),
		}
	}
}

// DefaultPath returns the settings file location, ~/.hurufa/config.json.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".hurufa", "config.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToDisplayPrefs converts settings to store.DisplayPrefs.
func (s *Settings) ToDisplayPrefs() store.DisplayPrefs {
	return store.DisplayPrefs{
		FontSize:      s.FontSize,
		CustomText:    s.CustomText,
		TextColor:     s.TextColor,
		LineHeight:    s.LineHeight,
		LetterSpacing: s.LetterSpacing,
	}
}

// SetDisplayPrefs copies p back into the settings.
func (s *Settings) SetDisplayPrefs(p store.DisplayPrefs) {
	s.FontSize = p.FontSize
	s.CustomText = p.CustomText
	s.TextColor = p.TextColor
	s.LineHeight = p.LineHeight
	s.LetterSpacing = p.LetterSpacing
}

// ToViewMode converts the view_mode setting to a category axis.
func (s *Settings) ToViewMode() model.CategoryType {
	switch s.ViewMode {
	case "languages", "language":
		return model.CategoryLanguage
	default:
		return model.CategoryCollection
	}
}

// SetViewMode stores mode as the view_mode setting.
func (s *Settings) SetViewMode(mode model.CategoryType) {
	if mode == model.CategoryLanguage {
		s.ViewMode = "languages"
		return
	}
	s.ViewMode = "collections"
}
