// Package config provides configuration management for hurufa.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values, including per-platform font directories
//   - Conversion to store.DisplayPrefs and the browser view mode
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Scans the platform font directories
//	// Exports to ~/Downloads
//	// Keeps tags and languages in ~/.hurufa/overlay.db
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.ExportPath = "/custom/path"
//	err := settings.Save(config.DefaultPath())
package config
