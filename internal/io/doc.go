// Package ioutils provides file system helpers for exporting fonts.
//
// This package contains functions for:
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation and file writing
//   - Picking a free file name next to existing ones
//
// # Saving exports
//
// DirSaver implements the file save capability used by the export
// package. It writes into one directory and never overwrites: when
// "Roboto.zip" exists the next export becomes "Roboto (1).zip".
//
//	saver := ioutils.NewDirSaver(settings.ExportPath)
//	path, err := saver.SaveFile(ctx, "Roboto.zip", data)
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Font: Bold/Italic") // Returns "Font_ Bold_Italic"
package ioutils
