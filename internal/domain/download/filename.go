// Package download holds pure helpers for naming downloaded files.
package download

import (
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when no valid filename can be determined.
const DefaultFilename = "download"

// SanitizeFilename strips any directory components from name so a suggested
// file name cannot escape the chosen directory. "." and ".." become DefaultFilename.
func SanitizeFilename(name string) string {
	// filepath.Base only handles the OS-native separator.
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")

	clean := filepath.Base(name)
	if clean == "." || clean == ".." || clean == "/" || clean == "" {
		return DefaultFilename
	}
	return clean
}

// ResolveSuggestedName picks the name offered in the save dialog.
// Priority: the engine's suggested name, then the last path segment of uri.
func ResolveSuggestedName(suggested, uri string) string {
	if strings.TrimSpace(suggested) != "" {
		return SanitizeFilename(suggested)
	}
	if uri == "" {
		return DefaultFilename
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return SanitizeFilename(uri)
	}
	return SanitizeFilename(parsed.Path)
}

// SplitSavePath splits the absolute path returned by the save dialog into the
// destination directory and the file name.
func SplitSavePath(savePath string) (dir, name string) {
	savePath = strings.TrimPrefix(savePath, "file://")
	dir = filepath.Dir(savePath)
	name = SanitizeFilename(filepath.Base(savePath))
	return dir, name
}
