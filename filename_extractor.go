package main

import (
	"path/filepath"
	"strings"
)

// FilenameSanitizer reduces client-supplied filenames to safe object names
type FilenameSanitizer interface {
	Sanitize(filename string) string
}

// DefaultFilenameSanitizer strips path components from filenames
type DefaultFilenameSanitizer struct{}

// NewDefaultFilenameSanitizer creates a new filename sanitizer
func NewDefaultFilenameSanitizer() *DefaultFilenameSanitizer {
	return &DefaultFilenameSanitizer{}
}

// Sanitize returns the bare base name of a client-supplied filename so it
// cannot escape the bucket namespace. Empty input stays empty.
func (s *DefaultFilenameSanitizer) Sanitize(filename string) string {
	if filename == "" {
		return ""
	}

	// Client may be on a platform using backslash separators
	filename = strings.ReplaceAll(filename, "\\", "/")
	base := filepath.Base(filename)
	if base == "." || base == "/" {
		return ""
	}

	return base
}
