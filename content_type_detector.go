package main

import (
	"path/filepath"
	"strings"
)

// ContentTypeDetector detects content types from filenames
type ContentTypeDetector interface {
	DetectFromFilename(filename string) string
}

// DefaultContentTypeDetector maps file extensions to MIME types
type DefaultContentTypeDetector struct{}

// NewDefaultContentTypeDetector creates a new content type detector
func NewDefaultContentTypeDetector() *DefaultContentTypeDetector {
	return &DefaultContentTypeDetector{}
}

// DetectFromFilename detects content type from the filename extension.
// The match is case-insensitive and always returns a value: unknown or
// missing extensions resolve to application/octet-stream.
func (d *DefaultContentTypeDetector) DetectFromFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".zip":
		return "application/zip"
	case ".txt":
		return "text/plain"
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
