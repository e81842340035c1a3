package main

import "testing"

func TestDetectFromFilename(t *testing.T) {
	detector := NewDefaultContentTypeDetector()

	tests := []struct {
		filename string
		expected string
	}{
		{"report.pdf", "application/pdf"},
		{"archive.zip", "application/zip"},
		{"notes.txt", "text/plain"},
		{"data.json", "application/json"},
		{"table.csv", "text/csv"},
		{"a.pdf", "application/pdf"},
		{"A.PDF", "application/pdf"},
		{"MiXeD.Csv", "text/csv"},
		{"binary.exe", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
		{"", "application/octet-stream"},
		{"archive.tar.zip", "application/zip"},
		{"trailingdot.", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := detector.DetectFromFilename(tt.filename); got != tt.expected {
			t.Errorf("DetectFromFilename(%q) = %q, want %q", tt.filename, got, tt.expected)
		}
	}
}
