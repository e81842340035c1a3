package main

import (
	"fmt"
	"time"
)

// FileMetadata carries the per-object attributes shown in listings
type FileMetadata struct {
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
}

// FileInfo represents one listed file in the list response
type FileInfo struct {
	Name     string       `json:"name"`
	Metadata FileMetadata `json:"metadata"`
}

// ListResponse is the JSON body returned for a list command
type ListResponse struct {
	Message string     `json:"message"`
	Count   int        `json:"count"`
	Files   []FileInfo `json:"files"`
}

// UploadResponse is the JSON body returned for a successful upload
type UploadResponse struct {
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	PublicURL   string `json:"publicUrl"`
}

// ResponseFormatter formats HTTP response bodies
type ResponseFormatter interface {
	FormatListResponse(objects []ObjectInfo) ListResponse
	FormatUploadResponse(result *UploadResult) UploadResponse
}

// DefaultResponseFormatter handles formatting HTTP responses
type DefaultResponseFormatter struct{}

// NewDefaultResponseFormatter creates a new response formatter
func NewDefaultResponseFormatter() *DefaultResponseFormatter {
	return &DefaultResponseFormatter{}
}

// FormatListResponse formats the response for the list command. Files is
// always a JSON array, never null.
func (f *DefaultResponseFormatter) FormatListResponse(objects []ObjectInfo) ListResponse {
	files := make([]FileInfo, 0, len(objects))
	for _, obj := range objects {
		files = append(files, FileInfo{
			Name: obj.Name,
			Metadata: FileMetadata{
				Size:         obj.Size,
				LastModified: obj.LastModified.Format(time.RFC3339),
			},
		})
	}

	return ListResponse{
		Message: fmt.Sprintf("✅ Retrieved %d file(s)", len(files)),
		Count:   len(files),
		Files:   files,
	}
}

// FormatUploadResponse formats the response for a successful upload
func (f *DefaultResponseFormatter) FormatUploadResponse(result *UploadResult) UploadResponse {
	return UploadResponse{
		Message:     "✅ File uploaded successfully",
		Filename:    result.Filename,
		Path:        result.Path,
		ContentType: result.ContentType,
		Size:        result.Size,
		PublicURL:   result.PublicURL,
	}
}
