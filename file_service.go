package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBase64 reports a payload that is not valid standard base64
var ErrInvalidBase64 = errors.New("invalid base64 string")

// ErrFileNotFound reports a download target the backend has no data for
var ErrFileNotFound = errors.New("file not found")

// UploadResult describes a stored upload
type UploadResult struct {
	Filename    string
	Path        string
	ContentType string
	Size        int
	PublicURL   string
}

// FileService orchestrates file operations against the storage backend
type FileService interface {
	List() ([]ObjectInfo, error)
	Download(name string) ([]byte, string, error)
	Upload(input string, filename string, hasFilename bool) (*UploadResult, error)
}

// DefaultFileService orchestrates file operations
type DefaultFileService struct {
	storage   StorageService
	detector  ContentTypeDetector
	sanitizer FilenameSanitizer
}

// NewDefaultFileService creates a new file service with all dependencies
func NewDefaultFileService(
	storage StorageService,
	detector ContentTypeDetector,
	sanitizer FilenameSanitizer,
) *DefaultFileService {
	return &DefaultFileService{
		storage:   storage,
		detector:  detector,
		sanitizer: sanitizer,
	}
}

// List lists all objects in the bucket
func (s *DefaultFileService) List() ([]ObjectInfo, error) {
	return s.storage.ListObjects()
}

// Download fetches the full content of an object and resolves its content
// type from the name. Returns ErrFileNotFound when the backend has no data
// for the name but reported no error.
func (s *DefaultFileService) Download(name string) ([]byte, string, error) {
	data, err := s.storage.GetObject(name)
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		return nil, "", ErrFileNotFound
	}

	return data, s.detector.DetectFromFilename(name), nil
}

// Upload decodes a base64 payload and stores it under the resolved name,
// overwriting any existing object with that name.
func (s *DefaultFileService) Upload(input string, filename string, hasFilename bool) (*UploadResult, error) {
	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return nil, ErrInvalidBase64
	}

	name := ""
	if hasFilename {
		name = s.sanitizer.Sanitize(filename)
	}
	if name == "" {
		name = fmt.Sprintf("file_%d.bin", time.Now().UnixMilli())
	}

	contentType := s.detector.DetectFromFilename(name)

	path, err := s.storage.PutObject(name, data, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		Filename:    name,
		Path:        path,
		ContentType: contentType,
		Size:        len(data),
		PublicURL:   s.storage.PublicURL(name),
	}, nil
}
