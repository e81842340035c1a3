package main

import (
	"sync"
	"time"
)

// MockStorageService implements an in-memory StorageService for testing
type MockStorageService struct {
	payloads     map[string][]byte
	contentTypes map[string]string
	modified     map[string]time.Time
	putError     error
	getError     error
	listError    error
	mu           sync.Mutex
}

func NewMockStorageService() *MockStorageService {
	return &MockStorageService{
		payloads:     make(map[string][]byte),
		contentTypes: make(map[string]string),
		modified:     make(map[string]time.Time),
	}
}

func (m *MockStorageService) ListObjects() ([]ObjectInfo, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var objects []ObjectInfo
	for name, data := range m.payloads {
		objects = append(objects, ObjectInfo{
			Name:         name,
			Size:         int64(len(data)),
			LastModified: m.modified[name],
		})
	}
	return objects, nil
}

func (m *MockStorageService) GetObject(objectName string) ([]byte, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, exists := m.payloads[objectName]; exists {
		return data, nil
	}
	// Missing object is reported as absent data, not an error
	return nil, nil
}

func (m *MockStorageService) PutObject(objectName string, data []byte, contentType string) (string, error) {
	if m.putError != nil {
		return "", m.putError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads[objectName] = data
	m.contentTypes[objectName] = contentType
	m.modified[objectName] = time.Now()
	return "files/" + objectName, nil
}

func (m *MockStorageService) PublicURL(objectName string) string {
	return "http://localhost:9000/files/" + objectName
}

func (m *MockStorageService) SetPutError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putError = err
}

func (m *MockStorageService) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

func (m *MockStorageService) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

// createTestHandler creates a handler with all dependencies for testing
func createTestHandler(storage StorageService) *HTTPHandler {
	contentTypeDetector := NewDefaultContentTypeDetector()
	filenameSanitizer := NewDefaultFilenameSanitizer()
	responseFormatter := NewDefaultResponseFormatter()

	fileService := NewDefaultFileService(storage, contentTypeDetector, filenameSanitizer)

	return NewHTTPHandler(fileService, responseFormatter)
}
