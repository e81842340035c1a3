package main

import "time"

// ObjectInfo describes a stored object as reported by the backend listing
type ObjectInfo struct {
	Name         string
	Size         int64
	LastModified time.Time
}

// StorageService interface for bucket operations
type StorageService interface {
	// ListObjects lists every object in the bucket.
	ListObjects() ([]ObjectInfo, error)
	// GetObject returns the full content of an object, or nil if the
	// object does not exist.
	GetObject(objectName string) ([]byte, error)
	// PutObject stores data under objectName, overwriting any existing
	// object with the same name. It returns the bucket-qualified path.
	PutObject(objectName string, data []byte, contentType string) (string, error)
	// PublicURL returns the unauthenticated URL for an object. Whether
	// the URL is reachable depends on the bucket policy.
	PublicURL(objectName string) string
}
