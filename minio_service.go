package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioService implements StorageService against a MinIO/S3 bucket
type MinioService struct {
	client *minio.Client
	bucket string
}

// NewMinioService creates a new MinIO service
func NewMinioService(config *Config) (*MinioService, error) {
	client, err := minio.New(config.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %v", err)
	}

	service := &MinioService{
		client: client,
		bucket: config.MinioBucket,
	}

	if err := service.ensureBucket(); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	return service, nil
}

// ensureBucket creates the bucket if it doesn't exist
func (m *MinioService) ensureBucket() error {
	ctx := context.Background()

	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("error checking if bucket exists: %v", err)
	}

	if !exists {
		err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("error creating bucket: %v", err)
		}
		log.Printf("Created bucket: %s", m.bucket)
	}

	return nil
}

// ListObjects lists all objects in the bucket
func (m *MinioService) ListObjects() ([]ObjectInfo, error) {
	ctx := context.Background()

	var objects []ObjectInfo

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %v", object.Err)
		}
		objects = append(objects, ObjectInfo{
			Name:         object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}

	return objects, nil
}

// GetObject retrieves the full content of an object
func (m *MinioService) GetObject(objectName string) ([]byte, error) {
	ctx := context.Background()

	object, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %v", objectName, err)
	}
	defer object.Close()

	var buffer bytes.Buffer
	_, err = buffer.ReadFrom(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %v", objectName, err)
	}

	return buffer.Bytes(), nil
}

// PutObject stores an object with the given content type. An existing
// object with the same name is overwritten.
func (m *MinioService) PutObject(objectName string, data []byte, contentType string) (string, error) {
	ctx := context.Background()

	reader := bytes.NewReader(data)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	options := minio.PutObjectOptions{
		ContentType: contentType,
	}

	info, err := m.client.PutObject(ctx, m.bucket, objectName, reader, int64(len(data)), options)
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %v", objectName, err)
	}

	log.Printf("Successfully saved object to MinIO: %s (size: %d bytes)", objectName, len(data))
	return info.Bucket + "/" + info.Key, nil
}

// PublicURL builds the anonymous-access URL for an object. It is reachable
// only if the bucket policy allows public reads.
func (m *MinioService) PublicURL(objectName string) string {
	endpoint := m.client.EndpointURL().String()
	return strings.TrimSuffix(endpoint, "/") + "/" + m.bucket + "/" + objectName
}
