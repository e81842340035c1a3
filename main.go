package main

import (
	"log"
	"net/http"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Starting server with config: Endpoint=%s, Bucket=%s, UseSSL=%v",
		config.MinioEndpoint, config.MinioBucket, config.MinioUseSSL)

	// Initialize storage service
	storageService, err := NewMinioService(config)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	log.Println("MinIO service initialized successfully")

	// Create all service dependencies (following dependency injection)
	contentTypeDetector := NewDefaultContentTypeDetector()
	filenameSanitizer := NewDefaultFilenameSanitizer()
	responseFormatter := NewDefaultResponseFormatter()

	fileService := NewDefaultFileService(storageService, contentTypeDetector, filenameSanitizer)

	// Create HTTP handler with dependencies
	httpHandler := NewHTTPHandler(fileService, responseFormatter)

	// Single endpoint: the command is carried in the JSON body
	http.HandleFunc("/", httpHandler.RelayHandler)

	serverAddr := ":" + config.ServerPort
	log.Printf("Server listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatal(err)
	}
}
