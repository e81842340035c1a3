package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	ServerPort     string `yaml:"serverPort"`
	MinioEndpoint  string `yaml:"minioEndpoint"`
	MinioAccessKey string `yaml:"minioAccessKey"`
	MinioSecretKey string `yaml:"minioSecretKey"`
	MinioBucket    string `yaml:"minioBucket"`
	MinioUseSSL    bool   `yaml:"minioUseSSL"`
}

// LoadConfig loads configuration from environment variables with defaults.
// If CONFIG_FILE points at a YAML file, its non-empty fields override the
// environment.
func LoadConfig() (*Config, error) {
	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "3003"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "files"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyConfigFile(config, path); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// applyConfigFile overlays non-empty fields from a YAML file onto config
func applyConfigFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	overlay := &Config{}
	if err := yaml.Unmarshal(data, overlay); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	if overlay.ServerPort != "" {
		config.ServerPort = overlay.ServerPort
	}
	if overlay.MinioEndpoint != "" {
		config.MinioEndpoint = overlay.MinioEndpoint
	}
	if overlay.MinioAccessKey != "" {
		config.MinioAccessKey = overlay.MinioAccessKey
	}
	if overlay.MinioSecretKey != "" {
		config.MinioSecretKey = overlay.MinioSecretKey
	}
	if overlay.MinioBucket != "" {
		config.MinioBucket = overlay.MinioBucket
	}
	if overlay.MinioUseSSL {
		config.MinioUseSSL = true
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
