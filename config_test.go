package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected *Config
	}{
		{
			name:    "default values when no env vars set",
			envVars: map[string]string{},
			expected: &Config{
				ServerPort:     "3003",
				MinioEndpoint:  "localhost:9000",
				MinioAccessKey: "minioadmin",
				MinioSecretKey: "minioadmin",
				MinioBucket:    "files",
				MinioUseSSL:    false,
			},
		},
		{
			name: "custom values from env vars",
			envVars: map[string]string{
				"SERVER_PORT":      "8080",
				"MINIO_ENDPOINT":   "minio.example.com:9000",
				"MINIO_ACCESS_KEY": "customkey",
				"MINIO_SECRET_KEY": "customsecret",
				"MINIO_BUCKET":     "custom-bucket",
				"MINIO_USE_SSL":    "true",
			},
			expected: &Config{
				ServerPort:     "8080",
				MinioEndpoint:  "minio.example.com:9000",
				MinioAccessKey: "customkey",
				MinioSecretKey: "customsecret",
				MinioBucket:    "custom-bucket",
				MinioUseSSL:    true,
			},
		},
		{
			name: "partial env vars with defaults",
			envVars: map[string]string{
				"SERVER_PORT":   "9090",
				"MINIO_USE_SSL": "true",
			},
			expected: &Config{
				ServerPort:     "9090",
				MinioEndpoint:  "localhost:9000",
				MinioAccessKey: "minioadmin",
				MinioSecretKey: "minioadmin",
				MinioBucket:    "files",
				MinioUseSSL:    true,
			},
		},
		{
			name: "SSL false with invalid value",
			envVars: map[string]string{
				"MINIO_USE_SSL": "invalid",
			},
			expected: &Config{
				ServerPort:     "3003",
				MinioEndpoint:  "localhost:9000",
				MinioAccessKey: "minioadmin",
				MinioSecretKey: "minioadmin",
				MinioBucket:    "files",
				MinioUseSSL:    false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Pin every key so host environment values cannot leak in;
			// getEnv treats empty as unset.
			keys := []string{
				"SERVER_PORT", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY",
				"MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_USE_SSL", "CONFIG_FILE",
			}
			for _, key := range keys {
				t.Setenv(key, tt.envVars[key])
			}

			config, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig returned error: %v", err)
			}

			if *config != *tt.expected {
				t.Errorf("got %+v, want %+v", config, tt.expected)
			}
		})
	}
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "env.example.com:9000")
	t.Setenv("MINIO_BUCKET", "env-bucket")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := "minioEndpoint: file.example.com:9000\nminioUseSSL: true\n"
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	// File fields override the environment
	if config.MinioEndpoint != "file.example.com:9000" {
		t.Errorf("MinioEndpoint: got %s, want file.example.com:9000", config.MinioEndpoint)
	}
	if !config.MinioUseSSL {
		t.Error("Expected MinioUseSSL true from config file")
	}

	// Fields absent from the file keep their environment values
	if config.MinioBucket != "env-bucket" {
		t.Errorf("MinioBucket: got %s, want env-bucket", config.MinioBucket)
	}
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestLoadConfig_MalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("minioEndpoint: [broken"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error for a malformed config file")
	}
}
