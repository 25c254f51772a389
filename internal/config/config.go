package config

import (
	"os"
	"strconv"
)

// Config holds service configuration loaded from environment variables.
type Config struct {
	Port        string
	LogLevel    string
	APIKey      string // when set, /generate-ppt requires ApiKey auth
	MaxUploadMB int64
	TempDir     string // base directory for per-request work dirs; "" means the system default
}

// Load reads the configuration from environment variables.
func Load() *Config {
	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_MB", "50"), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 50
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		APIKey:      getEnv("PPT_API_KEY", ""),
		MaxUploadMB: maxUpload,
		TempDir:     getEnv("TEMP_DIR", ""),
	}
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
