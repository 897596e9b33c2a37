package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	ModelPath       string
	MetadataPath    string
	UploadDirectory string
	DemoDirectory   string
	LogDirectory    string
	SensorAddress   string // host[:port] of the ESP32 field camera
	SensorTimeout   int    // seconds to wait for the sensor before giving up
	MaxUploadSize   int64  // maximum accepted upload size in MB
}

func Load() *Config {
	// Optional .env next to the binary; real environment variables win.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnvAsInt("PORT", 5000),
		ModelPath:       getEnv("MODEL_PATH", filepath.Join(".", "models", "best_model.onnx")),
		MetadataPath:    getEnv("METADATA_PATH", filepath.Join(".", "models", "model_metadata.json")),
		UploadDirectory: getEnv("UPLOAD_DIR", filepath.Join(".", "static", "uploads")),
		DemoDirectory:   getEnv("DEMO_DIR", filepath.Join(".", "static", "demo")),
		LogDirectory:    getEnv("LOG_DIR", filepath.Join(".", "logs")),
		SensorAddress:   getEnv("SENSOR_ADDR", "192.168.98.105"),
		SensorTimeout:   getEnvAsInt("SENSOR_TIMEOUT", 10),
		MaxUploadSize:   getEnvAsInt64("MAX_UPLOAD_SIZE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
