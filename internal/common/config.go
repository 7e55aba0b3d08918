package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
	Carton CartonConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract        string
	Pdftoppm         string
	TesseractLang    string
	TessdataDir      string
	DPI              int
	MaxPages         int
	PageTimeout      time.Duration
	ArtifactCacheDir string
}

// CartonConfig holds carton-catalog configuration
type CartonConfig struct {
	CatalogPath string // xlsx or json; empty -> built-in catalog
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:         getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TesseractLang:    getEnv("TESSERACT_LANG", "fra+eng"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			DPI:              getEnvAsInt("OCR_DPI", 300),
			MaxPages:         getEnvAsInt("OCR_MAX_PAGES", 10),
			PageTimeout:      getEnvAsDuration("OCR_PAGE_TIMEOUT", 90*time.Second),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		Carton: CartonConfig{
			CatalogPath: getEnv("CARTON_CATALOG", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	if c.OCR.MaxPages <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_MAX_PAGES must be positive", ErrInvalidInput)
	}
	return nil
}
