// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Catalog     CatalogConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Log         LogConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	ReadTimeout        int
	WriteTimeout       int
	IdleTimeout        int
	MaxMultipartMemory int64 // in bytes
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	LogLevel     string
}

type CatalogConfig struct {
	Store            string // memory or sqlite
	Seed             bool
	MaxImages        int   // per request
	MaxImageSize     int64 // in bytes
	DefaultPageLimit int
}

type RateLimitConfig struct {
	Enabled          bool
	UploadsPerMinute int
	UploadBurst      int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level      string
	Format     string // text or json
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type I18nConfig struct {
	DefaultLocale string
}

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "3000"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:        getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:       getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:        getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			MaxMultipartMemory: int64(getEnvAsInt("SERVER_MAX_MULTIPART_MB", 32)) << 20,
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "sqlite"),
			DSN:          getEnv("DB_DSN", "file:catalog?mode=memory&cache=shared"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Catalog: CatalogConfig{
			Store:            strings.ToLower(getEnv("CATALOG_STORE", StoreMemory)),
			Seed:             getEnvAsBool("CATALOG_SEED", false),
			MaxImages:        getEnvAsInt("CATALOG_MAX_IMAGES", 10),
			MaxImageSize:     int64(getEnvAsInt("CATALOG_MAX_IMAGE_MB", 10)) << 20,
			DefaultPageLimit: getEnvAsInt("CATALOG_PAGE_LIMIT", 20),
		},
		RateLimit: RateLimitConfig{
			Enabled:          getEnvAsBool("RATE_LIMIT_ENABLED", true),
			UploadsPerMinute: getEnvAsInt("RATE_LIMIT_UPLOADS_PER_MINUTE", 30),
			UploadBurst:      getEnvAsInt("RATE_LIMIT_UPLOAD_BURST", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 64),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 7),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 7),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Catalog.Store != StoreMemory && c.Catalog.Store != StoreSQLite {
		return fmt.Errorf("unknown catalog store %q (want %s or %s)", c.Catalog.Store, StoreMemory, StoreSQLite)
	}

	if c.Catalog.MaxImages < 1 {
		return fmt.Errorf("CATALOG_MAX_IMAGES must be positive")
	}

	if c.Catalog.MaxImageSize < 1 {
		return fmt.Errorf("CATALOG_MAX_IMAGE_MB must be positive")
	}

	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.RateLimit.Enabled && (c.RateLimit.UploadsPerMinute < 1 || c.RateLimit.UploadBurst < 1) {
		return fmt.Errorf("upload rate limit and burst must be positive when rate limiting is enabled")
	}

	return nil
}

// Helper functions
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
