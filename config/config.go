package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Snapshot   SnapshotConfig
	Generation GenerationConfig
	Drafts     DraftConfig
	App        AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
	AccessKey   string
}

// StorageConfig selects the key-value substrate the project store runs on.
type StorageConfig struct {
	Driver string
	Backend
}

// Backend holds connection settings for every supported driver; only the
// fields of the selected driver are read.
type Backend struct {
	FileDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DSN           string
	SQLitePath    string
	S3Bucket      string
	S3Region      string
	S3Endpoint    string
	S3PathStyle   bool
}

type SnapshotConfig struct {
	Driver   string
	Schedule string
	Backend
}

type GenerationConfig struct {
	Provider        string
	Model           string
	GeminiAPIKey    string
	AnthropicAPIKey string
	BaseURL         string
	Timeout         time.Duration
	RateLimit       float64
	RateBurst       int
}

type DraftConfig struct {
	TTL       time.Duration
	MaxDrafts int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

var (
	storageDrivers    = []string{"memory", "file", "redis", "postgres", "sqlite", "s3"}
	generationVendors = []string{"gemini", "anthropic"}
)

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	provider := strings.ToLower(getEnv("GEN_PROVIDER", "gemini"))
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
			AccessKey:   getEnv("API_ACCESS_KEY", ""),
		},
		Storage: StorageConfig{
			Driver:  strings.ToLower(getEnv("STORAGE_DRIVER", "file")),
			Backend: loadBackend(""),
		},
		Snapshot: SnapshotConfig{
			Driver:   strings.ToLower(getEnv("SNAPSHOT_DRIVER", "file")),
			Schedule: getEnv("SNAPSHOT_CRON", "0 0 0 * * *"),
			Backend:  loadBackend("SNAPSHOT_"),
		},
		Generation: GenerationConfig{
			Provider:        provider,
			Model:           getEnv("GEN_MODEL", defaultModel(provider)),
			GeminiAPIKey:    firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:         getEnv("GEN_BASE_URL", ""),
			Timeout:         getEnvAsDuration("GEN_TIMEOUT", 0),
			RateLimit:       getEnvAsFloat("GEN_RATE_LIMIT", 0),
			RateBurst:       getEnvAsInt("GEN_RATE_BURST", 1),
		},
		Drafts: DraftConfig{
			TTL:       getEnvAsDuration("DRAFT_TTL", 2*time.Hour),
			MaxDrafts: getEnvAsInt("DRAFT_MAX", 1000),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadBackend(prefix string) Backend {
	return Backend{
		FileDir:       getEnv(prefix+"STORAGE_FILE_DIR", "data"),
		RedisAddr:     getEnv(prefix+"REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv(prefix+"REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt(prefix+"REDIS_DB", 0),
		DSN:           getEnv(prefix+"DB_DSN", ""),
		SQLitePath:    getEnv(prefix+"SQLITE_PATH", "data/prompt_pronto.db"),
		S3Bucket:      getEnv(prefix+"S3_BUCKET", ""),
		S3Region:      getEnv(prefix+"S3_REGION", "us-east-1"),
		S3Endpoint:    getEnv(prefix+"S3_ENDPOINT", ""),
		S3PathStyle:   getEnvAsBool(prefix+"S3_PATH_STYLE", false),
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if !contains(storageDrivers, c.Storage.Driver) {
		return fmt.Errorf("STORAGE_DRIVER %q is not supported", c.Storage.Driver)
	}
	if err := c.Storage.Backend.validate(c.Storage.Driver, ""); err != nil {
		return err
	}

	if !contains(storageDrivers, c.Snapshot.Driver) {
		return fmt.Errorf("SNAPSHOT_DRIVER %q is not supported", c.Snapshot.Driver)
	}

	if !contains(generationVendors, c.Generation.Provider) {
		return fmt.Errorf("GEN_PROVIDER %q is not supported", c.Generation.Provider)
	}
	if c.Generation.RateLimit < 0 {
		return fmt.Errorf("GEN_RATE_LIMIT must not be negative")
	}

	return nil
}

// ValidateSnapshot checks the snapshot target; only the worker needs it.
func (c *Config) ValidateSnapshot() error {
	return c.Snapshot.Backend.validate(c.Snapshot.Driver, "SNAPSHOT_")
}

func (b Backend) validate(driver, prefix string) error {
	switch driver {
	case "postgres":
		if b.DSN == "" {
			return fmt.Errorf("%sDB_DSN is required for the postgres driver", prefix)
		}
	case "s3":
		if b.S3Bucket == "" {
			return fmt.Errorf("%sS3_BUCKET is required for the s3 driver", prefix)
		}
	}
	return nil
}

func defaultModel(provider string) string {
	if provider == "anthropic" {
		return "claude-haiku-4-5-20251001"
	}
	return "gemini-2.5-flash"
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
