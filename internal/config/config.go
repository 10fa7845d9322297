package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string
	HTTPPort       string
	LogLevel       string
	MigrationsPath string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Cache Config: redis или local
	CacheType string
	CacheTTL  time.Duration

	// Webhook Config
	WebhookURL        string
	WebhookSecret     string
	WebhookTimeout    time.Duration
	WebhookMaxRetries int
	WebhookBaseDelay  time.Duration

	// Stats Config
	StatsTimeWindowMinutes int

	// API Keys for authentication
	APIKeys []string

	// Consolidation
	MergeRadiusMeters         float64
	MergeWindow               time.Duration
	NearbyDefaultRadiusMeters float64
	NearbyMaxRadiusMeters     float64
	StoreTimeout              time.Duration

	// Rate limit на отправку отчётов и голосов
	RateLimitLimit  int64
	RateLimitPeriod time.Duration

	// Uploads
	UploadDir   string
	MaxUploadMB int64

	// Расписание обновления метрик (cron)
	MetricsRefreshSpec string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		MigrationsPath:            getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                 os.Getenv("REDIS_PASSWORD"),
		RedisDB:                   getEnvAsInt("REDIS_DB", 0),
		CacheType:                 getEnv("CACHE_TYPE", "redis"),
		CacheTTL:                  getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		WebhookURL:                os.Getenv("WEBHOOK_URL"),
		WebhookSecret:             os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:            getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:         getEnvAsInt("WEBHOOK_MAX_RETRIES", 5),
		WebhookBaseDelay:          getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes:    getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		MergeRadiusMeters:         getEnvAsFloat("MERGE_RADIUS_METERS", 200),
		MergeWindow:               getEnvAsDuration("MERGE_WINDOW", 15*time.Minute),
		NearbyDefaultRadiusMeters: getEnvAsFloat("NEARBY_DEFAULT_RADIUS_METERS", 500),
		NearbyMaxRadiusMeters:     getEnvAsFloat("NEARBY_MAX_RADIUS_METERS", 50000),
		StoreTimeout:              getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
		RateLimitLimit:            int64(getEnvAsInt("RATE_LIMIT_LIMIT", 30)),
		RateLimitPeriod:           getEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute),
		UploadDir:                 getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:               int64(getEnvAsInt("MAX_UPLOAD_MB", 10)),
		MetricsRefreshSpec:        getEnv("METRICS_REFRESH_SPEC", "@every 1m"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.CacheType != "redis" && c.CacheType != "local" {
		return fmt.Errorf("CACHE_TYPE must be redis or local, got %q", c.CacheType)
	}
	if c.MergeRadiusMeters <= 0 || c.MergeWindow <= 0 {
		return fmt.Errorf("MERGE_RADIUS_METERS and MERGE_WINDOW must be positive")
	}
	if c.NearbyDefaultRadiusMeters > c.NearbyMaxRadiusMeters {
		return fmt.Errorf("NEARBY_DEFAULT_RADIUS_METERS exceeds NEARBY_MAX_RADIUS_METERS")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
