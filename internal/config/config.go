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
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	EventsQueueKey string        `env:"EVENTS_QUEUE_KEY" envDefault:"incident_events"`

	// Upload Config
	UploadDir      string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadBaseURL  string        `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`
	UploadMaxBytes int64         `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
	UploadTimeout  time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"30s"`

	// Предел размера тела запроса
	MaxRequestBytes int64 `env:"MAX_REQUEST_BYTES" envDefault:"67108864"`

	// Таймаут на обращения к хранилищу
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBMaxConns:         int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		CacheTTL:           getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		EventsQueueKey:     getEnv("EVENTS_QUEUE_KEY", "incident_events"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL:      strings.TrimRight(getEnv("UPLOAD_BASE_URL", "/uploads"), "/"),
		UploadMaxBytes:     int64(getEnvAsInt("UPLOAD_MAX_BYTES", 10<<20)),
		UploadTimeout:      getEnvAsDuration("UPLOAD_TIMEOUT", 30*time.Second),
		MaxRequestBytes:    int64(getEnvAsInt("MAX_REQUEST_BYTES", 64<<20)),
		StoreTimeout:       getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
		APIKeys:            getEnvAsList("API_KEYS"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.DBMaxConns < 1 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}

	return cfg, nil
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятой
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}
