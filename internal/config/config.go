package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend identifiers.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config aggregates runtime configuration for the tracker.
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
	Alerts   AlertConfig
	Notify   NotificationConfig
}

// NotificationConfig holds the stub notification endpoint.
type NotificationConfig struct {
	WebhookURL string
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StorageConfig selects and parameterizes the slot backend.
type StorageConfig struct {
	Backend         string
	Dir             string
	TicketsKey      string
	StatusesKey     string
	PersistStatuses bool
}

// RedisConfig holds Redis connection values for the redis slot backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig holds DB connection values for the postgres slot backend.
type PostgresConfig struct {
	DSN           string
	MaxConns      int32
	MinConns      int32
	RunMigrations bool
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AlertConfig tunes the pending-user alert derivation.
type AlertConfig struct {
	PendingThresholdDays int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ticket-tracker"),
			Host:                  getEnv("APP_HOST", "127.0.0.1"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Storage: StorageConfig{
			Backend:         getEnv("STORAGE_BACKEND", BackendFile),
			Dir:             getEnv("STORAGE_DIR", "data"),
			TicketsKey:      getEnv("STORAGE_TICKETS_KEY", "tickets_data"),
			StatusesKey:     getEnv("STORAGE_STATUSES_KEY", "statuses_data"),
			PersistStatuses: getEnvAsBool("STORAGE_PERSIST_STATUSES", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Postgres: PostgresConfig{
			DSN:           os.Getenv("POSTGRES_DSN"),
			MaxConns:      int32(getEnvAsInt("POSTGRES_MAX_CONNS", 4)),
			MinConns:      int32(getEnvAsInt("POSTGRES_MIN_CONNS", 1)),
			RunMigrations: getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Alerts: AlertConfig{
			PendingThresholdDays: getEnvAsInt("ALERT_THRESHOLD_DAYS", 3),
		},
		Notify: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	switch cfg.Storage.Backend {
	case BackendFile, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Backend == BackendPostgres && cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN required when STORAGE_BACKEND=postgres")
	}
	if cfg.Alerts.PendingThresholdDays <= 0 {
		cfg.Alerts.PendingThresholdDays = 3
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// PendingThreshold returns the age beyond which a pending-user ticket counts
// as an active alert.
func (a AlertConfig) PendingThreshold() time.Duration {
	return time.Duration(a.PendingThresholdDays) * 24 * time.Hour
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
