package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for one service process.
type Config struct {
	App           AppConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Logger        LoggerConfig
	Remote        RemoteConfig
	Collaborators CollaboratorConfig
	Gateway       GatewayConfig
	Notification  NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// RemoteConfig tunes the shared retrying HTTP client.
type RemoteConfig struct {
	TimeoutSeconds int
	Retries        int
}

// CollaboratorConfig holds base URLs of the other services. Resolved once at
// startup and handed to constructors; never read from the environment
// mid-request.
type CollaboratorConfig struct {
	RegistryURL     string
	AssociationURL  string
	NotificationURL string
}

// GatewayRoute maps a public path prefix to an internal base URL.
type GatewayRoute struct {
	Prefix string
	Target string
}

// GatewayConfig is the static routing table of the gateway process.
type GatewayConfig struct {
	Routes []GatewayRoute
}

// NotificationConfig holds settings for outbound confirmation mail and the
// side-effect outbox.
type NotificationConfig struct {
	EmailFrom string
	OutboxKey string
}

// Load reads configuration from environment variables, applying defaults
// where possible. Each binary passes its service name and default port.
func Load(name, defaultPort string) (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", name),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", defaultPort),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Remote: RemoteConfig{
			TimeoutSeconds: getEnvAsInt("REMOTE_TIMEOUT_SECONDS", 10),
			Retries:        getEnvAsInt("REMOTE_RETRIES", 2),
		},
		Collaborators: CollaboratorConfig{
			RegistryURL:     getEnv("REGISTRY_SERVICE_URL", "http://localhost:3005"),
			AssociationURL:  getEnv("ASSOCIATION_SERVICE_URL", "http://localhost:3002"),
			NotificationURL: getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:3003"),
		},
		Notification: NotificationConfig{
			EmailFrom: getEnv("NOTIFY_EMAIL_FROM", "hr@corp.local"),
			OutboxKey: getEnv("NOTIFY_OUTBOX_KEY", "hr:beneficiary-change:outbox"),
		},
	}

	cfg.Gateway = GatewayConfig{
		Routes: []GatewayRoute{
			{Prefix: "/admin", Target: cfg.Collaborators.RegistryURL},
			{Prefix: "/hr", Target: getEnv("HR_SERVICE_URL", "http://localhost:3001")},
			{Prefix: "/file", Target: cfg.Collaborators.AssociationURL},
			{Prefix: "/notify", Target: cfg.Collaborators.NotificationURL},
		},
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

// Timeout returns the per-attempt timeout for remote calls.
func (r RemoteConfig) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
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
