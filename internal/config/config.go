package config

// Config holds all application configuration loaded from environment
// variables, parsed with github.com/caarlos0/env.
type Config struct {
	// Server configuration
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"CravingInterventionService"`

	// Redis configuration (remote profile store and device message bus)
	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	// Behavior tunables (YAML file, see internal/settings)
	SettingsPath string `env:"SETTINGS_PATH" envDefault:"config/intervention.yaml"`

	// Local blocklist mirror (bbolt file; deleted on reinstall)
	BlocklistMirrorPath string `env:"BLOCKLIST_MIRROR_PATH" envDefault:"data/blocklist.db"`

	// Logging
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile           string `env:"LOG_FILE"`
	LogFileMaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"20"`
	LogFileMaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"3"`

	// Telemetry
	OtelEnabled bool `env:"OTEL_ENABLED" envDefault:"true"`
}
