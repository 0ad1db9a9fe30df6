package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application, database, Redis, Kafka, gRPC, logging and JWT configuration.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	GRPC     GRPCConfig
}

// AppConfig holds HTTP server and logging settings.
type AppConfig struct {
	Host      string `env:"APP_HOST" env-default:"localhost"`
	Port      string `env:"APP_PORT" env-default:"8080"`
	LogLevel  string `env:"APP_LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"APP_LOG_FORMAT" env-default:"json"`
	// Users registering with one of these emails get the admin capability.
	AdminEmails []string `env:"APP_ADMIN_EMAILS" env-separator:","`
}

// PostgresConfig holds connection settings for the relational store.
type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// RedisConfig holds settings for the token deny-list store.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD" env-default:""`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds activity event publishing settings.
// Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers        []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic          string   `env:"KAFKA_TOPIC" env-default:"usecase-activity"`
	BatchTimeoutMs int      `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"10"`
}

// Enabled reports whether at least one broker is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// BatchTimeout returns how long the writer waits to fill a batch before sending it.
func (c KafkaConfig) BatchTimeout() time.Duration {
	return time.Duration(c.BatchTimeoutMs) * time.Millisecond
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY" env-default:"my_super_secret_key"`
	ExpSecond int    `env:"JWT_EXP_SECOND" env-default:"3600"`
}

// Expiration returns the token lifetime.
func (c JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpSecond) * time.Second
}

// GRPCConfig holds the health service listener settings.
// An empty port disables the gRPC listener.
type GRPCConfig struct {
	HealthPort string `env:"GRPC_HEALTH_PORT" env-default:""`
}

// Load reads the optional env file at path and binds the environment to Config.
// Variables already present in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.App.AdminEmails = normalizeEmails(cfg.App.AdminEmails)
	return &cfg, nil
}

func normalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
