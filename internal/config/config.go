package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Env string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// RateLimit is requests per second per client IP, RateBurst its bucket size.
	RateLimit float64
	RateBurst int
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

// RedisConfig is optional: an empty Addr disables the summary cache and
// idempotency keys.
type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker       string
	GroupID      string
	PollInterval time.Duration
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "hrms"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Kafka: KafkaConfig{
			Broker:  getEnv("KAFKA_BROKER", ""),
			GroupID: getEnv("KAFKA_GROUP_ID", "hrms-salary-master"),
		},
	}

	var err error
	if cfg.Database.MaxRetries, err = getInt("DB_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.Server, err = loadServer(); err != nil {
		return nil, err
	}
	if cfg.Kafka.PollInterval, err = getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadServer() (ServerConfig, error) {
	srv := ServerConfig{Port: getEnv("PORT", "3000")}

	var err error
	if srv.ReadTimeout, err = getDuration("HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return srv, err
	}
	if srv.WriteTimeout, err = getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return srv, err
	}
	if srv.IdleTimeout, err = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return srv, err
	}

	rate, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return srv, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	srv.RateLimit = rate
	if srv.RateBurst, err = getInt("RATE_LIMIT_BURST", 20); err != nil {
		return srv, err
	}

	return srv, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
