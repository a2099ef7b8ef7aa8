package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"hangerflow/internal/adapters/out/postgres"
	"hangerflow/internal/jobs"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	DBLockTimeout        time.Duration
	Store                string
	StrictTransitions    bool
	ShortageScanSchedule string
	AuditRelaySchedule   string
	LogLevel             slog.Level
}

// ConfigFromEnv reads every key through getenv. Unset keys fall back to
// defaults that run the service against a local postgres.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:             get("HTTP_PORT", "8080"),
		DBHost:               get("DB_HOST", "localhost"),
		DBPort:               get("DB_PORT", "5432"),
		DBUser:               get("DB_USER", "postgres"),
		DBPassword:           get("DB_PASSWORD", ""),
		DBName:               get("DB_NAME", "hangerflow"),
		DBSslMode:            get("DB_SSLMODE", "disable"),
		DBLockTimeout:        postgres.DefaultLockTimeout,
		Store:                strings.ToLower(get("STORE", StorePostgres)),
		ShortageScanSchedule: get("SHORTAGE_SCAN_SCHEDULE", jobs.DefaultShortageScanSchedule),
		AuditRelaySchedule:   get("AUDIT_RELAY_SCHEDULE", jobs.DefaultAuditRelaySchedule),
		LogLevel:             slog.LevelInfo,
	}

	if v := get("DB_LOCK_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("DB_LOCK_TIMEOUT must be a positive duration, got %q", v)
		}
		config.DBLockTimeout = d
	}

	if v := get("STRICT_TRANSITIONS", ""); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("STRICT_TRANSITIONS must be a boolean, got %q", v)
		}
		config.StrictTransitions = strict
	}

	if v := get("LOG_LEVEL", ""); v != "" {
		if err := config.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if config.Store != StorePostgres && config.Store != StoreMemory {
		return Config{}, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, config.Store)
	}

	return config, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
