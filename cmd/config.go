package cmd

import (
	"fmt"
	"strconv"
	"time"

	"routing/internal/adapters/out/locationservice"
	"routing/internal/jobs"
)

// Action store backends selectable with ACTION_STORE.
const (
	ActionStorePostgres = "postgres"
	ActionStoreRedis    = "redis"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ActionStore   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LocationServiceTimeout time.Duration
	IntegrityCheckSchedule string
	SeedPath               string
}

// LoadConfig reads the configuration through getenv, applying defaults for
// unset variables. Malformed numbers and durations are errors.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:               value("HTTP_PORT", "8080"),
		DBHost:                 value("DB_HOST", "localhost"),
		DBPort:                 value("DB_PORT", "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              value("DB_SSLMODE", "disable"),
		ActionStore:            value("ACTION_STORE", ActionStorePostgres),
		RedisAddr:              value("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getenv("REDIS_PASSWORD"),
		LocationServiceTimeout: locationservice.DefaultTimeout,
		IntegrityCheckSchedule: value("INTEGRITY_CHECK_SCHEDULE", jobs.DefaultIntegritySchedule),
		SeedPath:               value("SEED_PATH", "actions.yaml"),
	}

	if raw := getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		config.RedisDB = db
	}

	if raw := getenv("LOCATION_SERVICE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOCATION_SERVICE_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("invalid LOCATION_SERVICE_TIMEOUT %q: must be positive", raw)
		}
		config.LocationServiceTimeout = timeout
	}

	switch config.ActionStore {
	case ActionStorePostgres, ActionStoreRedis:
	default:
		return Config{}, fmt.Errorf("invalid ACTION_STORE %q: want %s or %s",
			config.ActionStore, ActionStorePostgres, ActionStoreRedis)
	}

	return config, nil
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
