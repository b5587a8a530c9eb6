package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"ordermanager/internal/adapters/out/postgres"
	"ordermanager/internal/core/domain/model/order"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort     string
	HTTPBasePath string
	Storage      string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	OrderStatsSchedule string
	StrictTransitions  bool
	LogLevel           slog.Level
}

// LoadConfig reads the configuration from the environment after loading
// envFile, if it exists. Variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		HTTPBasePath:           getEnv("HTTP_BASE_PATH", ""),
		Storage:                strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", "postgres"),
		DBName:                 getEnv("DB_NAME", "ordermanager"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		OrderStatsSchedule:     lookupEnv("ORDER_STATS_SCHEDULE", "0 */5 * * * *"),
	}

	var errs []error
	cfg.DBMaxOpenConns, errs = parseEnv(errs, "DB_MAX_OPEN_CONNS", 25, strconv.Atoi)
	cfg.DBMaxIdleConns, errs = parseEnv(errs, "DB_MAX_IDLE_CONNS", 5, strconv.Atoi)
	cfg.DBConnMaxLifetime, errs = parseEnv(errs, "DB_CONN_MAX_LIFETIME", 30*time.Minute, time.ParseDuration)
	cfg.StrictTransitions, errs = parseEnv(errs, "ORDER_STRICT_TRANSITIONS", false, strconv.ParseBool)
	cfg.LogLevel, errs = parseEnv(errs, "LOG_LEVEL", slog.LevelInfo, parseLevel)

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		errs = append(errs, fmt.Errorf("STORAGE: unsupported value %q", cfg.Storage))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DBConfig returns the database settings.
func (c Config) DBConfig() postgres.DBConfig {
	return postgres.DBConfig{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func (c Config) TransitionPolicy() order.TransitionPolicy {
	if c.StrictTransitions {
		return order.Strict
	}
	return order.Permissive
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv is getEnv for settings where an empty value is meaningful.
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func parseEnv[T any](errs []error, key string, defaultValue T, parse func(string) (T, error)) (T, []error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, errs
	}
	v, err := parse(raw)
	if err != nil {
		return defaultValue, append(errs, fmt.Errorf("%s: invalid value %q: %w", key, raw, err))
	}
	return v, errs
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
