package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Event store backends
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Console front ends
const (
	UITUI   = "tui"
	UIPlain = "plain"
)

type Config struct {
	Environment    string
	LogLevel       slog.Level
	LogFile        string // Empty means stderr
	DataDir        string
	EventStore     string
	RedisURL       string
	Seed           int64
	HasSeed        bool
	UI             string
	CopyTranscript bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogFile:     getEnv("LOG_FILE", ""),
		DataDir:     getEnv("DATA_DIR", "./data"),
		EventStore:  strings.ToLower(getEnv("EVENT_STORE", StoreFile)),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		UI:          strings.ToLower(getEnv("UI", UIPlain)),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if s := os.Getenv("SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", s, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if s := os.Getenv("COPY_TRANSCRIPT"); s != "" {
		copyTranscript, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid COPY_TRANSCRIPT %q: %w", s, err)
		}
		cfg.CopyTranscript = copyTranscript
	}

	switch cfg.EventStore {
	case StoreFile, StoreRedis:
	default:
		return nil, fmt.Errorf("unsupported EVENT_STORE %q (want %s or %s)", cfg.EventStore, StoreFile, StoreRedis)
	}

	switch cfg.UI {
	case UITUI, UIPlain:
	default:
		return nil, fmt.Errorf("unsupported UI %q (want %s or %s)", cfg.UI, UITUI, UIPlain)
	}

	return cfg, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q (want debug, info, warn or error)", level)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
