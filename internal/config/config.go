package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel  string
	LogFormat string
	// LogFile receives log output, since the terminal owns stdout. "-" discards logs.
	LogFile string

	DatabaseURL string
	// ScoresBackend is one of auto, file, postgres or memory. auto picks
	// postgres when DatabaseURL is set and file otherwise.
	ScoresBackend string
	ScoresFile    string

	TuningFile string
	TickRate   int
	Seed       uint64
	Mute       bool
}

func Load() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogFile:       getEnv("LOG_FILE", "catfish.log"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		ScoresBackend: getEnv("SCORES_BACKEND", "auto"),
		ScoresFile:    getEnv("SCORES_FILE", "high_scores.json"),
		TuningFile:    getEnv("TUNING_FILE", ""),
		TickRate:      getEnvInt("TICK_RATE", 60),
		Seed:          getEnvUint("SEED", 0),
		Mute:          getEnvBool("MUTE", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
