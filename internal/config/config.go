package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by every command.
type Config struct {
	DataDir   string
	LogLevel  string
	LogFormat string
	// AtomicWrites makes every save go through a temp file and rename so a
	// crash mid-write cannot truncate a data file.
	AtomicWrites bool
}

// Load reads settings from the environment, after merging a .env file in the
// working directory when there is one.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DataDir:      getEnv("STUDENTBOOK_DATA_DIR", "./data"),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		AtomicWrites: getEnvBool("STUDENTBOOK_ATOMIC_WRITES", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
