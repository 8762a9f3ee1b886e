// Package config loads the process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-specific value of the service. It is read once at start.
type Config struct {
	ServerAddr      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	GitHub          GitHub
}

// GitHub configures the upstream API clients.
type GitHub struct {
	APIURL     string
	GraphQLURL string
	// RateLimitSleepLimit caps a single sleep of the secondary rate limit waiter.
	RateLimitSleepLimit time.Duration
	// MaxConcurrency bounds every fan-out level of a single request.
	MaxConcurrency int
}

const (
	defaultAPIURL     = "https://api.github.com/"
	defaultGraphQLURL = "https://api.github.com/graphql"
)

// Load reads an optional .env file and then the environment.
// The returned error only reports a missing or unreadable .env; the Config is always usable.
func Load() (Config, error) {
	err := godotenv.Load()

	return Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":5000"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  splitList(getEnv("FRONTEND_URL", "*")),
		GitHub: GitHub{
			APIURL:              getEnv("GITHUB_API_URL", defaultAPIURL),
			GraphQLURL:          getEnv("GITHUB_GRAPHQL_URL", defaultGraphQLURL),
			RateLimitSleepLimit: getDuration("RATE_LIMIT_SLEEP_LIMIT", time.Minute),
			MaxConcurrency:      getInt("MAX_CONCURRENCY", 8),
		},
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
