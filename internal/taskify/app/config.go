package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string        // Issuer claim for access tokens (default: taskify)
	NumKeys        int           // Number of ephemeral signing keys (default: 1, max: 10)
	AccessTokenTTL time.Duration // Lifetime of access tokens (default: 15m)

	InviteAutoAccept bool          // Store invites as ACCEPTED instead of PENDING (default: false)
	ResetTokenTTL    time.Duration // Lifetime of password reset tokens (default: 1h)
	PublicURL        string        // Base URL for links written to the log (default: http://localhost:8080)

	DatabaseFile         string        // Path to SQLite database file (default: ./taskify.db)
	PepperFile           string        // Path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first when present; variables already set win over it.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:         getEnvOrDefault("TASKIFY_ISSUER", "taskify"),
		NumKeys:        getEnvIntOrDefault("TASKIFY_NUM_KEYS", 1),
		AccessTokenTTL: getEnvDurationOrDefault("TASKIFY_ACCESS_TOKEN_TTL", 15*time.Minute),

		InviteAutoAccept: getEnvBoolOrDefault("TASKIFY_INVITE_AUTO_ACCEPT", false),
		ResetTokenTTL:    getEnvDurationOrDefault("TASKIFY_RESET_TOKEN_TTL", time.Hour),
		PublicURL:        getEnvOrDefault("TASKIFY_PUBLIC_URL", "http://localhost:8080"),

		DatabaseFile:         getEnvOrDefault("TASKIFY_DATABASE_FILE", "taskify.db"),
		PepperFile:           getEnvOrDefault("TASKIFY_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
