package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
)

type Config struct {
	PublicKey     string   // Inline JWK, single-key JWKS or PEM public key
	PublicKeyFile string   // Path to the same, used when PublicKey is empty
	Issuer        string   // Required: expected iss claim
	Audience      string   // Required: expected aud claim
	DeniedScopes  []string // Optional: scopes that force a Deny (default: none)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

var (
	ErrNoPublicKey = errors.New("config: AUTHORIZER_PUBLIC_KEY or AUTHORIZER_PUBLIC_KEY_FILE is required")
	ErrNoIssuer    = errors.New("config: AUTHORIZER_ISSUER is required")
	ErrNoAudience  = errors.New("config: AUTHORIZER_AUDIENCE is required")
)

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first and never overrides variables that are already set.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		PublicKey:     os.Getenv("AUTHORIZER_PUBLIC_KEY"),
		PublicKeyFile: os.Getenv("AUTHORIZER_PUBLIC_KEY_FILE"),
		Issuer:        os.Getenv("AUTHORIZER_ISSUER"),
		Audience:      os.Getenv("AUTHORIZER_AUDIENCE"),
		DeniedScopes:  getEnvList("AUTHORIZER_DENIED_SCOPES"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports every missing required value at once.
func (c Config) Validate() error {
	var errs []error
	if c.PublicKey == "" && c.PublicKeyFile == "" {
		errs = append(errs, ErrNoPublicKey)
	}
	if c.Issuer == "" {
		errs = append(errs, ErrNoIssuer)
	}
	if c.Audience == "" {
		errs = append(errs, ErrNoAudience)
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("config: invalid PORT %d", c.Port))
	}
	return errors.Join(errs...)
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "10s", "1m")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

// getEnvList splits a space or comma delimited value into fields. It returns
// nil when the variable holds no fields.
func getEnvList(key string) []string {
	fields := strings.FieldsFunc(os.Getenv(key), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
