package jwtmw

import (
	"log/slog"
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret names the environment variable holding the HMAC signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	// EnvKeyJWTExpiration names the environment variable holding the token lifetime (time.ParseDuration syntax).
	EnvKeyJWTExpiration = "JWT_EXPIRATION"

	defaultExpiration = 24 * time.Hour
)

// Config holds the token signing settings.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig reads the JWT settings from the environment.
// An unparsable or non-positive expiration falls back to 24h.
func LoadConfig() Config {
	cfg := Config{Secret: os.Getenv(EnvKeyJWTSecret), Expiration: defaultExpiration}
	if raw := os.Getenv(EnvKeyJWTExpiration); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			slog.Warn("invalid JWT expiration, using default", "value", raw, "default", defaultExpiration)
		} else {
			cfg.Expiration = d
		}
	}
	return cfg
}
