package main

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// serverConfig groups the process-level settings that do not belong to a platform package.
type serverConfig struct {
	Port            string
	GinMode         string
	AllowedOrigins  []string
	VerificationTTL time.Duration
	ProfileCacheTTL time.Duration
}

func loadServerConfig() serverConfig {
	return serverConfig{
		Port:            valueOrDefault(os.Getenv("SERVER_PORT"), "8080"),
		GinMode:         os.Getenv("GIN_MODE"),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		VerificationTTL: parseDuration("VERIFICATION_TTL", 24*time.Hour),
		ProfileCacheTTL: parseDuration("PROFILE_CACHE_TTL", 5*time.Minute),
	}
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return d
}
