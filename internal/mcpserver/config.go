package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64

	// Tool defaults.
	MaxAnnotations int
	GenerateBodies bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APIELEMENTS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("APIELEMENTS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("APIELEMENTS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("APIELEMENTS_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("APIELEMENTS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("APIELEMENTS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("APIELEMENTS_MAX_INLINE_SIZE", 10*1024*1024)),
		MaxAnnotations:     envInt("APIELEMENTS_MAX_ANNOTATIONS", 100),
		GenerateBodies:     envBool("APIELEMENTS_GENERATE_BODIES", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
