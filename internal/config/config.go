package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Session
	SessionSecret string // Used for encrypting cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Redis backs sessions and rate limiting when set, e.g. "redis://localhost:6379/0"
	RedisURL string

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// Lookup widget
	LookupDelay   time.Duration // simulated lookup latency
	WidgetIdleTTL time.Duration // idle widgets are evicted after this long
	SweepInterval time.Duration // how often idle widgets are evicted

	// Landing page content file (YAML, optional)
	LandingFile string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Future Self"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		TLSEnabled:    getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:     getEnv("TLS_CA_FILE", ""),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		RateLimitMax:  getEnvInt("RATE_LIMIT_MAX", 100),

		LookupDelay:   getEnvDuration("LOOKUP_DELAY", 800*time.Millisecond),
		WidgetIdleTTL: getEnvDuration("WIDGET_IDLE_TTL", 30*time.Minute),
		SweepInterval: getEnvDuration("WIDGET_SWEEP_INTERVAL", time.Minute),

		LandingFile: getEnv("LANDING_FILE", "landing.yaml"),

		SiteTitle:   getEnv("SITE_TITLE", "Future Self"),
		SiteTagline: getEnv("SITE_TAGLINE", "AI-Powered Health Intelligence"),
		SiteFooter:  getEnv("SITE_FOOTER", "Future Self - demo build"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", value)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// LongPollSlack is added to LookupDelay when a request waits for a result.
const LongPollSlack = 5 * time.Second

// AwaitTimeout bounds how long a request may wait for a pending lookup.
func (c *Config) AwaitTimeout() time.Duration {
	return c.LookupDelay + LongPollSlack
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
