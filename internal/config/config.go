package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSessionTTL matches the 7-day cookie lifetime the web client was
// built around.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Config holds server configuration loaded from the environment.
type Config struct {
	// Listen port for the HTTP server.
	Port string

	// How long a session (and its cookie) stays valid.
	SessionTTL time.Duration

	// Whether the session cookie is marked Secure. Leave false for local
	// dev over plain HTTP.
	CookieSecure bool

	// Origins allowed by the CORS middleware.
	CORSOrigins []string
}

// LoadFromEnv loads server configuration from environment variables.
//
// Environment variables:
//   - PORT: listen port (default "5050")
//   - SESSION_TTL: session lifetime as a Go duration string (default 168h)
//   - COOKIE_SECURE: "true" to mark the session cookie Secure (default false)
//   - CORS_ORIGINS: comma-separated allowed origins (default: local Vite dev servers)
//
// DATABASE_URL is read separately by internal/db when connecting.
func LoadFromEnv() Config {
	cfg := Config{
		Port:        "5050",
		SessionTTL:  DefaultSessionTTL,
		CORSOrigins: []string{"http://localhost:5173", "http://localhost:5174"},
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}

	if secure, err := strconv.ParseBool(os.Getenv("COOKIE_SECURE")); err == nil {
		cfg.CookieSecure = secure
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg
}
