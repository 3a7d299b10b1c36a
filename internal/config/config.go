package config

import (
	"errors"
	"os"
	"strings"
)

// Common errors
var (
	ErrMissingSecret = errors.New("AUTH_SECRET (or SESSION_SECRET) environment variable is required")
)

// SessionCookieName is the cookie carrying the signed web session token.
const SessionCookieName = "wellnest_session"

// AdminCookieName is the cookie carrying the opaque admin session id.
const AdminCookieName = "admin_session"

// Config holds process-wide auth configuration. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	// Secret signs and verifies every session and bearer token.
	Secret string
}

// LoadFromEnv loads auth configuration from environment variables.
//
// Environment variables:
//   - AUTH_SECRET: token signing secret (preferred)
//   - SESSION_SECRET: fallback signing secret
func LoadFromEnv() Config {
	secret := strings.TrimSpace(os.Getenv("AUTH_SECRET"))
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	}

	return Config{Secret: secret}
}

// Validate checks that the configuration is usable. The service refuses to
// issue or verify tokens rather than run without a secret.
func (c Config) Validate() error {
	if c.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}
