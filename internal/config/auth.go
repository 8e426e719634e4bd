package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthAdminSecret   = "PROZ_AUTH_ADMIN_SECRET"
	EnvAuthSigningKey    = "PROZ_AUTH_SIGNING_KEY"
	EnvAuthSessionTTL    = "PROZ_AUTH_SESSION_TTL"
	EnvAuthClientDomain  = "PROZ_AUTH_CLIENT_DOMAIN"
	EnvAuthCookieSecure  = "PROZ_AUTH_COOKIE_SECURE"
)

// AuthConfig holds authentication parameters: the shared admin secret,
// the session token signing key, and the fixed domain suffix used to
// derive client login emails from access codes.
type AuthConfig struct {
	AdminSecret  string `toml:"admin_secret"`
	SigningKey   string `toml:"signing_key"`
	SessionTTL   string `toml:"session_ttl"`
	ClientDomain string `toml:"client_domain"`
	CookieSecure bool   `toml:"cookie_secure"`
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *AuthConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.AdminSecret != "" {
		c.AdminSecret = overlay.AdminSecret
	}
	if overlay.SigningKey != "" {
		c.SigningKey = overlay.SigningKey
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.ClientDomain != "" {
		c.ClientDomain = overlay.ClientDomain
	}
	c.CookieSecure = overlay.CookieSecure
}

func (c *AuthConfig) loadDefaults() {
	if c.SessionTTL == "" {
		c.SessionTTL = "24h"
	}
	if c.ClientDomain == "" {
		c.ClientDomain = "prozspace.com"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthAdminSecret); v != "" {
		c.AdminSecret = v
	}
	if v := os.Getenv(EnvAuthSigningKey); v != "" {
		c.SigningKey = v
	}
	if v := os.Getenv(EnvAuthSessionTTL); v != "" {
		c.SessionTTL = v
	}
	if v := os.Getenv(EnvAuthClientDomain); v != "" {
		c.ClientDomain = v
	}
	if v := os.Getenv(EnvAuthCookieSecure); v != "" {
		c.CookieSecure = v == "true" || v == "1"
	}
}

func (c *AuthConfig) validate() error {
	if c.AdminSecret == "" {
		return fmt.Errorf("admin_secret required")
	}
	if c.SigningKey == "" {
		return fmt.Errorf("signing_key required")
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	if c.ClientDomain == "" {
		return fmt.Errorf("client_domain required")
	}
	return nil
}
