package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const (
	EnvNotifyEndpoint = "PROZ_NOTIFY_ENDPOINT"
	EnvNotifyTimeout  = "PROZ_NOTIFY_TIMEOUT"
)

// NotifyConfig holds the third-party form-relay endpoint settings.
// An empty endpoint is valid: the notifier degrades to a logged no-op.
type NotifyConfig struct {
	Endpoint string `toml:"endpoint"`
	Timeout  string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *NotifyConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *NotifyConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *NotifyConfig) Merge(overlay *NotifyConfig) {
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *NotifyConfig) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
}

func (c *NotifyConfig) loadEnv() {
	if v := os.Getenv(EnvNotifyEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvNotifyTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *NotifyConfig) validate() error {
	if c.Endpoint != "" {
		if _, err := url.ParseRequestURI(c.Endpoint); err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
