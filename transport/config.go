package transport

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the v2 API root.
	DefaultBaseURL = "https://api.instantly.ai/api/v2"
	// DefaultTimeout applies to each call.
	DefaultTimeout = 30 * time.Second
)

const redacted = "[REDACTED]"

// Secret holds the API token. It never renders its value through fmt,
// encoding/json or encoding.TextMarshaler consumers such as zerolog.
type Secret string

// Reveal returns the raw token.
func (s Secret) Reveal() string {
	return string(s)
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Config is the immutable connection configuration. Build it once and pass
// it by value.
type Config struct {
	BaseURL string
	APIKey  Secret
	Timeout time.Duration
}

// withDefaults fills unset fields and normalizes the base URL.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Validate checks the configuration without touching the network.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL must be absolute: %q", ErrInvalidConfig, c.BaseURL)
	}
	return nil
}
