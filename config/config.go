package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/instantly/transport"
)

// EnvPrefix prefixes every environment override, e.g. INSTANTLY_API_KEY.
const EnvPrefix = "INSTANTLY"

// DefaultRepository is where release binaries are published.
const DefaultRepository = "s0up4200/instantly"

// keys lists every setting that may come from the environment.
var keys = []string{
	"api_key",
	"base_url",
	"timeout",
	"logging.level",
	"logging.format",
	"logging.color",
	"output.format",
	"update.repository",
}

// Load loads the configuration from file, .env and environment
func Load(configPath string) (*Config, error) {
	return load(configPath, ".env")
}

func load(configPath, envFile string) (*Config, error) {
	// Existing environment variables win over .env entries
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading %s: %w", envFile, err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".instantly"))
		}

		// Check /etc
		v.AddConfigPath("/etc/instantly/")
	}

	// Read config file. Without an explicit path the environment alone may
	// configure the client.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("base_url", transport.DefaultBaseURL)
	v.SetDefault("timeout", int(transport.DefaultTimeout/time.Second))

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Output defaults
	v.SetDefault("output.format", "table")

	v.SetDefault("update.repository", DefaultRepository)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.APIKey == "" || cfg.APIKey == "your-api-key-here" {
		return fmt.Errorf("api_key must be set to a valid API key")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL: %q", cfg.BaseURL)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds: %d", cfg.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", cfg.Output.Format)
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter %q has an empty expression", name)
		}
	}

	return nil
}

// Transport returns the immutable connection settings for the API client.
func (c *Config) Transport() transport.Config {
	return transport.Config{
		BaseURL: c.BaseURL,
		APIKey:  c.APIKey,
		Timeout: time.Duration(c.Timeout) * time.Second,
	}
}
