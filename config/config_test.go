package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/instantly/transport"
)

func validConfig() *Config {
	return &Config{
		APIKey:  "key",
		BaseURL: transport.DefaultBaseURL,
		Timeout: 30,
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: "table"},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.APIKey = "" },
			wantErr: "api_key must be set",
		},
		{
			name:    "placeholder API key",
			mutate:  func(c *Config) { c.APIKey = "your-api-key-here" },
			wantErr: "api_key must be set",
		},
		{
			name:    "relative base URL",
			mutate:  func(c *Config) { c.BaseURL = "api/v2" },
			wantErr: "base_url must be an absolute URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: "timeout must be a positive number",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: "invalid output format: csv",
		},
		{
			name:    "empty saved filter",
			mutate:  func(c *Config) { c.Filters = FilterConfig{"stale": " "} },
			wantErr: `filter "stale" has an empty expression`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
api_key: file-key
timeout: 10
logging:
  level: debug
filters:
  hot: "lt_interest_status == 1"
`)

	cfg, err := load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, transport.Secret("file-key"), cfg.APIKey)
	assert.Equal(t, transport.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "s0up4200/instantly", cfg.Update.Repository)
	assert.Equal(t, "lt_interest_status == 1", cfg.Filters["hot"])
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "api_key: file-key\ntimeout: 10\n")
	t.Setenv("INSTANTLY_API_KEY", "env-key")
	t.Setenv("INSTANTLY_TIMEOUT", "45")
	t.Setenv("INSTANTLY_LOGGING_LEVEL", "warn")
	t.Setenv("INSTANTLY_OUTPUT_FORMAT", "json")

	cfg, err := load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, transport.Secret("env-key"), cfg.APIKey)
	assert.Equal(t, 45, cfg.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadDotEnvWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	envFile := writeFile(t, ".env", "INSTANTLY_API_KEY=dotenv-key\nINSTANTLY_BASE_URL=https://staging.example.com/api/v2/\n")
	t.Cleanup(func() {
		os.Unsetenv("INSTANTLY_API_KEY")
		os.Unsetenv("INSTANTLY_BASE_URL")
	})

	cfg, err := load("", envFile)
	require.NoError(t, err)

	assert.Equal(t, transport.Secret("dotenv-key"), cfg.APIKey)
	assert.Equal(t, "https://staging.example.com/api/v2/", cfg.BaseURL)
}

func TestLoadErrors(t *testing.T) {
	missingEnv := filepath.Join(t.TempDir(), "missing.env")

	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), missingEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")

	path := writeFile(t, "config.yaml", "timeout: 10\n")
	_, err = load(path, missingEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestTransportConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Timeout = 12

	tc := cfg.Transport()
	assert.Equal(t, transport.DefaultBaseURL, tc.BaseURL)
	assert.Equal(t, 12*time.Second, tc.Timeout)
	assert.Equal(t, "key", tc.APIKey.Reveal())
	assert.NoError(t, tc.Validate())
	assert.Contains(t, fmt.Sprintf("%+v", tc), "APIKey:[REDACTED]")
}
