package config

import (
	"github.com/s0up4200/instantly/transport"
)

// Config represents the complete configuration structure
type Config struct {
	APIKey  transport.Secret `mapstructure:"api_key"`
	BaseURL string           `mapstructure:"base_url"`
	Timeout int              `mapstructure:"timeout"`
	Filters FilterConfig     `mapstructure:"filters"`
	Logging LoggingConfig    `mapstructure:"logging"`
	Output  OutputConfig     `mapstructure:"output"`
	Update  UpdateConfig     `mapstructure:"update"`
}

// FilterConfig maps saved filter names to expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how commands print records
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// UpdateConfig points the self-updater at a release repository
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
