// Package config provides configuration management for the sqlcols CLI.
package config

import "log/slog"

// Default values.
const (
	DefaultDialect   = "duckdb"
	DefaultOutput    = "auto"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultFileName  = "sqlcols.yaml"
	EnvPrefix        = "SQLCOLS_"
)

// Config holds the CLI configuration.
type Config struct {
	Dialect   string     `koanf:"dialect"`
	Output    string     `koanf:"output"`
	LogLevel  slog.Level `koanf:"log_level"`
	LogFormat string     `koanf:"log_format"`

	// Columns overrides the dialect's COLUMNS capability when set.
	Columns *bool `koanf:"columns"`

	Lint LintConfig `koanf:"lint"`
}

// LintConfig configures the lint command.
type LintConfig struct {
	Disabled []string          `koanf:"disabled"` // rule IDs to skip
	Severity map[string]string `koanf:"severity"` // rule ID -> severity name
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Dialect:   DefaultDialect,
		Output:    DefaultOutput,
		LogLevel:  slog.LevelWarn,
		LogFormat: DefaultLogFormat,
	}
}
