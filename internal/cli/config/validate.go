package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/lint"
)

var (
	validOutputs    = []string{"auto", "text", "markdown", "json", "yaml"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("dialect is required")
	}
	if !slices.Contains(validOutputs, c.Output) {
		return fmt.Errorf("invalid output %q (expected one of: %s)", c.Output, strings.Join(validOutputs, ", "))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q (expected one of: %s)", c.LogFormat, strings.Join(validLogFormats, ", "))
	}
	for id, sev := range c.Lint.Severity {
		if _, err := lint.ParseSeverity(sev); err != nil {
			return fmt.Errorf("lint.severity.%s: %w", id, err)
		}
	}
	return nil
}
