package lint

import (
	"fmt"
	"strings"
)

// Config selects the enabled rules and their effective severity.
// Rule IDs are case-insensitive. The zero value and nil enable every rule.
type Config struct {
	disabled map[string]struct{}
	severity map[string]Severity
}

// NewConfig returns a configuration that enables every rule at its default severity.
func NewConfig() *Config {
	return &Config{
		disabled: map[string]struct{}{},
		severity: map[string]Severity{},
	}
}

// ConfigFrom builds a Config from rule IDs to disable and severity names keyed by rule ID.
func ConfigFrom(disabled []string, severity map[string]string) (*Config, error) {
	c := NewConfig().Disable(disabled...)
	for id, name := range severity {
		sev, err := ParseSeverity(name)
		if err != nil {
			return nil, fmt.Errorf("severity for %s: %w", id, err)
		}
		c.SetSeverity(id, sev)
	}
	return c, nil
}

func ruleKey(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Disable turns off the given rules.
func (c *Config) Disable(ids ...string) *Config {
	if c.disabled == nil {
		c.disabled = map[string]struct{}{}
	}
	for _, id := range ids {
		if key := ruleKey(id); key != "" {
			c.disabled[key] = struct{}{}
		}
	}
	return c
}

// SetSeverity overrides the severity reported for a rule.
func (c *Config) SetSeverity(id string, sev Severity) *Config {
	if c.severity == nil {
		c.severity = map[string]Severity{}
	}
	c.severity[ruleKey(id)] = sev
	return c
}

// Enabled reports whether rule id runs.
func (c *Config) Enabled(id string) bool {
	if c == nil {
		return true
	}
	_, off := c.disabled[ruleKey(id)]
	return !off
}

// SeverityOf returns the severity reported for rule.
func (c *Config) SeverityOf(rule RuleDef) Severity {
	if c != nil {
		if sev, ok := c.severity[ruleKey(rule.ID)]; ok {
			return sev
		}
	}
	return rule.Severity
}
