// Package lint runs data-driven rules over parsed SELECT statements.
//
// Rules are stateless RuleDef values registered from init functions in rule
// packages (see pkg/lint/rules). The Analyzer runs every registered rule not
// disabled by its Config and applies severity overrides.
package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a critical issue that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// DialectInfo is the part of a dialect rules need.
// Implemented by dialect.Dialect.
type DialectInfo interface {
	NormalizeName(name string) string
}

// CheckFunc analyzes a statement and returns diagnostics.
type CheckFunc func(stmt *core.SelectStmt, d DialectInfo) []Diagnostic

// RuleDef is a data-driven rule definition.
type RuleDef struct {
	ID          string   // Unique identifier, e.g. "CL01"
	Name        string   // Human-readable name, e.g. "columns.duplicate-name"
	Group       string   // Category, e.g. "columns"
	Description string   // One-line description
	Severity    Severity // Default severity
	Check       CheckFunc

	Rationale   string // What problem the rule prevents
	BadExample  string
	GoodExample string
}

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string   `json:"rule_id" yaml:"rule_id"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}
