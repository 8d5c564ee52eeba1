// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import "github.com/leapstack-labs/sqlcols/pkg/core"

// Config is the DuckDB dialect configuration.
// The Builder reads the capability flags and auto-wires standard features.
var Config = &core.DialectConfig{
	Name:        "duckdb",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	Capabilities: core.Capabilities{
		Columns:        true,
		StarModifiers:  true,
		Qualify:        true,
		Ilike:          true,
		CastOperator:   true,
		SemiAntiJoins:  true,
		GroupByAll:     true,
		OrderByAll:     true,
		RegexMatch:     true,
		IntegerDivide:  true,
		NestedLiterals: true,
	},
}

// WithCapabilities returns a copy of Config whose capabilities are replaced by caps.
func WithCapabilities(caps core.Capabilities) *core.DialectConfig {
	cfg := *Config
	cfg.Capabilities = caps
	return &cfg
}
