// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/sqlcols/pkg/core"

// Config is the PostgreSQL dialect configuration.
// PostgreSQL has no COLUMNS star expressions, star modifiers, QUALIFY,
// GROUP BY ALL, ORDER BY ALL or SEMI/ANTI joins.
var Config = &core.DialectConfig{
	Name:        "postgres",
	Placeholder: core.PlaceholderDollar,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormLowercase,
	},
	Capabilities: core.Capabilities{
		Ilike:        true,
		CastOperator: true,
		RegexMatch:   true,
	},
}
