// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlcols/pkg/core"

// Config is the Snowflake SQL dialect configuration.
// Snowflake supports SELECT * EXCLUDE/REPLACE/RENAME but has no COLUMNS
// star expression, GROUP BY ALL, ORDER BY ALL or SEMI/ANTI joins.
var Config = &core.DialectConfig{
	Name:        "snowflake",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // Snowflake normalizes to uppercase
	},
	Capabilities: core.Capabilities{
		StarModifiers: true,
		Qualify:       true,
		Ilike:         true,
		CastOperator:  true,
	},
}
