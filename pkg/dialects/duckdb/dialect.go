package duckdb

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB-specific join type tokens (not shared with other dialects).
var (
	TokenAsof       = token.Register("ASOF")
	TokenPositional = token.Register("POSITIONAL")
)

// DuckDB-specific join type values.
const (
	JoinAsof       = "ASOF"       // Temporal join matching closest value
	JoinPositional = "POSITIONAL" // Joins by row position (no condition needed)
)

var duckDBJoinTypes = []dialect.JoinTypeDef{
	{
		Token:      TokenAsof,
		Type:       JoinAsof,
		RequiresOn: true,
	},
	{
		Token: TokenPositional,
		Type:  JoinPositional,
	},
}

// duckDBReservedWords are words DuckDB rejects as bare identifiers beyond
// the ANSI keyword set.
var duckDBReservedWords = []string{
	"analyse", "analyze", "array", "asymmetric", "both", "check", "collate",
	"column", "constraint", "create", "default", "deferrable", "do", "fetch",
	"for", "foreign", "grant", "initially", "into", "leading", "only",
	"placing", "primary", "references", "returning", "some", "symmetric",
	"table", "to", "trailing", "unique", "variadic",
}

// DuckDB is the DuckDB dialect with every capability enabled.
var DuckDB = New(Config)

// New builds a DuckDB dialect from cfg. Capabilities switched off in cfg are
// not wired, so New(WithCapabilities(...)) yields a restricted variant.
func New(cfg *core.DialectConfig) *dialect.Dialect {
	b := dialect.New(cfg).
		AddKeyword("ASOF", TokenAsof).
		AddKeyword("POSITIONAL", TokenPositional).
		Clauses(dialect.StandardSelectClauses...).
		Operators(dialect.ANSIOperators).
		JoinTypes(dialect.ANSIJoinTypes, duckDBJoinTypes).
		WithReservedWords(duckDBReservedWords...)

	if cfg.Capabilities.NestedLiterals {
		b.AddPrefix(token.LBRACKET, parseListLiteral).
			AddPrefix(token.LBRACE, parseStructLiteral).
			AddInfixWithHandler(token.LBRACKET, spi.PrecedencePostfix, parseSubscript).
			AddInfixWithHandler(token.ARROW, spi.PrecedenceOr, parseLambda)
	}

	return b.Build()
}
