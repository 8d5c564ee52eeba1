package snowflake

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake-specific tokens (not auto-wired by capability flags).
var (
	// TokenRlike is regex match (RLIKE)
	TokenRlike = token.Register("RLIKE")
	// TokenRegexp is regex match (REGEXP alias)
	TokenRegexp = token.Register("REGEXP")
)

var snowflakeOperators = []dialect.OperatorDef{
	{Token: TokenRlike, Precedence: core.PrecedenceComparison},
	{Token: TokenRegexp, Precedence: core.PrecedenceComparison},
}

var snowflakeReservedWords = []string{
	"account", "alter", "check", "column", "connect", "connection",
	"constraint", "create", "current_date", "current_time",
	"current_timestamp", "current_user", "database", "delete", "drop",
	"exists", "for", "gscluster", "increment", "insert", "intersect",
	"into", "issue", "localtime", "localtimestamp", "minus", "of",
	"organization", "regexp", "revoke", "rlike", "sample", "schema", "set",
	"some", "start", "table", "tablesample", "to", "trigger", "try_cast",
	"unique", "update", "using", "values", "view", "whenever",
}

// Snowflake is the Snowflake SQL dialect.
var Snowflake = dialect.New(Config).
	AddKeyword("RLIKE", TokenRlike).
	AddKeyword("REGEXP", TokenRegexp).
	Clauses(dialect.StandardSelectClauses...).
	Operators(dialect.ANSIOperators, snowflakeOperators).
	JoinTypes(dialect.ANSIJoinTypes).
	WithReservedWords(snowflakeReservedWords...).
	Build()
