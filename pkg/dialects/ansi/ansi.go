// Package ansi registers the "ansi" dialect: standard SELECT grammar with
// none of the optional capabilities. COLUMNS, EXCLUDE and REPLACE are plain
// identifiers here.
package ansi

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the dialect other dialects are compared against.
var ANSI = dialect.NewDialect("ansi").
	Clauses(dialect.StandardSelectClauses...).
	Operators(dialect.ANSIOperators).
	JoinTypes(dialect.ANSIJoinTypes).
	Identifiers(`"`, `"`, `""`, core.NormLowercase).
	PlaceholderStyle(core.PlaceholderQuestion).
	Build()
