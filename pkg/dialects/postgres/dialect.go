package postgres

import (
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Postgres)
}

// postgresReservedWords contains common PostgreSQL reserved words.
// This is a manually maintained list of frequently problematic identifiers.
var postgresReservedWords = []string{
	"user", "table", "index", "any", "array", "asymmetric", "authorization",
	"binary", "both", "check", "collate", "column", "constraint", "create",
	"current_catalog", "current_date", "current_role", "current_schema",
	"current_time", "current_timestamp", "current_user", "default",
	"deferrable", "do", "fetch", "for", "foreign", "freeze", "grant",
	"initially", "into", "isnull", "leading", "localtime", "localtimestamp",
	"natural", "notnull", "only", "overlaps", "placing", "primary",
	"references", "returning", "session_user", "similar", "some", "symmetric",
	"to", "trailing", "unique", "using", "variadic", "verbose",
}

// Postgres is the PostgreSQL dialect: ANSI plus the features enabled in Config.
var Postgres = dialect.New(Config).
	Extends(ansi.ANSI).
	WithReservedWords(postgresReservedWords...).
	Build()
