package parser

import "github.com/leapstack-labs/sqlcols/pkg/core"

// ParseError is the error type returned by the parser. Use errors.As or
// core.IsKind to inspect it through wrapping.
type ParseError = core.ParseError

// Common error messages
const (
	ErrUnsupportedClause = "%s is not supported in %s dialect"
	ErrNaturalJoinOn     = "NATURAL JOIN cannot have ON clause"
	ErrNaturalJoinUsing  = "NATURAL JOIN cannot have USING clause"
)
