package parser

import "github.com/leapstack-labs/sqlcols/pkg/token"

// Aliases so callers of the parser rarely need the token package.
type (
	TokenType = token.TokenType
	Token     = token.Token
	Position  = token.Position
)
