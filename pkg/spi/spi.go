// Package spi provides Service Provider Interface types for dialect
// handlers to interact with the parser without circular dependencies.
package spi

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ParserOps exposes parser operations to dialect handlers.
// This interface allows dialect-specific code to drive the parser
// without creating circular dependencies.
type ParserOps interface {
	// Token access
	Token() token.Token
	Peek() token.Token

	// Consumption
	Match(t token.TokenType) bool
	Expect(t token.TokenType) error
	NextToken()
	Check(t token.TokenType) bool

	// Sub-parsers. Each reports only the errors raised during its own call.
	ParseExpression() (Expr, error)
	ParseExpressionList() ([]Expr, error)
	ParseOrderByList() ([]OrderByItem, error)
	ParseIdentifier() (string, error)

	Position() token.Position
}

// ClauseHandler parses a dialect-specific clause.
// Called AFTER the clause keyword has been consumed.
type ClauseHandler func(p ParserOps) (Node, error)

// InfixHandler parses a dialect-specific infix operator.
// Called AFTER the operator has been consumed.
// left is the already-parsed left operand.
type InfixHandler func(p ParserOps, left Expr) (Expr, error)

// PrefixHandler parses a dialect-specific prefix construct.
// Called AFTER the introducing token has been consumed.
type PrefixHandler func(p ParserOps) (Expr, error)

// StarModifierHandler parses a star modifier (EXCLUDE, REPLACE, RENAME).
// Called AFTER the modifier keyword has been consumed.
type StarModifierHandler func(p ParserOps) (StarModifier, error)

// Aliases keep handler signatures short.
type (
	Node         = core.Node
	Expr         = core.Expr
	OrderByItem  = core.OrderByItem
	StarModifier = core.StarModifier
	ClauseSlot   = core.ClauseSlot
)

// Precedence constants for operator precedence parsing.
const (
	PrecedenceNone       = core.PrecedenceNone
	PrecedenceOr         = core.PrecedenceOr
	PrecedenceAnd        = core.PrecedenceAnd
	PrecedenceNot        = core.PrecedenceNot
	PrecedenceComparison = core.PrecedenceComparison
	PrecedenceAddition   = core.PrecedenceAddition
	PrecedenceMultiply   = core.PrecedenceMultiply
	PrecedenceUnary      = core.PrecedenceUnary
	PrecedencePostfix    = core.PrecedencePostfix
)
