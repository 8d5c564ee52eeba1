package parser

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// The exported methods below implement spi.ParserOps for dialect
// handlers. Unlike the internal parse functions they return errors, and
// each reports only what went wrong during its own call.

var _ spi.ParserOps = (*Parser)(nil)

// capture runs an internal sub-parser and returns the first error it
// recorded.
func capture[T any](p *Parser, parse func() T) (T, error) {
	mark := len(p.errors)
	v := parse()
	if len(p.errors) > mark {
		var zero T
		return zero, p.errors[mark]
	}
	return v, nil
}

// Token returns the current token.
func (p *Parser) Token() token.Token { return p.token }

// Peek returns the token after the current one.
func (p *Parser) Peek() token.Token { return p.peek }

// Position returns where the current token starts.
func (p *Parser) Position() token.Position { return p.token.Pos }

// NextToken consumes the current token.
func (p *Parser) NextToken() { p.nextToken() }

// Check reports whether the current token is t.
func (p *Parser) Check(t token.TokenType) bool { return p.check(t) }

// Match consumes the current token when it is t.
func (p *Parser) Match(t token.TokenType) bool { return p.match(t) }

// Expect consumes t or returns an UnexpectedToken error.
func (p *Parser) Expect(t token.TokenType) error {
	if p.match(t) {
		return nil
	}
	return core.UnexpectedToken(p.token, t.String())
}

// ParseExpression parses one expression.
func (p *Parser) ParseExpression() (spi.Expr, error) {
	return capture(p, p.parseExpression)
}

// ParseExpressionList parses expressions separated by commas.
func (p *Parser) ParseExpressionList() ([]spi.Expr, error) {
	return capture(p, p.parseExpressionList)
}

// ParseOrderByList parses the items of an ORDER BY.
func (p *Parser) ParseOrderByList() ([]spi.OrderByItem, error) {
	return capture(p, p.parseOrderByList)
}

// ParseIdentifier consumes an identifier; soft keywords count.
func (p *Parser) ParseIdentifier() (string, error) {
	tok := p.token
	if !p.isIdentLike(tok) {
		return "", core.UnexpectedToken(tok, "identifier")
	}
	p.nextToken()
	return tok.Literal, nil
}
