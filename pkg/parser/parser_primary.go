package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// primary := dialect prefix construct | literal | column_ref | func_call
//          | "(" ... ")" | CASE ... | CAST ... | EXISTS ... | "*"

// keywordLiterals maps literal keywords to their normalized value.
var keywordLiterals = map[token.TokenType]core.Literal{
	token.TRUE:  {Type: core.LiteralBool, Value: "true"},
	token.FALSE: {Type: core.LiteralBool, Value: "false"},
	token.NULL:  {Type: core.LiteralNull, Value: "null"},
}

func (p *Parser) parsePrimary() core.Expr {
	if expr, ok := p.parsePrefixExtension(); ok {
		return expr
	}

	tok := p.token
	if lit, ok := keywordLiterals[tok.Type]; ok {
		p.nextToken()
		return &lit
	}

	switch tok.Type {
	case token.NUMBER, token.STRING:
		p.nextToken()
		typ := core.LiteralNumber
		if tok.Type == token.STRING {
			typ = core.LiteralString
		}
		return &core.Literal{Type: typ, Value: tok.Literal}
	case token.STAR:
		p.nextToken()
		return &core.StarExpr{}
	case token.CASE:
		return p.parseCaseExpr()
	case token.CAST:
		return p.parseCastExpr()
	case token.EXISTS:
		return p.parseExistsExpr(false)
	case token.LPAREN:
		return p.parseParenExpr()
	}

	if p.isIdentLike(tok) {
		return p.parseIdentifierExpr()
	}
	p.fail(core.UnexpectedToken(tok, "expression"))
	return nil
}

// parsePrefixExtension runs the dialect's prefix handler for the current
// token, if any. Call-style prefixes (COLUMNS) only apply when the next
// token is "("; otherwise the word falls through to identifier parsing.
func (p *Parser) parsePrefixExtension() (core.Expr, bool) {
	handler, isCall := p.dialect.PrefixHandler(p.token.Type)
	if handler == nil || (isCall && !p.checkPeek(token.LPAREN)) {
		return nil, false
	}

	mark := len(p.errors)
	p.nextToken() // consume the prefix token
	expr, err := handler(p)
	if err != nil {
		p.handlerFailed(mark, err)
		return nil, true
	}
	return expr, true
}

// parseIdentifierExpr parses a column reference or, when "(" follows, a
// function call.
func (p *Parser) parseIdentifierExpr() core.Expr {
	name := p.token.Literal
	p.nextToken()

	switch {
	case p.check(token.LPAREN):
		return p.parseFuncCall(name)
	case p.check(token.DOT):
		return p.parseQualifiedColumnRef(name)
	}
	return &core.ColumnRef{Column: name}
}

// parseQualifiedColumnRef parses t.col, s.t.col or t.*. Only the table
// qualifier nearest the column is kept.
func (p *Parser) parseQualifiedColumnRef(first string) core.Expr {
	parts := []string{first}
	for p.match(token.DOT) {
		if p.match(token.STAR) {
			return &core.StarExpr{Table: parts[len(parts)-1]}
		}
		if !p.isIdentLike(p.token) {
			p.fail(core.UnexpectedToken(p.token, "identifier", "*"))
			return nil
		}
		parts = append(parts, p.token.Literal)
		p.nextToken()
	}
	n := len(parts)
	return &core.ColumnRef{Table: parts[n-2], Column: parts[n-1]}
}

// parseFuncCall parses name(...) with its optional FILTER and OVER
// suffixes. The name is upper-cased.
func (p *Parser) parseFuncCall(name string) core.Expr {
	fn := &core.FuncCall{Name: strings.ToUpper(name)}
	p.expect(token.LPAREN)

	if p.match(token.STAR) {
		fn.Star = true
	} else if !p.check(token.RPAREN) {
		fn.Distinct = p.match(token.DISTINCT)
		fn.Args = p.parseExpressionList()
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	if p.match(token.FILTER) {
		p.expect(token.LPAREN)
		p.expect(token.WHERE)
		fn.Filter = p.parseExpression()
		p.expect(token.RPAREN)
	}
	if p.match(token.OVER) {
		fn.Window = p.parseWindowSpec()
	}
	return fn
}
