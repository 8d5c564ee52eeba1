package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// Expressions are parsed by precedence climbing. Binding powers come from
// the dialect's operator table, so an operator the dialect never registered
// ("::" in ANSI, "~" without regex support) ends the expression instead of
// extending it.

func (p *Parser) parseExpression() core.Expr {
	return p.parseOperand(spi.PrecedenceOr)
}

// parseOperand parses an expression whose infix operators all bind at
// least as tightly as minPrec.
func (p *Parser) parseOperand(minPrec int) core.Expr {
	left := p.parsePrefix()
	for left != nil {
		prec := p.bindingPower()
		if prec < minPrec {
			break
		}
		left = p.parseInfix(left, prec)
	}
	return left
}

func (p *Parser) parsePrefix() core.Expr {
	op := p.token.Type
	switch op {
	case token.NOT:
		p.nextToken()
		if p.check(token.EXISTS) {
			return p.parseExistsExpr(true)
		}
		return p.parseUnary(op, spi.PrecedenceNot)
	case token.MINUS, token.PLUS:
		p.nextToken()
		return p.parseUnary(op, spi.PrecedenceUnary)
	}
	return p.parsePrimary()
}

func (p *Parser) parseUnary(op token.TokenType, prec int) core.Expr {
	operand := p.parseOperand(prec)
	if operand == nil {
		return nil
	}
	return &core.UnaryExpr{Op: op, Expr: operand}
}

// bindingPower is the precedence of the current token in infix position,
// or PrecedenceNone when it cannot continue an expression.
func (p *Parser) bindingPower() int {
	if !p.check(token.NOT) {
		return p.dialect.Precedence(p.token.Type)
	}
	// Infix NOT only negates a following predicate keyword.
	switch next := p.peek.Type; {
	case next == token.IN, next == token.BETWEEN, next == token.LIKE:
		return spi.PrecedenceComparison
	case next == token.ILIKE && p.dialect.Precedence(token.ILIKE) > 0:
		return spi.PrecedenceComparison
	}
	return spi.PrecedenceNone
}

func (p *Parser) parseInfix(left core.Expr, prec int) core.Expr {
	switch p.token.Type {
	case token.NOT:
		p.nextToken()
		return p.parsePredicate(left, true)
	case token.IN, token.BETWEEN, token.LIKE, token.ILIKE:
		return p.parsePredicate(left, false)
	case token.IS:
		return p.parseIs(left)
	case token.DCOLON:
		p.nextToken()
		if typ := p.parseTypeName(); typ != "" {
			return &core.CastExpr{Expr: left, TypeName: typ, Postfix: true}
		}
		return nil
	}

	if handler := p.dialect.InfixHandler(p.token.Type); handler != nil {
		mark := len(p.errors)
		p.nextToken()
		expr, err := handler(p, left)
		if err != nil {
			p.handlerFailed(mark, err)
			return nil
		}
		return expr
	}

	// Plain binary operator, left-associative.
	op := p.token.Type
	p.nextToken()
	right := p.parseOperand(prec + 1)
	if right == nil {
		return nil
	}
	return &core.BinaryExpr{Left: left, Op: op, Right: right}
}

// parsePredicate parses IN, BETWEEN, LIKE or ILIKE, with any NOT already
// consumed. Operands sit above AND so BETWEEN's separator is not swallowed.
func (p *Parser) parsePredicate(left core.Expr, not bool) core.Expr {
	kw := p.token.Type
	p.nextToken()

	switch kw {
	case token.IN:
		return p.parseIn(left, not)
	case token.BETWEEN:
		low := p.parseOperand(spi.PrecedenceAddition)
		if low == nil || !p.expect(token.AND) {
			return nil
		}
		high := p.parseOperand(spi.PrecedenceAddition)
		if high == nil {
			return nil
		}
		return &core.BetweenExpr{Expr: left, Not: not, Low: low, High: high}
	default:
		like := &core.LikeExpr{Expr: left, Not: not, Op: kw}
		if like.Pattern = p.parseOperand(spi.PrecedenceAddition); like.Pattern == nil {
			return nil
		}
		if p.atEscape() {
			p.nextToken()
			if like.Escape = p.parseOperand(spi.PrecedenceAddition); like.Escape == nil {
				return nil
			}
		}
		return like
	}
}

// atEscape reports whether the current token starts an ESCAPE clause.
// ESCAPE is not reserved; it counts only when a string follows.
func (p *Parser) atEscape() bool {
	return p.check(token.IDENT) && strings.EqualFold(p.token.Literal, "ESCAPE") && p.checkPeek(token.STRING)
}

// parseIn parses the parenthesized value list or subquery after IN.
func (p *Parser) parseIn(left core.Expr, not bool) core.Expr {
	if !p.expect(token.LPAREN) {
		return nil
	}
	in := &core.InExpr{Expr: left, Not: not}
	if p.startsStatement() {
		in.Query = p.parseStatement()
	} else {
		in.Values = p.parseExpressionList()
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return in
}

// parseIs parses IS [NOT] NULL, TRUE or FALSE.
func (p *Parser) parseIs(left core.Expr) core.Expr {
	p.nextToken()
	not := p.match(token.NOT)

	var expr core.Expr
	switch p.token.Type {
	case token.NULL:
		expr = &core.IsNullExpr{Expr: left, Not: not}
	case token.TRUE, token.FALSE:
		expr = &core.IsBoolExpr{Expr: left, Not: not, Value: p.check(token.TRUE)}
	default:
		p.fail(core.UnexpectedToken(p.token, "NULL", "TRUE", "FALSE"))
		return nil
	}
	p.nextToken()
	return expr
}
