package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// case   := CASE [expr] (WHEN expr THEN expr)+ [ELSE expr] END
// cast   := CAST "(" expr AS type ")"
// exists := [NOT] EXISTS "(" statement ")"
// paren  := "(" statement ")" | "(" expr ("," expr)* ")"
// type   := word [PRECISION | VARYING]* ["(" param ("," param)* ")"] ("[" "]")*

// multiWordTypeTails may follow the first word of a type name.
var multiWordTypeTails = map[string]bool{"PRECISION": true, "VARYING": true}

// inParens consumes "(", runs body, then consumes ")". It returns false
// if either parenthesis is missing.
func (p *Parser) inParens(body func()) bool {
	if !p.expect(token.LPAREN) {
		return false
	}
	body()
	return p.expect(token.RPAREN)
}

func (p *Parser) startsStatement() bool {
	return p.check(token.SELECT) || p.check(token.WITH)
}

func (p *Parser) parseCaseExpr() core.Expr {
	p.expect(token.CASE)
	c := &core.CaseExpr{}
	if !p.check(token.WHEN) {
		c.Operand = p.parseExpression()
	}

	for p.match(token.WHEN) {
		var w core.WhenClause
		w.Condition = p.parseExpression()
		p.expect(token.THEN)
		w.Result = p.parseExpression()
		c.Whens = append(c.Whens, w)
	}
	if len(c.Whens) == 0 {
		p.fail(core.UnexpectedToken(p.token, "WHEN"))
		return nil
	}

	if p.match(token.ELSE) {
		c.Else = p.parseExpression()
	}
	if !p.expect(token.END) {
		return nil
	}
	return c
}

func (p *Parser) parseCastExpr() core.Expr {
	p.expect(token.CAST)
	cast := &core.CastExpr{}
	ok := p.inParens(func() {
		cast.Expr = p.parseExpression()
		p.expect(token.AS)
		cast.TypeName = p.parseTypeName()
	})
	if !ok {
		return nil
	}
	return cast
}

// parseTypeName reads a type such as VARCHAR(255), DOUBLE PRECISION or
// INTEGER[] and returns it upper-cased with normalized spacing.
func (p *Parser) parseTypeName() string {
	if !p.isIdentLike(p.token) {
		p.fail(core.UnexpectedToken(p.token, "type name"))
		return ""
	}

	words := []string{strings.ToUpper(p.token.Literal)}
	p.nextToken()
	for p.check(token.IDENT) && !p.isClauseWord(p.token) && multiWordTypeTails[strings.ToUpper(p.token.Literal)] {
		words = append(words, strings.ToUpper(p.token.Literal))
		p.nextToken()
	}
	name := strings.Join(words, " ")

	if p.match(token.LPAREN) {
		var params []string
		for more := true; more; more = p.match(token.COMMA) {
			if !p.check(token.NUMBER) && !p.check(token.IDENT) {
				p.fail(core.UnexpectedToken(p.token, "type parameter"))
				return ""
			}
			params = append(params, p.token.Literal)
			p.nextToken()
		}
		if !p.expect(token.RPAREN) {
			return ""
		}
		name += "(" + strings.Join(params, ", ") + ")"
	}

	for p.check(token.LBRACKET) && p.checkPeek(token.RBRACKET) {
		p.nextToken()
		p.nextToken()
		name += "[]"
	}
	return name
}

// parseParenExpr parses a subquery or a parenthesized expression. A
// comma-separated group is kept as a COMMA chain for lambda parameters.
func (p *Parser) parseParenExpr() core.Expr {
	var expr core.Expr
	ok := p.inParens(func() {
		if p.startsStatement() {
			expr = &core.SubqueryExpr{Select: p.parseStatement()}
			return
		}
		inner := p.parseExpression()
		for inner != nil && p.match(token.COMMA) {
			right := p.parseExpression()
			if right == nil {
				inner = nil
				break
			}
			inner = &core.BinaryExpr{Left: inner, Op: token.COMMA, Right: right}
		}
		if inner != nil {
			expr = &core.ParenExpr{Expr: inner}
		}
	})
	if !ok {
		return nil
	}
	return expr
}

// parseExistsExpr parses EXISTS (subquery); the current token is EXISTS.
func (p *Parser) parseExistsExpr(not bool) core.Expr {
	p.nextToken()
	exists := &core.ExistsExpr{Not: not}
	if !p.inParens(func() { exists.Select = p.parseStatement() }) {
		return nil
	}
	return exists
}
