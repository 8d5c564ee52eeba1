package duckdb

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// delimited calls item for each comma-separated element up to closer and
// consumes closer. The sequence may be empty; a trailing comma is not
// allowed.
func delimited(p spi.ParserOps, what string, closer token.TokenType, item func() error) error {
	more := !p.Check(closer)
	for more {
		if err := item(); err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
		more = p.Match(token.COMMA)
	}
	if err := p.Expect(closer); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// parseListLiteral parses the rest of "[a, b, ...]".
func parseListLiteral(p spi.ParserOps) (spi.Expr, error) {
	list := &core.ListLiteral{}
	err := delimited(p, "list literal", token.RBRACKET, func() error {
		e, err := p.ParseExpression()
		if err == nil {
			list.Elements = append(list.Elements, e)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// parseStructLiteral parses the rest of "{'k': v, ...}". Keys may be
// strings or bare identifiers.
func parseStructLiteral(p spi.ParserOps) (spi.Expr, error) {
	st := &core.StructLiteral{}
	err := delimited(p, "struct literal", token.RBRACE, func() error {
		key := p.Token()
		if key.Type != token.STRING && key.Type != token.IDENT {
			return core.UnexpectedToken(key, "identifier", "string")
		}
		p.NextToken()
		if err := p.Expect(token.COLON); err != nil {
			return err
		}
		v, err := p.ParseExpression()
		if err != nil {
			return err
		}
		st.Fields = append(st.Fields, core.StructField{Key: key.Literal, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// parseSubscript parses the rest of "x[i]" or "x[lo:hi]"; either slice
// bound may be omitted.
func parseSubscript(p spi.ParserOps, left spi.Expr) (spi.Expr, error) {
	bound := func() (spi.Expr, error) {
		if p.Check(token.COLON) || p.Check(token.RBRACKET) {
			return nil, nil
		}
		return p.ParseExpression()
	}

	ix := &core.IndexExpr{Expr: left}
	first, err := bound()
	if err != nil {
		return nil, fmt.Errorf("subscript: %w", err)
	}
	ix.Index = first

	if p.Match(token.COLON) {
		hi, err := bound()
		if err != nil {
			return nil, fmt.Errorf("slice: %w", err)
		}
		ix.IsSlice, ix.Start, ix.Index = true, first, hi
	}

	if err := p.Expect(token.RBRACKET); err != nil {
		return nil, fmt.Errorf("subscript: %w", err)
	}
	return ix, nil
}

// parseLambda turns "x -> body" or "(x, y) -> body" into a LambdaExpr.
// left is what the parser already read before the arrow.
func parseLambda(p spi.ParserOps, left spi.Expr) (spi.Expr, error) {
	params, err := lambdaParams(left, nil)
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, fmt.Errorf("lambda: %w", err)
	}
	return &core.LambdaExpr{Params: params, Body: body}, nil
}

// lambdaParams flattens the parameter expression. A parenthesized list
// reaches here as a chain of COMMA binary expressions.
func lambdaParams(e spi.Expr, acc []string) ([]string, error) {
	switch x := e.(type) {
	case *core.ColumnRef:
		if x.Table != "" {
			return nil, fmt.Errorf("lambda parameter %s.%s must not be qualified", x.Table, x.Column)
		}
		return append(acc, x.Column), nil
	case *core.ParenExpr:
		return lambdaParams(x.Expr, acc)
	case *core.BinaryExpr:
		if x.Op != token.COMMA {
			return nil, fmt.Errorf("lambda parameters: unexpected %s", x.Op)
		}
		acc, err := lambdaParams(x.Left, acc)
		if err != nil {
			return nil, err
		}
		return lambdaParams(x.Right, acc)
	}
	return nil, fmt.Errorf("lambda parameters: want identifier, got %T", e)
}
