package dialect

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ParseColumns parses a COLUMNS(...) star expression.
// The COLUMNS keyword has already been consumed; the current token is "(".
//
// Grammar:
//
//	columns   → "(" selector ")"
//	selector  → "*" modifier* | "[" string ("," string)* "]" | COLUMNS "(" ident "->" expr ")"
//	modifier  → EXCLUDE ( ident | "(" ident ("," ident)* ")" ) | REPLACE "(" expr AS ident ("," ...)* ")"
//
// The first error aborts the construct; no partial node is returned.
func ParseColumns(p spi.ParserOps) (spi.Expr, error) {
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, fmt.Errorf("COLUMNS: %w", err)
	}

	sel, err := parseColumnsSelector(p)
	if err != nil {
		return nil, fmt.Errorf("COLUMNS: %w", err)
	}

	return &core.ColumnsExpr{Selector: sel}, nil
}

// parseColumnsSelector dispatches on the leading token of the selector.
func parseColumnsSelector(p spi.ParserOps) (core.ColumnsSelector, error) {
	switch {
	case p.Match(token.STAR):
		return parseWildcardSelector(p)
	case p.Match(token.LBRACKET):
		return parseNameListSelector(p)
	case p.Check(token.COLUMNS) && p.Peek().Type == token.LPAREN:
		p.NextToken() // COLUMNS
		p.NextToken() // (
		return parsePredicateSelector(p)
	}
	return nil, core.UnexpectedToken(p.Token(), "*", "[", "COLUMNS")
}

// parseWildcardSelector collects modifiers in written order until ")".
// Any number of EXCLUDE and REPLACE modifiers is accepted in any order.
func parseWildcardSelector(p spi.ParserOps) (core.ColumnsSelector, error) {
	sel := &core.WildcardSelector{}

	for !p.Match(token.RPAREN) {
		var (
			mod core.StarModifier
			err error
		)
		switch {
		case p.Match(token.EXCLUDE):
			mod, err = ParseExcludeModifier(p)
		case p.Match(token.REPLACE):
			mod, err = ParseReplaceModifier(p)
		default:
			return nil, core.UnexpectedToken(p.Token(), "EXCLUDE", "REPLACE", ")")
		}
		if err != nil {
			return nil, err
		}
		sel.Modifiers = append(sel.Modifiers, mod)
	}

	return sel, nil
}

// parseNameListSelector parses ['a', 'b', ...] followed by the closing ")".
// The opening [ has already been consumed.
func parseNameListSelector(p spi.ParserOps) (core.ColumnsSelector, error) {
	sel := &core.NameListSelector{}

	err := parseDelimitedList(p, token.RBRACKET, "string literal", func() error {
		tok := p.Token()
		if tok.Type != token.STRING {
			return core.NewParseError(core.KindInvalidListElement, tok,
				"column name list accepts only string literals, found %s", core.DescribeToken(tok))
		}
		p.NextToken()
		if !p.Check(token.COMMA) && !p.Check(token.RBRACKET) {
			next := p.Token()
			return core.NewParseError(core.KindInvalidListElement, next,
				"column name list accepts only string literals, found %s after '%s'", core.DescribeToken(next), tok.Literal)
		}
		sel.Names = append(sel.Names, tok.Literal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	return sel, nil
}

// parsePredicateSelector parses c -> body followed by both closing ")".
// The nested COLUMNS( has already been consumed.
func parsePredicateSelector(p spi.ParserOps) (core.ColumnsSelector, error) {
	tok := p.Token()
	param, err := p.ParseIdentifier()
	if err != nil {
		return nil, core.UnexpectedToken(tok, "identifier")
	}

	if !p.Match(token.ARROW) {
		next := p.Token()
		return nil, core.NewParseError(core.KindMissingBindingMarker, next,
			"expected -> after %s, found %s", param, core.DescribeToken(next))
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}

	return &core.PredicateSelector{Param: param, Body: body}, nil
}
