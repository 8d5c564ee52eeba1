package dialect

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ParseExcludeModifier handles EXCLUDE col and EXCLUDE (col1, col2, ...).
// The EXCLUDE keyword has already been consumed.
func ParseExcludeModifier(p spi.ParserOps) (core.StarModifier, error) {
	if !p.Match(token.LPAREN) {
		tok := p.Token()
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, fmt.Errorf("EXCLUDE: %w", core.UnexpectedToken(tok, "(", "identifier"))
		}
		return &core.ExcludeModifier{Columns: []string{name}}, nil
	}

	var cols []string
	err := parseDelimitedList(p, token.RPAREN, "identifier", func() error {
		name, err := p.ParseIdentifier()
		if err != nil {
			return err
		}
		cols = append(cols, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("EXCLUDE: %w", err)
	}

	return &core.ExcludeModifier{Columns: cols}, nil
}

// ParseReplaceModifier handles REPLACE (expr AS col, ...).
// The REPLACE keyword has already been consumed.
func ParseReplaceModifier(p spi.ParserOps) (core.StarModifier, error) {
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, fmt.Errorf("REPLACE: %w", err)
	}

	var items []core.ReplaceItem
	err := parseDelimitedList(p, token.RPAREN, "replacement expression", func() error {
		expr, err := p.ParseExpression()
		if err != nil {
			return err
		}
		name, err := parseBinding(p, token.AS, "AS after replacement expression")
		if err != nil {
			return err
		}
		items = append(items, core.ReplaceItem{Expr: expr, Alias: name})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("REPLACE: %w", err)
	}

	return &core.ReplaceModifier{Items: items}, nil
}

// ParseRenameModifier handles RENAME (old AS new, ...).
// The RENAME keyword has already been consumed.
func ParseRenameModifier(p spi.ParserOps) (core.StarModifier, error) {
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, fmt.Errorf("RENAME: %w", err)
	}

	var items []core.RenameItem
	err := parseDelimitedList(p, token.RPAREN, "identifier", func() error {
		oldName, err := p.ParseIdentifier()
		if err != nil {
			return err
		}
		newName, err := parseBinding(p, token.AS, "AS after column name")
		if err != nil {
			return err
		}
		items = append(items, core.RenameItem{OldName: oldName, NewName: newName})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("RENAME: %w", err)
	}

	return &core.RenameModifier{Items: items}, nil
}

// parseDelimitedList parses item ("," item)* followed by closing.
// The opening delimiter has already been consumed. An empty list and a
// comma directly before closing are errors.
func parseDelimitedList(p spi.ParserOps, closing token.TokenType, what string, item func() error) error {
	if p.Check(closing) {
		tok := p.Token()
		return core.NewParseError(core.KindEmptyList, tok, "expected %s, found %s", what, core.DescribeToken(tok))
	}

	for {
		if err := item(); err != nil {
			return err
		}
		if !p.Match(token.COMMA) {
			break
		}
		if p.Check(closing) {
			return core.NewParseError(core.KindTrailingSeparator, p.Token(), "trailing comma before %s", closing)
		}
	}

	return p.Expect(closing)
}

// parseBinding consumes the binding marker and the identifier it binds.
func parseBinding(p spi.ParserOps, marker token.TokenType, what string) (string, error) {
	if !p.Match(marker) {
		tok := p.Token()
		return "", core.NewParseError(core.KindMissingBindingMarker, tok, "expected %s, found %s", what, core.DescribeToken(tok))
	}
	return p.ParseIdentifier()
}
