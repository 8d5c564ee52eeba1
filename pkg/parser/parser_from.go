package parser

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// from     := table_ref join*
// table_ref:= [catalog "."] [schema "."] name [[AS] alias]
//           | [LATERAL] "(" statement ")" [[AS] alias]
// join     := "," table_ref
//           | [NATURAL] join_type JOIN table_ref [ON expr | USING "(" names ")"]
//
// Join types come from the dialect, so ASOF or SEMI only parse where
// registered.

func (p *Parser) parseFromClause() *core.FromClause {
	from := &core.FromClause{Source: p.parseTableRef()}
	for len(p.errors) == 0 {
		j := p.parseJoin()
		if j == nil {
			break
		}
		from.Joins = append(from.Joins, j)
	}
	return from
}

func (p *Parser) parseTableRef() core.TableRef {
	switch {
	case p.match(token.LATERAL):
		sel, alias := p.parseSubqueryWithAlias()
		return &core.LateralTable{Select: sel, Alias: alias}
	case p.check(token.LPAREN):
		sel, alias := p.parseSubqueryWithAlias()
		return &core.DerivedTable{Select: sel, Alias: alias}
	}
	return p.parseTableName()
}

// parseTableName parses up to three dotted parts; missing leading parts
// stay empty.
func (p *Parser) parseTableName() *core.TableName {
	t := &core.TableName{}
	first, err := p.ParseIdentifier()
	if err != nil {
		p.fail(core.UnexpectedToken(p.token, "table name"))
		return t
	}

	parts := []string{first}
	for len(parts) < 3 && p.match(token.DOT) {
		next, err := p.ParseIdentifier()
		if err != nil {
			p.fail(err)
			return t
		}
		parts = append(parts, next)
	}

	// Right-align into catalog, schema, name.
	slots := []*string{&t.Catalog, &t.Schema, &t.Name}
	for i, part := range parts {
		*slots[3-len(parts)+i] = part
	}
	t.Alias = p.parseAlias()
	return t
}

func (p *Parser) parseSubqueryWithAlias() (*core.SelectStmt, string) {
	p.expect(token.LPAREN)
	sel := p.parseStatement()
	p.expect(token.RPAREN)
	return sel, p.parseAlias()
}

// parseJoin returns nil when the current token does not start a join.
func (p *Parser) parseJoin() *core.Join {
	if p.match(token.COMMA) {
		return &core.Join{Type: core.JoinComma, Right: p.parseTableRef()}
	}

	j := &core.Join{Natural: p.match(token.NATURAL)}
	def, ok := p.dialect.JoinTypeDef(p.token.Type)
	switch {
	case ok:
		p.nextToken()
		if def.OptionalToken != 0 {
			p.match(def.OptionalToken)
		}
		// Two-word forms such as LEFT SEMI take the second word's definition.
		if second, ok := p.dialect.JoinTypeDef(p.token.Type); ok {
			def = second
			p.nextToken()
		}
	case p.check(token.JOIN):
		def = core.JoinTypeDef{Type: core.JoinInner, RequiresOn: true, AllowsUsing: true}
	case j.Natural:
		p.fail(core.UnexpectedToken(p.token, "JOIN"))
		return nil
	default:
		return nil
	}
	j.Type = core.JoinType(def.Type)

	if !p.expect(token.JOIN) {
		return nil
	}
	j.Right = p.parseTableRef()
	p.parseJoinCondition(j, def)
	return j
}

func (p *Parser) parseJoinCondition(j *core.Join, def core.JoinTypeDef) {
	switch {
	case j.Natural && p.check(token.ON):
		p.addError(ErrNaturalJoinOn)
	case j.Natural && p.check(token.USING):
		p.addError(ErrNaturalJoinUsing)
	case j.Natural:
	case p.match(token.ON):
		j.Condition = p.parseExpression()
	case def.AllowsUsing && p.match(token.USING):
		j.Using = p.parseUsingColumns()
	}
}

func (p *Parser) parseUsingColumns() []string {
	p.expect(token.LPAREN)
	var cols []string
	for more := true; more; more = p.match(token.COMMA) {
		name, err := p.ParseIdentifier()
		if err != nil {
			p.fail(err)
			return nil
		}
		cols = append(cols, name)
	}
	p.expect(token.RPAREN)
	return cols
}
