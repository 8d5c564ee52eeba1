package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// select_body := select_core [set_op [ALL | DISTINCT] [BY NAME] select_body]
// select_core := SELECT [DISTINCT | ALL] item ("," item)* [FROM from] clause*
// item        := "*" modifier* | name "." "*" modifier* | expr [[AS] alias]
// order_item  := expr [ASC | DESC] [NULLS (FIRST | LAST)]
//
// Trailing clauses follow the dialect's clause sequence. A clause word
// that only another dialect knows, like QUALIFY under Postgres, is
// reported as unsupported.

// SoftKeywordName is the NAME of UNION BY NAME. It is matched by spelling
// and remains usable as a column name.
const SoftKeywordName = "NAME"

var setOps = map[token.TokenType]core.SetOpType{
	token.UNION:     core.SetOpUnion,
	token.INTERSECT: core.SetOpIntersect,
	token.EXCEPT:    core.SetOpExcept,
}

// commaList parses item ("," item)* and stops at the first error.
func commaList[T any](p *Parser, item func() T) []T {
	var out []T
	for {
		out = append(out, item())
		if len(p.errors) > 0 || !p.match(token.COMMA) {
			return out
		}
	}
}

func (p *Parser) parseStatement() *core.SelectStmt {
	stmt := &core.SelectStmt{}
	if p.match(token.WITH) {
		stmt.With = &core.WithClause{Recursive: p.match(token.RECURSIVE)}
		stmt.With.CTEs = commaList(p, p.parseCTE)
	}
	stmt.Body = p.parseSelectBody()
	return stmt
}

// parseCTE parses name AS (statement).
func (p *Parser) parseCTE() *core.CTE {
	cte := &core.CTE{}
	name, err := p.ParseIdentifier()
	if err != nil {
		p.fail(err)
		return cte
	}
	cte.Name = name
	p.expect(token.AS)
	p.inParens(func() { cte.Select = p.parseStatement() })
	return cte
}

func (p *Parser) parseSelectBody() *core.SelectBody {
	body := &core.SelectBody{Left: p.parseSelectCore()}

	op, ok := setOps[p.token.Type]
	if !ok {
		return body
	}
	p.nextToken()
	body.Op = op
	body.All = p.match(token.ALL)
	if !body.All {
		p.match(token.DISTINCT)
	}

	// UNION [ALL] BY NAME; NAME stays an ordinary identifier elsewhere.
	if p.check(token.BY) && p.peek.Type == token.IDENT && strings.EqualFold(p.peek.Literal, SoftKeywordName) {
		p.nextToken()
		p.nextToken()
		body.ByName = true
	}

	body.Right = p.parseSelectBody()
	return body
}

func (p *Parser) parseSelectCore() *core.SelectCore {
	sc := &core.SelectCore{}
	if !p.expect(token.SELECT) {
		return sc
	}
	sc.Distinct = p.match(token.DISTINCT)
	if !sc.Distinct {
		p.match(token.ALL)
	}

	sc.Columns = commaList(p, p.parseSelectItem)
	if p.match(token.FROM) {
		sc.From = p.parseFromClause()
	}
	p.parseClauses(sc)
	return sc
}

// parseClauses parses the dialect clauses that follow FROM. Each clause
// may appear once, in sequence order.
func (p *Parser) parseClauses(sc *core.SelectCore) {
	remaining := p.dialect.ClauseSequence()
	for len(p.errors) == 0 {
		i := p.nextClause(remaining)
		if i < 0 {
			break
		}
		def, _ := p.dialect.ClauseDef(remaining[i])
		remaining = remaining[i+1:]

		mark := len(p.errors)
		p.nextToken()
		result, err := def.Handler(p)
		if err != nil {
			p.handlerFailed(mark, err)
			return
		}

		if def.Slot == core.SlotWindow {
			sc.Windows = p.parseWindowDefs()
		} else {
			fillSlot(sc, def.Slot, result)
		}
	}

	if len(p.errors) == 0 && p.isClauseWord(p.token) {
		p.addError(ErrUnsupportedClause, strings.ToUpper(p.token.Literal), p.dialect.Name)
	}
}

// nextClause returns the position in seq of the clause the current token
// starts, or -1.
func (p *Parser) nextClause(seq []token.TokenType) int {
	for i, t := range seq {
		if p.check(t) {
			return i
		}
	}
	return -1
}

// fillSlot stores a clause handler's result in sc.
func fillSlot(sc *core.SelectCore, slot spi.ClauseSlot, result spi.Node) {
	if result == nil {
		return
	}
	expr, _ := result.(core.Expr)

	switch slot {
	case core.SlotWhere:
		sc.Where = expr
	case core.SlotHaving:
		sc.Having = expr
	case core.SlotQualify:
		sc.Qualify = expr
	case core.SlotLimit:
		sc.Limit = expr
	case core.SlotOffset:
		sc.Offset = expr
	case core.SlotGroupBy:
		if exprs, ok := result.([]core.Expr); ok {
			sc.GroupBy = exprs
		} else {
			_, sc.GroupByAll = result.(core.GroupByAllMarker)
		}
	case core.SlotOrderBy:
		if items, ok := result.([]core.OrderByItem); ok {
			sc.OrderBy = items
		} else if all, ok := result.(core.OrderByAllMarker); ok {
			sc.OrderByAll, sc.OrderByAllDesc = true, all.Desc
		}
	default:
		sc.Extensions = append(sc.Extensions, result)
	}
}

func (p *Parser) parseSelectItem() core.SelectItem {
	var item core.SelectItem
	switch {
	case p.match(token.STAR):
		item.Star = true
	case p.isIdentLike(p.token) && p.checkPeek(token.DOT) && p.checkPeek2(token.STAR):
		item.TableStar = p.token.Literal
		for range 3 {
			p.nextToken()
		}
	default:
		if item.Expr = p.parseExpression(); item.Expr != nil {
			item.Alias = p.parseAlias()
		}
		return item
	}
	item.Modifiers = p.parseStarModifiers()
	return item
}

// parseStarModifiers parses whatever EXCLUDE, REPLACE or RENAME modifiers
// the dialect allows after * or t.*, in any order.
func (p *Parser) parseStarModifiers() []core.StarModifier {
	var mods []core.StarModifier
	for handler := p.dialect.StarModifierHandler(p.token.Type); handler != nil; handler = p.dialect.StarModifierHandler(p.token.Type) {
		mark := len(p.errors)
		p.nextToken()
		mod, err := handler(p)
		if err != nil {
			p.handlerFailed(mark, err)
			return nil
		}
		mods = append(mods, mod)
	}
	return mods
}

func (p *Parser) parseOrderByList() []core.OrderByItem {
	return commaList(p, p.parseOrderByItem)
}

func (p *Parser) parseOrderByItem() core.OrderByItem {
	item := core.OrderByItem{Expr: p.parseExpression()}
	if !p.match(token.ASC) {
		item.Desc = p.match(token.DESC)
	}
	if !p.match(token.NULLS) {
		return item
	}

	var first bool
	switch {
	case p.match(token.FIRST):
		first = true
	case p.match(token.LAST):
	default:
		p.fail(core.UnexpectedToken(p.token, "FIRST", "LAST"))
		return item
	}
	item.NullsFirst = &first
	return item
}

// parseExpressionList parses expr ("," expr)*.
func (p *Parser) parseExpressionList() []core.Expr {
	exprs := commaList(p, p.parseExpression)
	if len(p.errors) > 0 {
		return nil
	}
	return exprs
}
