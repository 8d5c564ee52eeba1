package dialect

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// Shared grammar pieces that dialects compose. Clause handlers run after
// the parser consumed the clause's leading keyword.

func parseExprClause(p spi.ParserOps) (spi.Node, error) {
	return p.ParseExpression()
}

// parseNamedWindows only claims the WINDOW slot; the parser reads the
// definitions itself.
func parseNamedWindows(_ spi.ParserOps) (spi.Node, error) {
	return nil, nil
}

func parseGroupBy(allowAll bool) spi.ClauseHandler {
	return func(p spi.ParserOps) (spi.Node, error) {
		if err := p.Expect(token.BY); err != nil {
			return nil, err
		}
		if allowAll && p.Match(token.ALL) {
			return core.GroupByAllMarker{}, nil
		}
		return p.ParseExpressionList()
	}
}

func parseOrderBy(allowAll bool) spi.ClauseHandler {
	return func(p spi.ParserOps) (spi.Node, error) {
		if err := p.Expect(token.BY); err != nil {
			return nil, err
		}
		if allowAll && p.Match(token.ALL) {
			desc := p.Match(token.DESC)
			if !desc {
				p.Match(token.ASC)
			}
			return core.OrderByAllMarker{Desc: desc}, nil
		}
		return p.ParseOrderByList()
	}
}

func groupByClause(allowAll bool) ClauseDef {
	return ClauseDef{Token: token.GROUP, Handler: parseGroupBy(allowAll), Slot: core.SlotGroupBy, Keywords: []string{"GROUP", "BY"}}
}

func orderByClause(allowAll bool) ClauseDef {
	return ClauseDef{Token: token.ORDER, Handler: parseOrderBy(allowAll), Slot: core.SlotOrderBy, Keywords: []string{"ORDER", "BY"}}
}

var qualifyClause = ClauseDef{Token: token.QUALIFY, Handler: parseExprClause, Slot: core.SlotQualify}

// StandardSelectClauses is the ANSI clause sequence after FROM.
var StandardSelectClauses = []ClauseDef{
	{Token: token.WHERE, Handler: parseExprClause, Slot: core.SlotWhere},
	groupByClause(false),
	{Token: token.HAVING, Handler: parseExprClause, Slot: core.SlotHaving},
	{Token: token.WINDOW, Handler: parseNamedWindows, Slot: core.SlotWindow},
	orderByClause(false),
	{Token: token.LIMIT, Handler: parseExprClause, Slot: core.SlotLimit, Inline: true},
	{Token: token.OFFSET, Handler: parseExprClause, Slot: core.SlotOffset, Inline: true},
}

func binaryOps(precedence int, toks ...token.TokenType) []OperatorDef {
	defs := make([]OperatorDef, len(toks))
	for i, t := range toks {
		defs[i] = OperatorDef{Token: t, Precedence: precedence}
	}
	return defs
}

func concatOps(sets ...[]OperatorDef) []OperatorDef {
	var out []OperatorDef
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// ANSIOperators are the binary operators every dialect starts from.
var ANSIOperators = concatOps(
	binaryOps(core.PrecedenceOr, token.OR),
	binaryOps(core.PrecedenceAnd, token.AND),
	binaryOps(core.PrecedenceComparison,
		token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.LIKE, token.IN, token.BETWEEN, token.IS),
	binaryOps(core.PrecedenceAddition, token.PLUS, token.MINUS, token.DPIPE),
	binaryOps(core.PrecedenceMultiply, token.STAR, token.SLASH, token.PERCENT),
)

// outerJoin describes LEFT/RIGHT/FULL [OUTER] JOIN.
func outerJoin(t token.TokenType, typ string) JoinTypeDef {
	return JoinTypeDef{Token: t, Type: typ, OptionalToken: token.OUTER, RequiresOn: true, AllowsUsing: true}
}

func conditionalJoin(t token.TokenType, typ string) JoinTypeDef {
	return JoinTypeDef{Token: t, Type: typ, RequiresOn: true, AllowsUsing: true}
}

// ANSIJoinTypes are the join keywords of standard SQL. Plain JOIN and the
// comma join are handled by the parser directly.
var ANSIJoinTypes = []JoinTypeDef{
	conditionalJoin(token.INNER, core.JoinInner),
	outerJoin(token.LEFT, core.JoinLeft),
	outerJoin(token.RIGHT, core.JoinRight),
	outerJoin(token.FULL, core.JoinFull),
	{Token: token.CROSS, Type: core.JoinCross},
}

// SemiAntiJoinTypes are wired by the SemiAntiJoins capability.
var SemiAntiJoinTypes = []JoinTypeDef{
	conditionalJoin(token.SEMI, core.JoinSemi),
	conditionalJoin(token.ANTI, core.JoinAnti),
}
