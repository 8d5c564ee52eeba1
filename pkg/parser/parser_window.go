package parser

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// over   := name | "(" [PARTITION BY exprs] [ORDER BY items] [frame] ")"
// window := name AS "(" ... ")" ("," name AS "(" ... ")")*
// frame  := (ROWS | RANGE | GROUPS) (BETWEEN bound AND bound | bound)
// bound  := UNBOUNDED (PRECEDING | FOLLOWING) | CURRENT ROW
//         | expr (PRECEDING | FOLLOWING)

var frameUnits = map[token.TokenType]core.FrameType{
	token.ROWS:   core.FrameRows,
	token.RANGE:  core.FrameRange,
	token.GROUPS: core.FrameGroups,
}

// parseWindowDefs parses the named windows after the WINDOW keyword.
func (p *Parser) parseWindowDefs() []core.WindowDef {
	defs := commaList(p, func() core.WindowDef {
		name, err := p.ParseIdentifier()
		if err != nil {
			p.fail(err)
			return core.WindowDef{}
		}
		p.expect(token.AS)
		return core.WindowDef{Name: name, Spec: p.parseWindowBody()}
	})
	if len(p.errors) > 0 {
		return nil
	}
	return defs
}

// parseWindowSpec parses what follows OVER: a window name or a body.
func (p *Parser) parseWindowSpec() *core.WindowSpec {
	if !p.isIdentLike(p.token) {
		return p.parseWindowBody()
	}
	spec := &core.WindowSpec{Name: p.token.Literal}
	p.nextToken()
	return spec
}

func (p *Parser) parseWindowBody() *core.WindowSpec {
	spec := &core.WindowSpec{}
	ok := p.inParens(func() {
		if p.match(token.PARTITION) && p.expect(token.BY) {
			spec.PartitionBy = p.parseExpressionList()
		}
		if p.match(token.ORDER) && p.expect(token.BY) {
			spec.OrderBy = p.parseOrderByList()
		}
		if unit, ok := frameUnits[p.token.Type]; ok {
			p.nextToken()
			spec.Frame = p.parseFrame(unit)
		}
	})
	if !ok {
		return nil
	}
	return spec
}

func (p *Parser) parseFrame(unit core.FrameType) *core.FrameSpec {
	frame := &core.FrameSpec{Type: unit}
	if !p.match(token.BETWEEN) {
		frame.Start = p.parseFrameBound()
		return frame
	}
	frame.Start = p.parseFrameBound()
	p.expect(token.AND)
	frame.End = p.parseFrameBound()
	return frame
}

func (p *Parser) parseFrameBound() *core.FrameBound {
	bound := &core.FrameBound{}

	// direction consumes PRECEDING or FOLLOWING and picks the matching type.
	direction := func(preceding, following core.FrameBoundType) {
		switch {
		case p.match(token.PRECEDING):
			bound.Type = preceding
		case p.match(token.FOLLOWING):
			bound.Type = following
		default:
			p.fail(core.UnexpectedToken(p.token, "PRECEDING", "FOLLOWING"))
		}
	}

	switch {
	case p.match(token.UNBOUNDED):
		direction(core.FrameUnboundedPreceding, core.FrameUnboundedFollowing)
	case p.match(token.CURRENT):
		p.expect(token.ROW)
		bound.Type = core.FrameCurrentRow
	default:
		bound.Offset = p.parseExpression()
		direction(core.FrameExprPreceding, core.FrameExprFollowing)
	}
	return bound
}
