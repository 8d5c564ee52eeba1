package format

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

func (p *Printer) formatFuncCall(fn *core.FuncCall) {
	p.write(fn.Name + "(")
	if fn.Distinct {
		p.kw(token.DISTINCT)
		p.space()
	}
	if fn.Star {
		p.write("*")
	} else {
		inline(p, fn.Args, p.formatExpr)
	}
	p.write(")")

	if fn.Filter != nil {
		p.space()
		p.kw(token.FILTER)
		p.write(" (")
		p.kw(token.WHERE)
		p.space()
		p.formatExpr(fn.Filter)
		p.write(")")
	}

	if w := fn.Window; w != nil {
		p.spacedKw(token.OVER)
		if namesWindowOnly(w) {
			p.ident(w.Name)
		} else {
			p.formatWindowBody(w)
		}
	}
}

// namesWindowOnly reports whether w is just a reference to a WINDOW clause entry.
func namesWindowOnly(w *core.WindowSpec) bool {
	return w.Name != "" && len(w.PartitionBy) == 0 && len(w.OrderBy) == 0 && w.Frame == nil
}

// formatWindowBody prints "(" and each present part on its own indented line, then ")".
func (p *Printer) formatWindowBody(w *core.WindowSpec) {
	p.write("(")
	part := func(body func()) {
		p.writeln()
		p.nested(body)
	}

	if len(w.PartitionBy) > 0 {
		part(func() {
			p.kw(token.PARTITION, token.BY)
			p.space()
			inline(p, w.PartitionBy, p.formatExpr)
		})
	}
	if len(w.OrderBy) > 0 {
		part(func() {
			p.kw(token.ORDER, token.BY)
			p.space()
			inline(p, w.OrderBy, p.formatOrderByItem)
		})
	}
	if w.Frame != nil {
		part(func() { p.formatFrame(w.Frame) })
	}
	p.write(")")
}

func (p *Printer) formatFrame(f *core.FrameSpec) {
	p.keyword(string(f.Type))
	p.space()
	if f.End == nil {
		p.formatFrameBound(f.Start)
		return
	}
	p.kw(token.BETWEEN)
	p.space()
	p.formatFrameBound(f.Start)
	p.spacedKw(token.AND)
	p.formatFrameBound(f.End)
}

var frameBoundKeywords = map[core.FrameBoundType][]token.TokenType{
	core.FrameUnboundedPreceding: {token.UNBOUNDED, token.PRECEDING},
	core.FrameUnboundedFollowing: {token.UNBOUNDED, token.FOLLOWING},
	core.FrameCurrentRow:         {token.CURRENT, token.ROW},
	core.FrameExprPreceding:      {token.PRECEDING},
	core.FrameExprFollowing:      {token.FOLLOWING},
}

func (p *Printer) formatFrameBound(b *core.FrameBound) {
	if b == nil {
		return
	}
	if b.Type == core.FrameExprPreceding || b.Type == core.FrameExprFollowing {
		p.formatExpr(b.Offset)
		p.space()
	}
	p.kw(frameBoundKeywords[b.Type]...)
}
