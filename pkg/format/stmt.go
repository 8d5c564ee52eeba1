package format

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

func (p *Printer) formatSelectStmt(stmt *core.SelectStmt) {
	if stmt == nil {
		return
	}
	if stmt.With != nil {
		p.formatWith(stmt.With)
	}
	p.formatSelectBody(stmt.Body)
}

func (p *Printer) formatWith(with *core.WithClause) {
	p.kw(token.WITH)
	if with.Recursive {
		p.space()
		p.kw(token.RECURSIVE)
	}
	p.writeln()

	p.nested(func() {
		stacked(p, with.CTEs, func(cte *core.CTE) {
			p.ident(cte.Name)
			p.spacedKw(token.AS)
			p.formatSubquery(cte.Select)
		})
		p.writeln()
	})
}

func (p *Printer) formatSelectBody(body *core.SelectBody) {
	for ; body != nil; body = body.Right {
		p.formatSelectCore(body.Left)
		if body.Op == core.SetOpNone {
			return
		}

		p.keyword(string(body.Op))
		if body.All {
			p.space()
			p.kw(token.ALL)
		}
		if body.ByName {
			p.space()
			p.kw(token.BY)
			p.space()
			p.keyword("NAME")
		}
		p.writeln()
	}
}

func (p *Printer) formatSelectCore(sc *core.SelectCore) {
	if sc == nil {
		return
	}

	p.kw(token.SELECT)
	if sc.Distinct {
		p.space()
		p.kw(token.DISTINCT)
	}
	p.writeln()
	p.nested(func() {
		stacked(p, sc.Columns, p.formatSelectItem)
		p.writeln()
	})

	if sc.From != nil {
		p.kw(token.FROM)
		p.space()
		p.formatFrom(sc.From)
		p.writeln()
	}

	for _, t := range p.dialect.ClauseSequence() {
		if def, ok := p.dialect.ClauseDef(t); ok {
			p.formatClause(def, sc)
		}
	}
}

func (p *Printer) formatClause(def dialect.ClauseDef, sc *core.SelectCore) {
	switch {
	case def.Slot == core.SlotGroupBy && sc.GroupByAll:
		p.kw(token.GROUP, token.BY, token.ALL)
		p.writeln()
		return
	case def.Slot == core.SlotOrderBy && sc.OrderByAll:
		p.kw(token.ORDER, token.BY, token.ALL)
		if sc.OrderByAllDesc {
			p.space()
			p.kw(token.DESC)
		}
		p.writeln()
		return
	}

	body := p.slotPrinter(sc, def.Slot)
	if body == nil {
		return
	}

	if len(def.Keywords) == 0 {
		p.kw(def.Token)
	} else {
		for i, kw := range def.Keywords {
			if i > 0 {
				p.space()
			}
			p.keyword(kw)
		}
	}

	if def.Inline {
		p.space()
		body()
	} else {
		p.writeln()
		p.nested(body)
	}
	p.writeln()
}

// slotPrinter returns a function printing the value stored in slot, or nil
// when the slot is empty.
func (p *Printer) slotPrinter(sc *core.SelectCore, slot core.ClauseSlot) func() {
	expr := func(e core.Expr) func() {
		if e == nil {
			return nil
		}
		return func() { p.formatExpr(e) }
	}
	exprs := func(es []core.Expr) func() {
		if len(es) == 0 {
			return nil
		}
		return func() { stacked(p, es, p.formatExpr) }
	}

	switch slot {
	case core.SlotWhere:
		return expr(sc.Where)
	case core.SlotHaving:
		return expr(sc.Having)
	case core.SlotQualify:
		return expr(sc.Qualify)
	case core.SlotLimit:
		return expr(sc.Limit)
	case core.SlotOffset:
		return expr(sc.Offset)
	case core.SlotGroupBy:
		return exprs(sc.GroupBy)
	case core.SlotOrderBy:
		if len(sc.OrderBy) == 0 {
			return nil
		}
		return func() { stacked(p, sc.OrderBy, p.formatOrderByItem) }
	case core.SlotWindow:
		if len(sc.Windows) == 0 {
			return nil
		}
		return func() {
			stacked(p, sc.Windows, func(w core.WindowDef) {
				p.ident(w.Name)
				p.spacedKw(token.AS)
				p.formatWindowBody(w.Spec)
			})
		}
	}
	return nil
}

func (p *Printer) formatSelectItem(item core.SelectItem) {
	switch {
	case item.Star:
		p.write("*")
		p.formatStarModifiers(item.Modifiers)
	case item.TableStar != "":
		p.ident(item.TableStar)
		p.write(".*")
		p.formatStarModifiers(item.Modifiers)
	default:
		p.formatExpr(item.Expr)
		if item.Alias != "" {
			p.spacedKw(token.AS)
			p.ident(item.Alias)
		}
	}
}

func (p *Printer) formatFrom(from *core.FromClause) {
	p.formatTableRef(from.Source)
	for _, join := range from.Joins {
		p.writeln()
		p.formatJoin(join)
	}
}

func (p *Printer) formatTableRef(ref core.TableRef) {
	switch t := ref.(type) {
	case *core.TableName:
		if t.Catalog != "" {
			p.ident(t.Catalog)
			p.write(".")
		}
		p.qualified(t.Schema, t.Name)
		p.formatTableAlias(t.Alias)
	case *core.DerivedTable:
		p.formatSubquery(t.Select)
		p.formatTableAlias(t.Alias)
	case *core.LateralTable:
		p.kw(token.LATERAL)
		p.space()
		p.formatSubquery(t.Select)
		p.formatTableAlias(t.Alias)
	}
}

func (p *Printer) formatTableAlias(alias string) {
	if alias != "" {
		p.space()
		p.ident(alias)
	}
}

func (p *Printer) formatJoin(join *core.Join) {
	if join == nil {
		return
	}
	if join.Natural {
		p.kw(token.NATURAL)
		p.space()
	}

	switch join.Type {
	case core.JoinInner:
		p.kw(token.JOIN)
	case core.JoinComma:
		p.write(",")
	default:
		p.keyword(string(join.Type))
		p.space()
		p.kw(token.JOIN)
	}
	p.space()
	p.formatTableRef(join.Right)

	switch {
	case len(join.Using) > 0:
		p.writeln()
		p.nested(func() {
			p.kw(token.USING)
			p.write(" (")
			p.identList(join.Using)
			p.write(")")
		})
	case join.Condition != nil:
		p.writeln()
		p.nested(func() {
			p.kw(token.ON)
			p.space()
			p.formatExpr(join.Condition)
		})
	}
}

func (p *Printer) formatOrderByItem(item core.OrderByItem) {
	p.formatExpr(item.Expr)
	if item.Desc {
		p.space()
		p.kw(token.DESC)
	}
	if item.NullsFirst == nil {
		return
	}
	p.space()
	p.kw(token.NULLS)
	p.space()
	if *item.NullsFirst {
		p.kw(token.FIRST)
	} else {
		p.kw(token.LAST)
	}
}
