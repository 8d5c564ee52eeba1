package format

import (
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// formatColumnsExpr prints COLUMNS(...). EXCLUDE is always printed in its
// parenthesized form; the bare single-name form parses to the same node.
func (p *Printer) formatColumnsExpr(c *core.ColumnsExpr) {
	p.kw(token.COLUMNS)
	p.write("(")

	switch sel := c.Selector.(type) {
	case *core.WildcardSelector:
		p.write("*")
		p.formatStarModifiers(sel.Modifiers)
	case *core.NameListSelector:
		p.write("[")
		inline(p, sel.Names, p.str)
		p.write("]")
	case *core.PredicateSelector:
		p.kw(token.COLUMNS)
		p.write("(")
		p.ident(sel.Param)
		p.write(" -> ")
		p.formatExpr(sel.Body)
		p.write(")")
	}

	p.write(")")
}

// formatStarModifiers prints EXCLUDE/REPLACE/RENAME modifiers in stored order.
func (p *Printer) formatStarModifiers(mods []core.StarModifier) {
	for _, mod := range mods {
		p.space()
		switch m := mod.(type) {
		case *core.ExcludeModifier:
			p.kw(token.EXCLUDE)
			p.write(" (")
			p.identList(m.Columns)

		case *core.ReplaceModifier:
			p.kw(token.REPLACE)
			p.write(" (")
			inline(p, m.Items, func(it core.ReplaceItem) {
				p.formatExpr(it.Expr)
				p.spacedKw(token.AS)
				p.ident(it.Alias)
			})

		case *core.RenameModifier:
			p.kw(token.RENAME)
			p.write(" (")
			inline(p, m.Items, func(it core.RenameItem) {
				p.ident(it.OldName)
				p.spacedKw(token.AS)
				p.ident(it.NewName)
			})
		}
		p.write(")")
	}
}
