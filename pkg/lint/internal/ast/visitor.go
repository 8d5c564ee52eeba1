// Package ast walks parsed statements for the lint rules.
package ast

import "github.com/leapstack-labs/sqlcols/pkg/core"

// Walk visits node and then, if fn returned true, its children in source
// order.
func Walk(node any, fn func(node any) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range children(node) {
		Walk(child, fn)
	}
}

// nodes collects non-nil children.
type nodes []any

func (ns *nodes) stmt(s *core.SelectStmt) {
	if s != nil {
		*ns = append(*ns, s)
	}
}

func (ns *nodes) expr(es ...core.Expr) {
	for _, e := range es {
		if e != nil {
			*ns = append(*ns, e)
		}
	}
}

func (ns *nodes) order(items []core.OrderByItem) {
	for _, it := range items {
		ns.expr(it.Expr)
	}
}

func (ns *nodes) window(w *core.WindowSpec) {
	if w != nil {
		ns.expr(w.PartitionBy...)
		ns.order(w.OrderBy)
	}
}

// modifiers adds the expressions carried by REPLACE items.
func (ns *nodes) modifiers(mods []core.StarModifier) {
	for _, m := range mods {
		if r, ok := m.(*core.ReplaceModifier); ok {
			for _, it := range r.Items {
				ns.expr(it.Expr)
			}
		}
	}
}

func children(node any) nodes {
	var ns nodes
	switch n := node.(type) {
	case *core.SelectStmt:
		if n == nil {
			return nil
		}
		if n.With != nil {
			for _, cte := range n.With.CTEs {
				ns.stmt(cte.Select)
			}
		}
		if n.Body != nil {
			ns = append(ns, n.Body)
		}
	case *core.SelectBody:
		if n.Left != nil {
			ns = append(ns, n.Left)
		}
		if n.Right != nil {
			ns = append(ns, n.Right)
		}
	case *core.SelectCore:
		for _, item := range n.Columns {
			ns.expr(item.Expr)
			ns.modifiers(item.Modifiers)
		}
		if n.From != nil {
			ns = append(ns, n.From.Source)
			for _, j := range n.From.Joins {
				ns = append(ns, j.Right)
				ns.expr(j.Condition)
			}
		}
		ns.expr(n.Where)
		ns.expr(n.GroupBy...)
		ns.expr(n.Having, n.Qualify)
		for _, w := range n.Windows {
			ns.window(w.Spec)
		}
		ns.order(n.OrderBy)
		ns.expr(n.Limit, n.Offset)

	case *core.DerivedTable:
		ns.stmt(n.Select)
	case *core.LateralTable:
		ns.stmt(n.Select)
	case *core.SubqueryExpr:
		ns.stmt(n.Select)
	case *core.ExistsExpr:
		ns.stmt(n.Select)

	case *core.ColumnsExpr:
		switch sel := n.Selector.(type) {
		case *core.WildcardSelector:
			ns.modifiers(sel.Modifiers)
		case *core.PredicateSelector:
			ns.expr(sel.Body)
		}
	case *core.FuncCall:
		ns.expr(n.Args...)
		ns.expr(n.Filter)
		ns.window(n.Window)
	case *core.CaseExpr:
		ns.expr(n.Operand)
		for _, w := range n.Whens {
			ns.expr(w.Condition, w.Result)
		}
		ns.expr(n.Else)
	case *core.InExpr:
		ns.expr(n.Expr)
		ns.expr(n.Values...)
		ns.stmt(n.Query)
	case *core.StructLiteral:
		for _, f := range n.Fields {
			ns.expr(f.Value)
		}

	case *core.BinaryExpr:
		ns.expr(n.Left, n.Right)
	case *core.UnaryExpr:
		ns.expr(n.Expr)
	case *core.CastExpr:
		ns.expr(n.Expr)
	case *core.BetweenExpr:
		ns.expr(n.Expr, n.Low, n.High)
	case *core.IsNullExpr:
		ns.expr(n.Expr)
	case *core.IsBoolExpr:
		ns.expr(n.Expr)
	case *core.LikeExpr:
		ns.expr(n.Expr, n.Pattern, n.Escape)
	case *core.ParenExpr:
		ns.expr(n.Expr)
	case *core.IndexExpr:
		ns.expr(n.Expr, n.Start, n.Index)
	case *core.ListLiteral:
		ns.expr(n.Elements...)
	case *core.LambdaExpr:
		ns.expr(n.Body)
	}
	return ns
}

// CollectColumnsExprs returns every COLUMNS(...) expression in stmt,
// outermost first.
func CollectColumnsExprs(stmt *core.SelectStmt) []*core.ColumnsExpr {
	var out []*core.ColumnsExpr
	Walk(stmt, func(node any) bool {
		if c, ok := node.(*core.ColumnsExpr); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}

// CollectModifierLists returns each non-empty star modifier list in stmt:
// those on SELECT * and t.* items and those of COLUMNS(* ...) wildcards.
func CollectModifierLists(stmt *core.SelectStmt) [][]core.StarModifier {
	var out [][]core.StarModifier
	Walk(stmt, func(node any) bool {
		switch n := node.(type) {
		case *core.SelectCore:
			for _, item := range n.Columns {
				if len(item.Modifiers) > 0 {
					out = append(out, item.Modifiers)
				}
			}
		case *core.ColumnsExpr:
			if w, ok := n.Selector.(*core.WildcardSelector); ok && len(w.Modifiers) > 0 {
				out = append(out, w.Modifiers)
			}
		}
		return true
	})
	return out
}
