package format

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// AND/OR chains heavier than this break before each operator.
const breakWeight = 5

func (p *Printer) formatExpr(e core.Expr) {
	switch x := e.(type) {
	case nil:
	case *core.Literal:
		p.formatLiteral(x)
	case *core.ColumnRef:
		p.qualified(x.Table, x.Column)
	case *core.StarExpr:
		if x.Table != "" {
			p.ident(x.Table)
			p.write(".")
		}
		p.write("*")
	case *core.BinaryExpr:
		p.formatBinary(x)
	case *core.UnaryExpr:
		p.formatUnary(x)
	case *core.FuncCall:
		p.formatFuncCall(x)
	case *core.CaseExpr:
		p.formatCase(x)
	case *core.CastExpr:
		p.formatCast(x)
	case *core.InExpr:
		p.formatIn(x)
	case *core.BetweenExpr:
		p.formatExpr(x.Expr)
		p.not(x.Not)
		p.spacedKw(token.BETWEEN)
		p.formatExpr(x.Low)
		p.spacedKw(token.AND)
		p.formatExpr(x.High)
	case *core.IsNullExpr:
		p.formatIs(x.Expr, x.Not, token.NULL)
	case *core.IsBoolExpr:
		val := token.FALSE
		if x.Value {
			val = token.TRUE
		}
		p.formatIs(x.Expr, x.Not, val)
	case *core.LikeExpr:
		p.formatExpr(x.Expr)
		p.not(x.Not)
		p.spacedKw(x.Op)
		p.formatExpr(x.Pattern)
		if x.Escape != nil {
			p.space()
			p.keyword("ESCAPE")
			p.space()
			p.formatExpr(x.Escape)
		}
	case *core.ParenExpr:
		p.write("(")
		p.formatExpr(x.Expr)
		p.write(")")
	case *core.SubqueryExpr:
		p.formatSubquery(x.Select)
	case *core.ExistsExpr:
		if x.Not {
			p.kw(token.NOT)
			p.space()
		}
		p.kw(token.EXISTS)
		p.space()
		p.formatSubquery(x.Select)
	case *core.ColumnsExpr:
		p.formatColumnsExpr(x)
	case *core.LambdaExpr:
		p.formatLambda(x)
	case *core.StructLiteral:
		p.write("{")
		inline(p, x.Fields, func(f core.StructField) {
			p.str(f.Key)
			p.write(": ")
			p.formatExpr(f.Value)
		})
		p.write("}")
	case *core.ListLiteral:
		p.write("[")
		inline(p, x.Elements, p.formatExpr)
		p.write("]")
	case *core.IndexExpr:
		p.formatExpr(x.Expr)
		p.write("[")
		if x.IsSlice {
			p.formatExpr(x.Start)
			p.write(":")
		}
		p.formatExpr(x.Index)
		p.write("]")
	}
}

// weight estimates how much room e takes, to decide where long boolean
// expressions break.
func weight(e core.Expr) int {
	sum := func(base int, es ...core.Expr) int {
		for _, x := range es {
			base += weight(x)
		}
		return base
	}

	switch x := e.(type) {
	case nil:
		return 0
	case *core.BinaryExpr:
		return sum(1, x.Left, x.Right)
	case *core.UnaryExpr:
		return sum(1, x.Expr)
	case *core.ParenExpr:
		return weight(x.Expr)
	case *core.FuncCall:
		return sum(2, x.Args...)
	case *core.CaseExpr:
		w := 2
		for _, when := range x.Whens {
			w += weight(when.Condition) + weight(when.Result)
		}
		return w
	case *core.ColumnsExpr:
		if pred, ok := x.Selector.(*core.PredicateSelector); ok {
			return sum(2, pred.Body)
		}
		return 2
	case *core.LambdaExpr:
		return sum(1, x.Body)
	case *core.StructLiteral:
		w := 1
		for _, f := range x.Fields {
			w += weight(f.Value)
		}
		return w
	case *core.ListLiteral:
		return sum(1, x.Elements...)
	case *core.IndexExpr:
		return sum(1, x.Expr, x.Index, x.Start)
	}
	return 1
}

func (p *Printer) formatLiteral(lit *core.Literal) {
	switch lit.Type {
	case core.LiteralString:
		p.str(lit.Value)
	case core.LiteralNull:
		p.kw(token.NULL)
	case core.LiteralBool:
		if strings.EqualFold(lit.Value, "true") {
			p.kw(token.TRUE)
		} else {
			p.kw(token.FALSE)
		}
	default:
		p.write(lit.Value)
	}
}

func (p *Printer) formatBinary(b *core.BinaryExpr) {
	p.formatExpr(b.Left)
	switch {
	case b.Op == token.COMMA: // (x, y) lambda parameters
		p.write(", ")
	case (b.Op == token.AND || b.Op == token.OR) && weight(b) > breakWeight:
		p.writeln()
		p.kw(b.Op)
		p.space()
	default:
		p.spacedKw(b.Op)
	}
	p.formatExpr(b.Right)
}

func (p *Printer) formatUnary(u *core.UnaryExpr) {
	p.kw(u.Op)
	// "- -x" must not print as the comment "--x".
	if _, nested := u.Expr.(*core.UnaryExpr); nested || u.Op == token.NOT {
		p.space()
	}
	p.formatExpr(u.Expr)
}

// formatIs prints "expr IS [NOT] value".
func (p *Printer) formatIs(e core.Expr, negated bool, value token.TokenType) {
	p.formatExpr(e)
	p.space()
	p.kw(token.IS)
	p.not(negated)
	p.space()
	p.kw(value)
}

func (p *Printer) formatCase(c *core.CaseExpr) {
	p.kw(token.CASE)
	if c.Operand != nil {
		p.space()
		p.formatExpr(c.Operand)
	}
	p.writeln()

	p.nested(func() {
		for _, w := range c.Whens {
			p.kw(token.WHEN)
			p.space()
			p.formatExpr(w.Condition)
			p.spacedKw(token.THEN)
			p.formatExpr(w.Result)
			p.writeln()
		}
		if c.Else != nil {
			p.kw(token.ELSE)
			p.space()
			p.formatExpr(c.Else)
			p.writeln()
		}
	})
	p.kw(token.END)
}

func (p *Printer) formatCast(c *core.CastExpr) {
	if c.Postfix {
		p.formatExpr(c.Expr)
		p.write("::" + c.TypeName)
		return
	}
	p.kw(token.CAST)
	p.write("(")
	p.formatExpr(c.Expr)
	p.spacedKw(token.AS)
	p.write(c.TypeName + ")")
}

func (p *Printer) formatIn(in *core.InExpr) {
	p.formatExpr(in.Expr)
	p.not(in.Not)
	p.space()
	p.kw(token.IN)
	p.space()
	if in.Query != nil {
		p.formatSubquery(in.Query)
		return
	}
	p.write("(")
	inline(p, in.Values, p.formatExpr)
	p.write(")")
}

// formatSubquery prints "(", the statement indented on the following lines, then ")".
func (p *Printer) formatSubquery(stmt *core.SelectStmt) {
	p.write("(")
	p.writeln()
	p.nested(func() { p.formatSelectStmt(stmt) })
	p.write(")")
}

func (p *Printer) formatLambda(l *core.LambdaExpr) {
	if len(l.Params) == 1 {
		p.ident(l.Params[0])
	} else {
		p.write("(")
		p.identList(l.Params)
		p.write(")")
	}
	p.write(" -> ")
	p.formatExpr(l.Body)
}
