package columns

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/lint"
	"github.com/leapstack-labs/sqlcols/pkg/lint/internal/ast"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CL04",
		Name:        "columns.unused-binding",
		Group:       "columns",
		Description: "COLUMNS predicate never refers to its bound name.",
		Severity:    lint.SeverityWarning,
		Check:       checkUnusedBinding,

		Rationale:   "A predicate that ignores the column name selects every column or none.",
		BadExample:  "SELECT COLUMNS(COLUMNS(c -> x LIKE '%_id')) FROM t",
		GoodExample: "SELECT COLUMNS(COLUMNS(c -> c LIKE '%_id')) FROM t",
	})
}

func checkUnusedBinding(stmt *core.SelectStmt, d lint.DialectInfo) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, c := range ast.CollectColumnsExprs(stmt) {
		pred, ok := c.Selector.(*core.PredicateSelector)
		if !ok {
			continue
		}
		if !usesName(pred.Body, d.NormalizeName(pred.Param), d) {
			diags = append(diags, lint.Diagnostic{
				Message: fmt.Sprintf("COLUMNS predicate does not use %q", pred.Param),
			})
		}
	}
	return diags
}

// usesName reports whether body references name as a free, unqualified column.
// Lambdas that rebind name hide it from their bodies.
func usesName(body core.Expr, name string, d lint.DialectInfo) bool {
	found := false
	ast.Walk(body, func(node any) bool {
		if found {
			return false
		}
		switch n := node.(type) {
		case *core.ColumnRef:
			if n.Table == "" && d.NormalizeName(n.Column) == name {
				found = true
			}
		case *core.LambdaExpr:
			if slices.ContainsFunc(n.Params, func(p string) bool { return d.NormalizeName(p) == name }) {
				return false
			}
		}
		return true
	})
	return found
}
