package columns

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/lint"
	"github.com/leapstack-labs/sqlcols/pkg/lint/internal/ast"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CL02",
		Name:        "columns.repeated-exclude",
		Group:       "columns",
		Description: "A column is excluded more than once in the same modifier list.",
		Severity:    lint.SeverityHint,
		Check:       checkRepeatedExclude,

		BadExample:  "SELECT COLUMNS(* EXCLUDE (a, b) EXCLUDE a) FROM t",
		GoodExample: "SELECT COLUMNS(* EXCLUDE (a, b)) FROM t",
	})
}

func checkRepeatedExclude(stmt *core.SelectStmt, d lint.DialectInfo) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, mods := range ast.CollectModifierLists(stmt) {
		seen := make(map[string]bool)
		for _, mod := range mods {
			ex, ok := mod.(*core.ExcludeModifier)
			if !ok {
				continue
			}
			for _, col := range ex.Columns {
				key := d.NormalizeName(col)
				if seen[key] {
					diags = append(diags, lint.Diagnostic{
						Message: fmt.Sprintf("column %q is already excluded", col),
					})
				}
				seen[key] = true
			}
		}
	}
	return diags
}
