package columns

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/lint"
	"github.com/leapstack-labs/sqlcols/pkg/lint/internal/ast"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CL01",
		Name:        "columns.duplicate-name",
		Group:       "columns",
		Description: "COLUMNS name list selects the same column more than once.",
		Severity:    lint.SeverityWarning,
		Check:       checkDuplicateName,

		Rationale:   "Duplicates are kept, so the column is produced twice under one name.",
		BadExample:  "SELECT COLUMNS(['id', 'name', 'id']) FROM t",
		GoodExample: "SELECT COLUMNS(['id', 'name']) FROM t",
	})
}

func checkDuplicateName(stmt *core.SelectStmt, d lint.DialectInfo) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, c := range ast.CollectColumnsExprs(stmt) {
		list, ok := c.Selector.(*core.NameListSelector)
		if !ok {
			continue
		}
		seen := make(map[string]bool, len(list.Names))
		for _, name := range list.Names {
			key := d.NormalizeName(name)
			if seen[key] {
				diags = append(diags, lint.Diagnostic{
					Message: fmt.Sprintf("COLUMNS name list repeats %q", name),
				})
			}
			seen[key] = true
		}
	}
	return diags
}
