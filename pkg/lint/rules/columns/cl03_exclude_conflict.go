package columns

import (
	"fmt"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/lint"
	"github.com/leapstack-labs/sqlcols/pkg/lint/internal/ast"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CL03",
		Name:        "columns.exclude-conflict",
		Group:       "columns",
		Description: "A column is excluded and also replaced or renamed.",
		Severity:    lint.SeverityWarning,
		Check:       checkExcludeConflict,

		Rationale:   "Whether the replacement survives depends on modifier order, which is easy to misread.",
		BadExample:  "SELECT COLUMNS(* EXCLUDE price REPLACE (price * 2 AS price)) FROM t",
		GoodExample: "SELECT COLUMNS(* REPLACE (price * 2 AS price)) FROM t",
	})
}

func checkExcludeConflict(stmt *core.SelectStmt, d lint.DialectInfo) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, mods := range ast.CollectModifierLists(stmt) {
		excluded := make(map[string]bool)
		for _, mod := range mods {
			if ex, ok := mod.(*core.ExcludeModifier); ok {
				for _, col := range ex.Columns {
					excluded[d.NormalizeName(col)] = true
				}
			}
		}
		if len(excluded) == 0 {
			continue
		}

		for _, mod := range mods {
			switch m := mod.(type) {
			case *core.ReplaceModifier:
				for _, item := range m.Items {
					if excluded[d.NormalizeName(item.Alias)] {
						diags = append(diags, lint.Diagnostic{
							Message: fmt.Sprintf("column %q is both excluded and replaced", item.Alias),
						})
					}
				}
			case *core.RenameModifier:
				for _, item := range m.Items {
					if excluded[d.NormalizeName(item.OldName)] {
						diags = append(diags, lint.Diagnostic{
							Message: fmt.Sprintf("column %q is both excluded and renamed", item.OldName),
						})
					}
				}
			}
		}
	}
	return diags
}
