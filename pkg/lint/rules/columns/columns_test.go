package columns_test

import (
	"testing"

	"github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlcols/pkg/lint"
	_ "github.com/leapstack-labs/sqlcols/pkg/lint/rules/columns"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, sql string) []lint.Diagnostic {
	t.Helper()
	stmt, err := parser.ParseWithDialect(sql, duckdb.DuckDB)
	require.NoError(t, err)
	return lint.NewAnalyzer(nil).Analyze(stmt, duckdb.DuckDB)
}

func TestColumnsRules(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantIDs  []string
		wantMsgs []string
	}{
		{
			name: "clean",
			sql:  "SELECT COLUMNS(* EXCLUDE (a) REPLACE (b + 1 AS b)), COLUMNS(['x', 'y']), COLUMNS(COLUMNS(c -> c LIKE 'a%')) FROM t",
		},
		{
			name:     "duplicate name",
			sql:      "SELECT COLUMNS(['id', 'name', 'ID']) FROM t",
			wantIDs:  []string{"CL01"},
			wantMsgs: []string{`COLUMNS name list repeats "ID"`},
		},
		{
			name:     "repeated exclude",
			sql:      "SELECT COLUMNS(* EXCLUDE (a, b) EXCLUDE a) FROM t",
			wantIDs:  []string{"CL02"},
			wantMsgs: []string{`column "a" is already excluded`},
		},
		{
			name:     "repeated exclude on select star",
			sql:      "SELECT * EXCLUDE (a, a) FROM t",
			wantIDs:  []string{"CL02"},
			wantMsgs: []string{`column "a" is already excluded`},
		},
		{
			name:     "exclude and replace",
			sql:      "SELECT COLUMNS(* EXCLUDE price REPLACE (price * 2 AS price)) FROM t",
			wantIDs:  []string{"CL03"},
			wantMsgs: []string{`column "price" is both excluded and replaced`},
		},
		{
			name:     "exclude and rename",
			sql:      "SELECT * EXCLUDE (a) RENAME (a AS b) FROM t",
			wantIDs:  []string{"CL03"},
			wantMsgs: []string{`column "a" is both excluded and renamed`},
		},
		{
			name:     "unused binding",
			sql:      "SELECT COLUMNS(COLUMNS(c -> x LIKE '%_id')) FROM t",
			wantIDs:  []string{"CL04"},
			wantMsgs: []string{`COLUMNS predicate does not use "c"`},
		},
		{
			name:    "qualified reference is not the binding",
			sql:     "SELECT COLUMNS(COLUMNS(c -> t.c = 'a')) FROM t",
			wantIDs: []string{"CL04"},
		},
		{
			name:    "binding shadowed by lambda",
			sql:     "SELECT COLUMNS(COLUMNS(c -> len(list_filter(xs, c -> c > 1)) > 0)) FROM t",
			wantIDs: []string{"CL04"},
		},
		{
			name: "binding used under function",
			sql:  "SELECT COLUMNS(COLUMNS(c -> length(C) > 3)) FROM t",
		},
		{
			name:    "nested in subquery",
			sql:     "SELECT * FROM (SELECT max(COLUMNS(['a', 'a'])) FROM t) s",
			wantIDs: []string{"CL01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := analyze(t, tt.sql)

			ids := make([]string, 0, len(diags))
			msgs := make([]string, 0, len(diags))
			for _, d := range diags {
				ids = append(ids, d.RuleID)
				msgs = append(msgs, d.Message)
			}
			if len(tt.wantIDs) == 0 {
				assert.Empty(t, diags)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
			if tt.wantMsgs != nil {
				assert.Equal(t, tt.wantMsgs, msgs)
			}
		})
	}
}

func TestRulesRegistered(t *testing.T) {
	for _, id := range []string{"CL01", "CL02", "CL03", "CL04"} {
		rule, ok := lint.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, "columns", rule.Group)
		assert.NotEmpty(t, rule.BadExample)
	}
}
