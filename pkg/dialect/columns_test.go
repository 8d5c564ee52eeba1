package dialect_test

import (
	"testing"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/leapstack-labs/sqlcols/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseColumns(sql string) (core.Expr, error) {
	return parser.ParseExpr(sql, duckdb.DuckDB)
}

func wildcard(mods ...core.StarModifier) *core.ColumnsExpr {
	return &core.ColumnsExpr{Selector: &core.WildcardSelector{Modifiers: mods}}
}

func exclude(cols ...string) *core.ExcludeModifier {
	return &core.ExcludeModifier{Columns: cols}
}

func TestParseColumnsSelectors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want core.Expr
	}{
		{
			name: "plain wildcard",
			sql:  "COLUMNS(*)",
			want: wildcard(),
		},
		{
			name: "exclude list",
			sql:  "COLUMNS(* EXCLUDE (email, phone, address))",
			want: wildcard(exclude("email", "phone", "address")),
		},
		{
			name: "bare exclude",
			sql:  "COLUMNS(* EXCLUDE address)",
			want: wildcard(exclude("address")),
		},
		{
			name: "parenthesized single exclude",
			sql:  "COLUMNS(* EXCLUDE (address))",
			want: wildcard(exclude("address")),
		},
		{
			name: "replace",
			sql:  "COLUMNS(* REPLACE (price * 2 AS price, upper(name) AS name))",
			want: wildcard(&core.ReplaceModifier{Items: []core.ReplaceItem{
				{
					Expr:  &core.BinaryExpr{Left: &core.ColumnRef{Column: "price"}, Op: token.STAR, Right: &core.Literal{Type: core.LiteralNumber, Value: "2"}},
					Alias: "price",
				},
				{
					Expr:  &core.FuncCall{Name: "UPPER", Args: []core.Expr{&core.ColumnRef{Column: "name"}}},
					Alias: "name",
				},
			}}),
		},
		{
			name: "name list",
			sql:  "COLUMNS(['id', 'first_name'])",
			want: &core.ColumnsExpr{Selector: &core.NameListSelector{Names: []string{"id", "first_name"}}},
		},
		{
			name: "name list keeps duplicates",
			sql:  "COLUMNS(['b', 'a', 'b'])",
			want: &core.ColumnsExpr{Selector: &core.NameListSelector{Names: []string{"b", "a", "b"}}},
		},
		{
			name: "predicate",
			sql:  "COLUMNS(columns(c -> c LIKE '%_name'))",
			want: &core.ColumnsExpr{Selector: &core.PredicateSelector{
				Param: "c",
				Body: &core.LikeExpr{
					Expr:    &core.ColumnRef{Column: "c"},
					Pattern: &core.Literal{Type: core.LiteralString, Value: "%_name"},
					Op:      token.LIKE,
				},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColumns(tt.sql)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnsModifierOrder(t *testing.T) {
	got, err := parseColumns("COLUMNS(* REPLACE (a + 1 AS a) EXCLUDE b EXCLUDE (c) REPLACE (0 AS d))")
	require.NoError(t, err)

	sel, ok := got.(*core.ColumnsExpr).Selector.(*core.WildcardSelector)
	require.True(t, ok)
	require.Len(t, sel.Modifiers, 4)
	assert.IsType(t, &core.ReplaceModifier{}, sel.Modifiers[0])
	assert.Equal(t, exclude("b"), sel.Modifiers[1])
	assert.Equal(t, exclude("c"), sel.Modifiers[2])
	assert.IsType(t, &core.ReplaceModifier{}, sel.Modifiers[3])
}

func TestColumnsPredicateUsesExpressionGrammar(t *testing.T) {
	got, err := parseColumns("COLUMNS(COLUMNS(col -> col ~ '^x' AND length(col) > 3 OR col = 'id'))")
	require.NoError(t, err)

	pred, ok := got.(*core.ColumnsExpr).Selector.(*core.PredicateSelector)
	require.True(t, ok)
	assert.Equal(t, "col", pred.Param)

	or, ok := pred.Body.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.OR, or.Op)

	and, ok := or.Left.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.AND, and.Op)

	regex, ok := and.Left.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.TILDE, regex.Op)
}

func TestColumnsErrors(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		kind     core.ErrorKind
		expected []string
	}{
		{"empty replace", "COLUMNS(* REPLACE ())", core.KindEmptyList, nil},
		{"empty exclude", "COLUMNS(* EXCLUDE ())", core.KindEmptyList, nil},
		{"empty name list", "COLUMNS([])", core.KindEmptyList, nil},
		{"bad selector", "COLUMNS(123)", core.KindUnexpectedToken, []string{"*", "[", "COLUMNS"}},
		{"unknown modifier", "COLUMNS(* RENAME (a AS b))", core.KindUnexpectedToken, []string{"EXCLUDE", "REPLACE", ")"}},
		{"bare replace", "COLUMNS(* REPLACE a AS b)", core.KindUnexpectedToken, nil},
		{"exclude trailing comma", "COLUMNS(* EXCLUDE (a, b, ))", core.KindTrailingSeparator, nil},
		{"replace trailing comma", "COLUMNS(* REPLACE (1 AS a, ))", core.KindTrailingSeparator, nil},
		{"name list trailing comma", "COLUMNS(['a', ])", core.KindTrailingSeparator, nil},
		{"replace without AS", "COLUMNS(* REPLACE (a + 1 b))", core.KindMissingBindingMarker, nil},
		{"predicate without arrow", "COLUMNS(COLUMNS(c c LIKE 'x'))", core.KindMissingBindingMarker, nil},
		{"identifier in name list", "COLUMNS(['a', b])", core.KindInvalidListElement, nil},
		{"expression in name list", "COLUMNS(['a' || 'b'])", core.KindInvalidListElement, nil},
		{"modifier on name list", "COLUMNS(['a'] EXCLUDE (a))", core.KindUnexpectedToken, nil},
		{"modifier on predicate", "COLUMNS(COLUMNS(c -> true) EXCLUDE (a))", core.KindUnexpectedToken, nil},
		{"unclosed", "COLUMNS(*", core.KindUnexpectedToken, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColumns(tt.sql)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, core.IsKind(err, tt.kind), "got %v", err)

			if tt.expected != nil {
				var pe *core.ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.expected, pe.Expected)
			}
		})
	}
}

func TestColumnsErrorPosition(t *testing.T) {
	_, err := parseColumns("COLUMNS(* EXCLUDE (a,))")
	require.Error(t, err)

	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 22, pe.Pos.Column)
	assert.Contains(t, err.Error(), "COLUMNS: EXCLUDE: ")
}

func TestColumnsIsIdentifierWhenNotCalled(t *testing.T) {
	got, err := parseColumns("columns + 1")
	require.NoError(t, err)
	assert.Equal(t, &core.ColumnRef{Column: "columns"}, got.(*core.BinaryExpr).Left)
}
