package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/snowflake"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ---------- QUALIFY Clause Tests ----------

func TestQualifyGating(t *testing.T) {
	sql := `SELECT name, ROW_NUMBER() OVER (PARTITION BY dept ORDER BY salary DESC) AS rn
		FROM employees
		QUALIFY rn = 1`

	t.Run("duckdb accepts", func(t *testing.T) {
		stmt, err := parser.ParseWithDialect(sql, duckdb.DuckDB)
		require.NoError(t, err)
		assert.NotNil(t, stmt.Body.Left.Qualify)
	})

	t.Run("snowflake accepts", func(t *testing.T) {
		_, err := parser.ParseWithDialect(sql, snowflake.Snowflake)
		require.NoError(t, err)
	})

	for _, name := range []string{"postgres", "ansi"} {
		t.Run(name+" rejects", func(t *testing.T) {
			_, err := parser.ParseWithDialect(sql, mustDialect(t, name))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "QUALIFY is not supported in "+name+" dialect")
		})
	}
}

func TestQualifyWithComplexExpression(t *testing.T) {
	sql := `SELECT customer_id, SUM(amount) OVER (PARTITION BY customer_id ORDER BY order_date) AS running_total
	FROM orders
	QUALIFY running_total > 1000 AND order_date >= '2024-01-01'`

	stmt, err := parser.ParseWithDialect(sql, duckdb.DuckDB)
	require.NoError(t, err)

	binaryExpr, ok := stmt.Body.Left.Qualify.(*core.BinaryExpr)
	require.True(t, ok, "QUALIFY should contain binary expression")
	assert.Equal(t, token.AND, binaryExpr.Op)
}

// ---------- ILIKE Operator Tests ----------

func TestILIKE(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		sql     string
		not     bool
	}{
		{"duckdb", "duckdb", `SELECT * FROM users WHERE name ILIKE '%john%'`, false},
		{"postgres", "postgres", `SELECT * FROM users WHERE email ILIKE '%@example.com'`, false},
		{"negated", "duckdb", `SELECT * FROM products WHERE name NOT ILIKE '%test%'`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.ParseWithDialect(tt.sql, mustDialect(t, tt.dialect))
			require.NoError(t, err)

			like, ok := stmt.Body.Left.Where.(*core.LikeExpr)
			require.True(t, ok, "WHERE should contain LIKE expression")
			assert.Equal(t, token.ILIKE, like.Op)
			assert.Equal(t, tt.not, like.Not)
		})
	}
}

func TestANSIRejectsILIKE(t *testing.T) {
	_, err := parser.ParseWithDialect(`SELECT * FROM users WHERE name ILIKE '%john%'`, ansi.ANSI)
	require.Error(t, err)
	assert.True(t, core.IsKind(err, core.KindUnexpectedToken))
}

func TestILIKEPrecedence(t *testing.T) {
	stmt, err := parser.ParseWithDialect(`SELECT * FROM t WHERE a ILIKE '%x%' AND b > 5`, duckdb.DuckDB)
	require.NoError(t, err)

	and, ok := stmt.Body.Left.Where.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.AND, and.Op)
	assert.IsType(t, &core.LikeExpr{}, and.Left)
	assert.IsType(t, &core.BinaryExpr{}, and.Right)
}

// ---------- Operator Gating Tests ----------

func TestOperatorGating(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		dialect string
		wantErr bool
	}{
		{"cast operator in duckdb", "SELECT a::INTEGER FROM t", "duckdb", false},
		{"cast operator in postgres", "SELECT a::INTEGER FROM t", "postgres", false},
		{"cast operator in ansi", "SELECT a::INTEGER FROM t", "ansi", true},
		{"regex match in postgres", "SELECT * FROM t WHERE a ~ '^x'", "postgres", false},
		{"regex match in ansi", "SELECT * FROM t WHERE a ~ '^x'", "ansi", true},
		{"integer divide in duckdb", "SELECT a // 2 FROM t", "duckdb", false},
		{"integer divide in postgres", "SELECT a // 2 FROM t", "postgres", true},
		{"rlike in snowflake", "SELECT * FROM t WHERE a RLIKE 'x'", "snowflake", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseWithDialect(tt.sql, mustDialect(t, tt.dialect))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------- Clause Sequence Tests ----------

func TestClauseOrderEnforced(t *testing.T) {
	_, err := parser.ParseWithDialect("SELECT * FROM t ORDER BY a WHERE b = 1", duckdb.DuckDB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"WHERE"`)
}

func TestGroupByAndOrderByAll(t *testing.T) {
	stmt, err := parser.ParseWithDialect("SELECT a, SUM(b) FROM t GROUP BY ALL ORDER BY ALL DESC", duckdb.DuckDB)
	require.NoError(t, err)
	sc := stmt.Body.Left
	assert.True(t, sc.GroupByAll)
	assert.True(t, sc.OrderByAll)
	assert.True(t, sc.OrderByAllDesc)

	_, err = parser.ParseWithDialect("SELECT a FROM t GROUP BY ALL", postgres.Postgres)
	assert.Error(t, err, "GROUP BY ALL is a DuckDB extension")
}

// ---------- Error Position Tests ----------

func TestErrorIncludesPosition(t *testing.T) {
	sql := "SELECT a\nFROM t\nWHERE a = = 1"
	_, err := parser.ParseWithDialect(sql, duckdb.DuckDB)
	require.Error(t, err)

	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Pos.Line)
	assert.Equal(t, 11, pe.Pos.Column)
	assert.Contains(t, err.Error(), "line 3, column 11")
}

func TestErrorPositionWithQualify(t *testing.T) {
	sql := "SELECT a FROM t QUALIFY a = 1"
	_, err := parser.ParseWithDialect(sql, postgres.Postgres)
	require.Error(t, err)

	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Pos.Line)
	assert.Equal(t, 17, pe.Pos.Column)
}

func TestDialectRequired(t *testing.T) {
	_, err := parser.ParseWithDialect("SELECT 1", nil)
	require.ErrorIs(t, err, parser.ErrDialectRequired)

	_, err = parser.ParseExpr("1", nil)
	require.ErrorIs(t, err, parser.ErrDialectRequired)
}
