package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
)

func parseJoins(t *testing.T, sql string) []*core.Join {
	t.Helper()
	stmt, err := parser.ParseWithDialect(sql, duckdb.DuckDB)
	require.NoError(t, err)
	require.NotNil(t, stmt.Body.Left.From)
	return stmt.Body.Left.From.Joins
}

// ---------- NATURAL JOIN Tests ----------

func TestNaturalJoin(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantType core.JoinType
	}{
		{"natural inner join", "SELECT * FROM t1 NATURAL JOIN t2", core.JoinInner},
		{"natural left join", "SELECT * FROM t1 NATURAL LEFT JOIN t2", core.JoinLeft},
		{"natural right join", "SELECT * FROM t1 NATURAL RIGHT JOIN t2", core.JoinRight},
		{"natural full join", "SELECT * FROM t1 NATURAL FULL JOIN t2", core.JoinFull},
		{"natural left outer join", "SELECT * FROM t1 NATURAL LEFT OUTER JOIN t2", core.JoinLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joins := parseJoins(t, tt.sql)
			require.Len(t, joins, 1)

			join := joins[0]
			assert.Equal(t, tt.wantType, join.Type)
			assert.True(t, join.Natural)
			assert.Nil(t, join.Condition, "NATURAL JOIN should not have ON")
			assert.Empty(t, join.Using, "NATURAL JOIN should not have USING")
		})
	}
}

func TestNaturalJoinRejectsConditions(t *testing.T) {
	_, err := parser.ParseWithDialect("SELECT * FROM t1 NATURAL JOIN t2 ON t1.id = t2.id", duckdb.DuckDB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), parser.ErrNaturalJoinOn)

	_, err = parser.ParseWithDialect("SELECT * FROM t1 NATURAL JOIN t2 USING (id)", duckdb.DuckDB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), parser.ErrNaturalJoinUsing)
}

// ---------- JOIN ... USING Tests ----------

func TestJoinUsing(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantCols []string
		joinType core.JoinType
	}{
		{"single column", "SELECT * FROM t1 JOIN t2 USING (id)", []string{"id"}, core.JoinInner},
		{"multiple columns", "SELECT * FROM t1 JOIN t2 USING (id, name, region)", []string{"id", "name", "region"}, core.JoinInner},
		{"left join using", "SELECT * FROM t1 LEFT JOIN t2 USING (customer_id)", []string{"customer_id"}, core.JoinLeft},
		{"full join using", "SELECT * FROM t1 FULL JOIN t2 USING (key)", []string{"key"}, core.JoinFull},
		{"semi join using", "SELECT * FROM t1 SEMI JOIN t2 USING (id)", []string{"id"}, core.JoinSemi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joins := parseJoins(t, tt.sql)
			require.Len(t, joins, 1)

			join := joins[0]
			assert.Equal(t, tt.wantCols, join.Using)
			assert.Equal(t, tt.joinType, join.Type)
			assert.Nil(t, join.Condition, "USING should not have ON")
		})
	}
}

// ---------- Multiple Join Tests ----------

func TestMultipleJoinsWithDifferentStyles(t *testing.T) {
	joins := parseJoins(t, `SELECT a.id, b.name, c.value
		FROM table_a a
		JOIN table_b b ON a.id = b.a_id
		NATURAL LEFT JOIN table_c c, table_d`)
	require.Len(t, joins, 3)

	assert.Equal(t, core.JoinType(core.JoinInner), joins[0].Type)
	assert.NotNil(t, joins[0].Condition)

	assert.Equal(t, core.JoinType(core.JoinLeft), joins[1].Type)
	assert.True(t, joins[1].Natural)

	assert.Equal(t, core.JoinComma, joins[2].Type)
	assert.Equal(t, &core.TableName{Name: "table_d"}, joins[2].Right)
}

// ---------- DuckDB Join Type Tests ----------

func TestDuckDBJoinTypes(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantType core.JoinType
	}{
		{"semi join", "SELECT * FROM t1 SEMI JOIN t2 ON t1.id = t2.id", core.JoinSemi},
		{"anti join", "SELECT * FROM t1 ANTI JOIN t2 ON t1.id = t2.id", core.JoinAnti},
		{"asof join", "SELECT * FROM trades ASOF JOIN quotes ON trades.sym = quotes.sym AND trades.ts >= quotes.ts", duckdb.JoinAsof},
		{"positional join", "SELECT * FROM t1 POSITIONAL JOIN t2", duckdb.JoinPositional},
		{"left semi join", "SELECT * FROM t1 LEFT SEMI JOIN t2 ON t1.id = t2.id", core.JoinSemi},
		{"left anti join", "SELECT * FROM t1 LEFT ANTI JOIN t2 ON t1.id = t2.id", core.JoinAnti},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joins := parseJoins(t, tt.sql)
			require.Len(t, joins, 1)
			assert.Equal(t, tt.wantType, joins[0].Type)
		})
	}
}

func TestAsofJoinAliases(t *testing.T) {
	joins := parseJoins(t, "SELECT t.symbol, q.bid FROM trades t ASOF JOIN quotes AS q ON t.symbol = q.symbol")
	require.Len(t, joins, 1)
	assert.Equal(t, &core.TableName{Name: "quotes", Alias: "q"}, joins[0].Right)
}

func TestSemiIsAnAliasWithoutSemiJoins(t *testing.T) {
	stmt, err := parser.ParseWithDialect("SELECT * FROM t1 SEMI JOIN t2 ON t1.id = t2.id", postgres.Postgres)
	require.NoError(t, err)

	from := stmt.Body.Left.From
	assert.Equal(t, &core.TableName{Name: "t1", Alias: "SEMI"}, from.Source)
	require.Len(t, from.Joins, 1)
	assert.Equal(t, core.JoinType(core.JoinInner), from.Joins[0].Type)
}

func TestQualifiedTableNames(t *testing.T) {
	stmt, err := parser.ParseWithDialect("SELECT * FROM cat.sch.tbl x, LATERAL (SELECT 1) AS l", duckdb.DuckDB)
	require.NoError(t, err)

	from := stmt.Body.Left.From
	assert.Equal(t, &core.TableName{Catalog: "cat", Schema: "sch", Name: "tbl", Alias: "x"}, from.Source)
	require.Len(t, from.Joins, 1)
	lateral, ok := from.Joins[0].Right.(*core.LateralTable)
	require.True(t, ok)
	assert.Equal(t, "l", lateral.Alias)
}
