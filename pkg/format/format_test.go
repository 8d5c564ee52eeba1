package format

import (
	"testing"

	duckdbdialect "github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	d := duckdbdialect.DuckDB
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "select with aliases",
			input: "select a as col1, b from t where x=1",
			expected: `SELECT
  a AS col1,
  b
FROM t
WHERE
  x = 1
`,
		},
		{
			name:  "table star",
			input: "SELECT t.* FROM t",
			expected: `SELECT
  t.*
FROM t
`,
		},
		{
			name:  "joins",
			input: "SELECT * FROM a JOIN b ON a.id = b.id LEFT OUTER JOIN c USING (id) CROSS JOIN d",
			expected: `SELECT
  *
FROM a
JOIN b
  ON a.id = b.id
LEFT JOIN c
  USING (id)
CROSS JOIN d
`,
		},
		{
			name:  "cte",
			input: "WITH cte AS (SELECT a FROM t) SELECT * FROM cte",
			expected: `WITH
  cte AS (
    SELECT
      a
    FROM t
  )
SELECT
  *
FROM cte
`,
		},
		{
			name:  "case expression",
			input: "SELECT CASE WHEN x = 1 THEN 'a' ELSE 'it''s' END FROM t",
			expected: `SELECT
  CASE
    WHEN x = 1 THEN 'a'
    ELSE 'it''s'
  END
FROM t
`,
		},
		{
			name:  "predicates",
			input: "SELECT * FROM t WHERE x NOT IN (1, 2) AND y BETWEEN 1 AND 10",
			expected: `SELECT
  *
FROM t
WHERE
  x NOT IN (1, 2) AND y BETWEEN 1 AND 10
`,
		},
		{
			name:  "group by order by",
			input: "SELECT a, COUNT(*) FROM t GROUP BY a ORDER BY a DESC NULLS LAST LIMIT 10 OFFSET 5",
			expected: `SELECT
  a,
  COUNT(*)
FROM t
GROUP BY
  a
ORDER BY
  a DESC NULLS LAST
LIMIT 10
OFFSET 5
`,
		},
		{
			name:  "union all",
			input: "SELECT a FROM t1 UNION ALL SELECT b FROM t2",
			expected: `SELECT
  a
FROM t1
UNION ALL
SELECT
  b
FROM t2
`,
		},
		{
			name:  "derived table",
			input: "SELECT * FROM (SELECT a FROM t) AS sub",
			expected: `SELECT
  *
FROM (
  SELECT
    a
  FROM t
) sub
`,
		},
		{
			name:  "window function",
			input: "SELECT ROW_NUMBER() OVER (PARTITION BY region ORDER BY sales DESC) FROM t",
			expected: `SELECT
  ROW_NUMBER() OVER (
    PARTITION BY region
    ORDER BY sales DESC)
FROM t
`,
		},
		{
			name:  "casts",
			input: "SELECT CAST(x AS int), y::varchar(10) FROM t",
			expected: `SELECT
  CAST(x AS INT),
  y::VARCHAR(10)
FROM t
`,
		},
		{
			name:  "exists",
			input: "SELECT * FROM t WHERE EXISTS (SELECT 1 FROM other)",
			expected: `SELECT
  *
FROM t
WHERE
  EXISTS (
    SELECT
      1
    FROM other
  )
`,
		},
		{
			name:  "reserved identifiers are quoted",
			input: `SELECT "select", "Mixed Case", "columns" FROM "table"`,
			expected: `SELECT
  "select",
  "Mixed Case",
  "columns"
FROM "table"
`,
		},
		{
			name:  "qualify",
			input: "SELECT a FROM t QUALIFY ROW_NUMBER() OVER w = 1 WINDOW w AS (ORDER BY a)",
			expected: `SELECT
  a
FROM t
QUALIFY
  ROW_NUMBER() OVER w = 1
WINDOW
  w AS (
    ORDER BY a)
`,
		},
		{
			name:  "columns",
			input: "SELECT COLUMNS(* EXCLUDE id), max(COLUMNS(['a', 'b'])) FROM t",
			expected: `SELECT
  COLUMNS(* EXCLUDE (id)),
  MAX(COLUMNS(['a', 'b']))
FROM t
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.ParseWithDialect(tt.input, d)
			require.NoError(t, err)

			result := Format(stmt, d)
			assert.Equal(t, tt.expected, result)
		})
	}
}
