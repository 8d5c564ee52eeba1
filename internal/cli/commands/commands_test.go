package commands

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/leapstack-labs/sqlcols/internal/cli/config"
	"github.com/leapstack-labs/sqlcols/internal/cli/output"
	"github.com/leapstack-labs/sqlcols/internal/cli/testutil"
	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgWith(fn func(*config.Config)) *config.Config {
	cfg := config.Default()
	fn(cfg)
	return cfg
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "statement",
			stdin: "select a from t",
			want:  "SELECT\n  a\nFROM t\n",
		},
		{
			name:  "expression",
			stdin: "columns(* exclude id)",
			args:  []string{"--expr"},
			want:  "COLUMNS(* EXCLUDE (id))\n",
		},
		{
			name:  "name list expression",
			stdin: "COLUMNS(['a', 'b'])\n",
			args:  []string{"--expr", "-"},
			want:  "COLUMNS(['a', 'b'])\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.RunCommand(t, NewFormatCommand(), nil, tt.stdin, tt.args...)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, res.Stdout)
		})
	}
}

func TestFormatCommandWrite(t *testing.T) {
	path := testutil.WriteSQLFile(t, t.TempDir(), "q.sql", "select columns(* exclude (a, b)) from t")

	res := testutil.RunCommand(t, NewFormatCommand(), nil, "", "-w", path)
	require.NoError(t, res.Err)
	assert.Empty(t, res.Stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  COLUMNS(* EXCLUDE (a, b))\nFROM t\n", string(data))
}

func TestFormatCommandErrors(t *testing.T) {
	t.Run("parse error names the input", func(t *testing.T) {
		res := testutil.RunCommand(t, NewFormatCommand(), nil, "SELECT COLUMNS([]) FROM t")
		require.Error(t, res.Err)
		assert.True(t, core.IsKind(res.Err, core.KindEmptyList))
		assert.Contains(t, res.Err.Error(), "<stdin>: ")
	})

	t.Run("write needs a file", func(t *testing.T) {
		res := testutil.RunCommand(t, NewFormatCommand(), nil, "SELECT 1", "--write")
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "--write requires a file")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) { c.Dialect = "oracle" })
		res := testutil.RunCommand(t, NewFormatCommand(), cfg, "SELECT 1")
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "unknown dialect")
	})
}

func TestParseCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) { c.Output = "json" })
		res := testutil.RunCommand(t, NewParseCommand(), cfg, "COLUMNS(['a'])", "--expr")
		require.NoError(t, res.Err)
		assert.JSONEq(t, `{"node": "ColumnsExpr", "Selector": {"node": "NameListSelector", "Names": ["a"]}}`, res.Stdout)
	})

	t.Run("yaml by default", func(t *testing.T) {
		res := testutil.RunCommand(t, NewParseCommand(), nil, "COLUMNS(*)", "--expr")
		require.NoError(t, res.Err)
		assert.Equal(t, "Selector:\n  node: WildcardSelector\nnode: ColumnsExpr\n", res.Stdout)
	})

	t.Run("statement with predicate", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) { c.Output = "json" })
		res := testutil.RunCommand(t, NewParseCommand(), cfg, "SELECT COLUMNS(COLUMNS(c -> c LIKE 'a%')) FROM t")
		require.NoError(t, res.Err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &doc))
		assert.Equal(t, "SelectStmt", doc["node"])
		assert.Contains(t, res.Stdout, `"PredicateSelector"`)
		assert.Contains(t, res.Stdout, `"Param": "c"`)
		assert.Contains(t, res.Stdout, `"LIKE"`)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		res := testutil.RunCommand(t, NewCheckCommand(), nil, "SELECT COLUMNS(* EXCLUDE (a)) FROM t")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "<stdin>: ok")
	})

	t.Run("reports kind and position", func(t *testing.T) {
		res := testutil.RunCommand(t, NewCheckCommand(), nil, "SELECT COLUMNS(* EXCLUDE (a,)) FROM t")
		require.ErrorIs(t, res.Err, ErrCheckFailed)
		assert.Contains(t, res.Stdout, "<stdin>:1:29")
		assert.Contains(t, res.Stdout, "TrailingSeparator")
		assert.Contains(t, res.Stdout, "COLUMNS: EXCLUDE: ")
		assert.Contains(t, res.Stdout, "SELECT COLUMNS(* EXCLUDE (a,)) FROM t\n"+"                            ^")
		testutil.AssertNoANSI(t, res.Stdout)
	})

	t.Run("json", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) { c.Output = "json" })
		res := testutil.RunCommand(t, NewCheckCommand(), cfg, "COLUMNS(* EXCLUDE (a) FOO)", "--expr")
		require.ErrorIs(t, res.Err, ErrCheckFailed)
		assert.NotContains(t, res.Stdout, "Usage:")

		var results []CheckResult
		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &results))
		require.Len(t, results, 1)
		assert.False(t, results[0].Valid)
		assert.Equal(t, "UnexpectedToken", results[0].Kind)
		assert.Equal(t, []string{"EXCLUDE", "REPLACE", ")"}, results[0].Expected)
	})

	t.Run("columns disabled", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) { c.Columns = new(bool) })
		res := testutil.RunCommand(t, NewCheckCommand(), cfg, "SELECT COLUMNS(* EXCLUDE (a)) FROM t")
		require.ErrorIs(t, res.Err, ErrCheckFailed)
	})

	t.Run("several files", func(t *testing.T) {
		dir := t.TempDir()
		good := testutil.WriteSQLFile(t, dir, "good.sql", "SELECT COLUMNS(['a']) FROM t")
		bad := testutil.WriteSQLFile(t, dir, "bad.sql", "SELECT COLUMNS([a]) FROM t")

		res := testutil.RunCommand(t, NewCheckCommand(), nil, "", good, bad)
		require.ErrorIs(t, res.Err, ErrCheckFailed)
		assert.Contains(t, res.Stdout, good+": ok")
		assert.Contains(t, res.Stdout, "InvalidListElement")
		assert.Contains(t, res.Stdout, "2 checked, 1 failed")
	})

	t.Run("missing file", func(t *testing.T) {
		res := testutil.RunCommand(t, NewCheckCommand(), nil, "", "does-not-exist.sql")
		require.Error(t, res.Err)
		assert.False(t, errors.Is(res.Err, ErrCheckFailed))
	})
}

func TestRenderCheckResultsText(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeText, true)
	results := []CheckResult{
		{File: "q.sql", Valid: false, Kind: "EmptyList", Line: 1, Column: 9, Message: "COLUMNS: empty name list"},
	}
	renderCheckResults(tr.Renderer, results, map[string]string{"q.sql": "COLUMNS([])"})

	assert.Contains(t, tr.Out.String(), "✗")
	assert.Contains(t, tr.Out.String(), "q.sql:1:9")
	assert.Contains(t, tr.Out.String(), "        ^")
}

func TestSourceSnippet(t *testing.T) {
	src := "SELECT a\nFROM t WHERE"
	assert.Equal(t, "FROM t WHERE\n     ^", sourceSnippet(src, 2, 6))
	assert.Empty(t, sourceSnippet(src, 3, 1))
	assert.Empty(t, sourceSnippet(src, 0, 0))
}

func TestDialectsCommand(t *testing.T) {
	find := func(t *testing.T, infos []DialectInfo, name string) DialectInfo {
		t.Helper()
		for _, info := range infos {
			if info.Name == name {
				return info
			}
		}
		t.Fatalf("dialect %s not listed", name)
		return DialectInfo{}
	}

	t.Run("json", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) { c.Output = "json" })
		res := testutil.RunCommand(t, NewDialectsCommand(), cfg, "")
		require.NoError(t, res.Err)

		var infos []DialectInfo
		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &infos))
		assert.True(t, find(t, infos, "duckdb").Capabilities["columns"])
		assert.False(t, find(t, infos, "postgres").Capabilities["columns"])
		assert.True(t, find(t, infos, "snowflake").Capabilities["qualify"])
		assert.Equal(t, "uppercase", find(t, infos, "snowflake").Identifiers)
		assert.Equal(t, "$1", find(t, infos, "postgres").Placeholder)
	})

	t.Run("override is shown", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) {
			c.Output = "json"
			c.Columns = new(bool)
		})
		res := testutil.RunCommand(t, NewDialectsCommand(), cfg, "")
		require.NoError(t, res.Err)

		var infos []DialectInfo
		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &infos))
		duck := find(t, infos, "duckdb")
		assert.False(t, duck.Capabilities["columns"])
		assert.True(t, duck.Capabilities["star modifiers"])
	})

	t.Run("markdown table", func(t *testing.T) {
		res := testutil.RunCommand(t, NewDialectsCommand(), nil, "")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "## Dialects")
		assert.Contains(t, res.Stdout, "| Dialect | Columns | Star Modifiers |")
		assert.Contains(t, res.Stdout, "duckdb")
		testutil.AssertNoANSI(t, res.Stdout)
	})
}

func TestLintCommand(t *testing.T) {
	const sql = "SELECT COLUMNS(['a', 'a']), COLUMNS(* EXCLUDE (b, b)) FROM t"

	t.Run("reports diagnostics", func(t *testing.T) {
		res := testutil.RunCommand(t, NewLintCommand(), nil, sql)
		require.ErrorIs(t, res.Err, ErrLintIssues)
		assert.Contains(t, res.Stdout, "## <stdin>")
		assert.Contains(t, res.Stdout, `- **CL01** (warning): COLUMNS name list repeats "a"`)
		assert.Contains(t, res.Stdout, "- **CL02** (hint)")
	})

	t.Run("severity threshold", func(t *testing.T) {
		res := testutil.RunCommand(t, NewLintCommand(), nil, sql, "--severity", "warning", "--disable", "cl01")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "<stdin>: no issues")
	})

	t.Run("config severity and disabled", func(t *testing.T) {
		cfg := cfgWith(func(c *config.Config) {
			c.Output = "json"
			c.Lint.Disabled = []string{"CL01"}
			c.Lint.Severity = map[string]string{"CL02": "error"}
		})
		res := testutil.RunCommand(t, NewLintCommand(), cfg, sql)
		require.ErrorIs(t, res.Err, ErrLintIssues)
		assert.NotContains(t, res.Stdout, "Usage:")
		assert.JSONEq(t, `[{"file": "<stdin>", "diagnostics": [
			{"rule_id": "CL02", "severity": "error", "message": "column \"b\" is already excluded"}
		]}]`, res.Stdout)
	})

	t.Run("parse errors abort", func(t *testing.T) {
		res := testutil.RunCommand(t, NewLintCommand(), nil, "SELECT COLUMNS([]) FROM t")
		require.Error(t, res.Err)
		assert.True(t, core.IsKind(res.Err, core.KindEmptyList))
	})

	t.Run("bad severity flag", func(t *testing.T) {
		res := testutil.RunCommand(t, NewLintCommand(), nil, sql, "--severity", "loud")
		require.Error(t, res.Err)
	})
}
