package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqlcols/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Rules")
	w.Table([]string{"ID", "Name"}, [][]string{{"CL01", "columns.duplicate-name"}})
	w.CodeBlock("sql", "SELECT 1\n")

	got := string(w.Bytes())
	assert.Contains(t, got, "## Rules\n\n")
	assert.Contains(t, got, "| ID | Name |")
	assert.Contains(t, got, "| CL01 | columns.duplicate-name |")
	assert.Contains(t, got, "```sql\nSELECT 1\n```\n")
}

func TestGenerateLintDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateLintDocs(dir))

	rules, err := os.ReadFile(filepath.Join(dir, "rules.md"))
	require.NoError(t, err)
	for _, r := range lint.Rules() {
		assert.Contains(t, string(rules), "### "+r.ID+" - "+r.Name)
	}
	assert.Contains(t, string(rules), "## Columns {#columns}")
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	page, err := os.ReadFile(filepath.Join(dir, "configuration.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "`log_format`")
	assert.Contains(t, string(page), "`--dialect`")
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	for _, name := range []string{"index.md", "format.md", "check.md", "lint.md", "dialects.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "`SQLCOLS_DIALECT`")
}
