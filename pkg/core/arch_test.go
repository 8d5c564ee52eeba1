package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// coreImports returns the imports of every non-test file in pkg/core keyed by file name.
func coreImports(t *testing.T) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	fset := token.NewFileSet()
	result := make(map[string][]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(".", name), nil, parser.ImportsOnly)
		require.NoError(t, err, "parse %s", name)
		for _, imp := range f.Imports {
			result[name] = append(result[name], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return result
}

// TestCoreImportsOnly verifies pkg/core only imports pkg/token and stdlib.
func TestCoreImportsOnly(t *testing.T) {
	allowed := map[string]bool{
		"github.com/leapstack-labs/sqlcols/pkg/token": true,
	}

	for file, imports := range coreImports(t) {
		for _, imp := range imports {
			if !strings.Contains(imp, ".") {
				continue // stdlib
			}
			if !allowed[imp] {
				t.Errorf("%s imports forbidden package: %s", file, imp)
			}
			if strings.Contains(imp, "/internal/") || strings.HasSuffix(imp, "/pkg/spi") {
				t.Errorf("%s imports %s (core must stay below spi and internal)", file, imp)
			}
		}
	}
}
