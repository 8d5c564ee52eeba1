package format

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
)

// Format prints stmt in canonical layout, ending with a newline. The
// dialect picks clause order and identifier quoting and must not be nil.
func Format(stmt *core.SelectStmt, d *dialect.Dialect) string {
	p := newPrinter(d)
	p.formatSelectStmt(stmt)
	return p.String()
}

// Expr prints a single expression with no trailing newline.
func Expr(e core.Expr, d *dialect.Dialect) string {
	p := newPrinter(d)
	p.formatExpr(e)
	return strings.TrimRight(p.buf.String(), "\n")
}
