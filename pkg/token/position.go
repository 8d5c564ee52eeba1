package token

import "fmt"

// Position locates a token in the input. Line and Column start at 1,
// Offset is a byte index starting at 0. The zero Position is unknown.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Known reports whether p was set by the lexer.
func (p Position) Known() bool { return p.Line > 0 }

// String formats p as line:column, or "-" when unknown.
func (p Position) String() string {
	if !p.Known() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
