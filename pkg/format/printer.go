// Package format prints parsed SQL back as text in a canonical layout.
//
// The printer adds no parentheses of its own. Grouping lives in
// core.ParenExpr nodes, so parsing printed output yields an equal tree.
package format

import (
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

const indentWidth = 2

// Printer accumulates formatted SQL. Indentation is written lazily by the
// first write on each line.
type Printer struct {
	dialect *dialect.Dialect
	buf     strings.Builder
	depth   int
	fresh   bool // nothing written on the current line yet
}

func newPrinter(d *dialect.Dialect) *Printer {
	return &Printer{dialect: d, fresh: true}
}

// String returns the output with exactly one trailing newline.
func (p *Printer) String() string {
	return strings.TrimRight(p.buf.String(), "\n") + "\n"
}

func (p *Printer) write(s string) {
	if s == "" {
		return
	}
	if p.fresh && s[0] != '\n' {
		p.buf.WriteString(strings.Repeat(" ", p.depth*indentWidth))
	}
	p.buf.WriteString(s)
	p.fresh = false
}

func (p *Printer) writeln() {
	p.buf.WriteByte('\n')
	p.fresh = true
}

// space separates two items on the same line.
func (p *Printer) space() { p.buf.WriteByte(' ') }

func (p *Printer) indent() { p.depth++ }

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// nested prints body one level deeper.
func (p *Printer) nested(body func()) {
	p.indent()
	body()
	p.dedent()
}

// keyword prints free-form keyword text upper-cased.
func (p *Printer) keyword(s string) { p.write(strings.ToUpper(s)) }

// kw prints the keywords of toks separated by single spaces.
func (p *Printer) kw(toks ...token.TokenType) {
	for i, t := range toks {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// spacedKw prints " KW1 KW2 " between two operands.
func (p *Printer) spacedKw(toks ...token.TokenType) {
	p.space()
	p.kw(toks...)
	p.space()
}

// not prints " NOT" when negated.
func (p *Printer) not(negated bool) {
	if negated {
		p.space()
		p.kw(token.NOT)
	}
}

// ident prints name, quoted when it would not lex back as itself.
func (p *Printer) ident(name string) {
	p.write(p.dialect.QuoteIdentifierIfNeeded(name))
}

// qualified prints [qualifier.]name.
func (p *Printer) qualified(qualifier, name string) {
	if qualifier != "" {
		p.ident(qualifier)
		p.write(".")
	}
	p.ident(name)
}

// str prints a single-quoted string literal.
func (p *Printer) str(s string) {
	p.write("'" + strings.ReplaceAll(s, "'", "''") + "'")
}

// formatList calls item for 0..n-1, writing sep between items and a line
// break after each sep when multiline is set.
func (p *Printer) formatList(n int, item func(i int), sep string, multiline bool) {
	for i := range n {
		if i > 0 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
		item(i)
	}
}

// inline prints items as "a, b, c".
func inline[T any](p *Printer, items []T, item func(T)) {
	p.formatList(len(items), func(i int) { item(items[i]) }, ", ", false)
}

// stacked prints items one per line, each but the last followed by a comma.
func stacked[T any](p *Printer, items []T, item func(T)) {
	p.formatList(len(items), func(i int) { item(items[i]) }, ",", true)
}

func (p *Printer) identList(names []string) {
	inline(p, names, p.ident)
}
