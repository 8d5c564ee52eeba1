// Package parser turns SQL text into the core AST.
//
// Every entry point takes a dialect; it decides which keywords, operators,
// clauses and prefix constructs exist:
//
//	stmt, err := parser.ParseWithDialect("SELECT COLUMNS(* EXCLUDE (id)) FROM t", duckdb.DuckDB)
//
//	d, err := dialect.Lookup("duckdb")
//	expr, err := parser.ParseExpr("COLUMNS(c -> c LIKE '%_id')", d)
//
// Statements are recursive descent:
//
//	statement   := [WITH [RECURSIVE] cte ("," cte)*] select_body [";"]
//	select_body := select_core [set_op [ALL] [BY NAME] select_body]
//	select_core := SELECT [DISTINCT] items [FROM from] dialect clauses...
//
// Expressions use precedence climbing over the dialect's operator table.
package parser

import (
	"errors"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ErrDialectRequired is returned when no dialect is supplied.
var ErrDialectRequired = errors.New("parser: dialect is required")

// Parser holds a three-token window over the lexer and the errors seen
// so far.
type Parser struct {
	lexer   *Lexer
	dialect *dialect.Dialect

	token, peek, peek2 token.Token

	errors []error
}

// NewParser returns a parser positioned on the first token of sql.
func NewParser(sql string, d *dialect.Dialect) *Parser {
	p := &Parser{lexer: NewLexerWithDialect(sql, d), dialect: d}
	for range 3 {
		p.nextToken()
	}
	return p
}

// ParseWithDialect parses one SELECT statement, optionally followed by
// ";". On error no partial tree is returned.
func ParseWithDialect(sql string, d *dialect.Dialect) (*core.SelectStmt, error) {
	return parseWhole(sql, d, func(p *Parser) *core.SelectStmt {
		stmt := p.parseStatement()
		p.match(token.SEMICOLON)
		return stmt
	})
}

// ParseExpr parses a standalone expression such as COLUMNS(* EXCLUDE (a)).
func ParseExpr(sql string, d *dialect.Dialect) (core.Expr, error) {
	return parseWhole(sql, d, (*Parser).parseExpression)
}

// parseWhole runs parse over all of sql and returns the first error.
func parseWhole[T any](sql string, d *dialect.Dialect, parse func(*Parser) T) (T, error) {
	var zero T
	if d == nil {
		return zero, ErrDialectRequired
	}
	p := NewParser(sql, d)
	v := parse(p)
	p.expectEOF()
	if len(p.errors) > 0 {
		return zero, p.errors[0]
	}
	return v, nil
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// nextToken shifts the lookahead window by one.
func (p *Parser) nextToken() {
	p.token, p.peek, p.peek2 = p.peek, p.peek2, p.lexer.NextToken()
}

func (p *Parser) check(t token.TokenType) bool      { return p.token.Type == t }
func (p *Parser) checkPeek(t token.TokenType) bool  { return p.peek.Type == t }
func (p *Parser) checkPeek2(t token.TokenType) bool { return p.peek2.Type == t }

// match consumes the current token when it is t.
func (p *Parser) match(t token.TokenType) bool {
	ok := p.check(t)
	if ok {
		p.nextToken()
	}
	return ok
}

// expect is match that records an error on mismatch.
func (p *Parser) expect(t token.TokenType) bool {
	if p.match(t) {
		return true
	}
	p.fail(core.UnexpectedToken(p.token, t.String()))
	return false
}

func (p *Parser) expectEOF() {
	if len(p.errors) == 0 && !p.check(token.EOF) {
		p.fail(core.UnexpectedToken(p.token, "end of input"))
	}
}

// addError records a KindSyntax error at the current token.
func (p *Parser) addError(format string, args ...any) {
	p.fail(core.NewParseError(core.KindSyntax, p.token, format, args...))
}

// fail records err. Callers stop consuming input afterwards but need not
// unwind; only the first error is reported.
func (p *Parser) fail(err error) {
	p.errors = append(p.errors, err)
}

// handlerFailed replaces everything recorded since mark with err. Dialect
// handlers wrap the errors of the sub-parsers they call, so err already
// carries them.
func (p *Parser) handlerFailed(mark int, err error) {
	p.errors = append(p.errors[:mark], err)
}

// isIdentLike reports whether tok reads as an identifier here: IDENT, or
// a word the dialect treats as a soft keyword.
func (p *Parser) isIdentLike(tok token.Token) bool {
	return tok.Type == token.IDENT ||
		p.dialect.IsSoftKeyword(tok.Type) && token.IsWord(tok.Literal)
}

// isClauseWord reports whether tok is an IDENT that starts a clause in
// some registered dialect.
func (p *Parser) isClauseWord(tok token.Token) bool {
	return tok.Type == token.IDENT && dialect.IsKnownClause(tok.Literal)
}

// canBeImplicitAlias reports whether tok may follow an expression or table
// as an alias without AS. Clause words are refused so that a clause the
// dialect lacks is an error instead of an alias.
func (p *Parser) canBeImplicitAlias(tok token.Token) bool {
	return tok.Type == token.IDENT && !p.isClauseWord(tok)
}

// parseAlias parses [AS] alias.
func (p *Parser) parseAlias() string {
	explicit := p.match(token.AS)
	ok := p.canBeImplicitAlias(p.token)
	if explicit {
		ok = p.isIdentLike(p.token)
	}
	if !ok {
		if explicit {
			p.fail(core.UnexpectedToken(p.token, "alias"))
		}
		return ""
	}
	alias := p.token.Literal
	p.nextToken()
	return alias
}
