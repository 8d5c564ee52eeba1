package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlcols/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlcols/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlcols/pkg/parser"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

func tokenTypes(toks []token.Token) []token.TokenType {
	types := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestLexerDialectKeywords(t *testing.T) {
	sql := "COLUMNS(* EXCLUDE (a))"

	assert.Equal(t, []token.TokenType{
		token.COLUMNS, token.LPAREN, token.STAR, token.EXCLUDE,
		token.LPAREN, token.IDENT, token.RPAREN, token.RPAREN, token.EOF,
	}, tokenTypes(parser.Tokenize(sql, duckdb.DuckDB)))

	assert.Equal(t, []token.TokenType{
		token.IDENT, token.LPAREN, token.STAR, token.IDENT,
		token.LPAREN, token.IDENT, token.RPAREN, token.RPAREN, token.EOF,
	}, tokenTypes(parser.Tokenize(sql, ansi.ANSI)), "ansi has no COLUMNS keywords")
}

func TestLexerSymbols(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []token.TokenType
	}{
		{"arrow", "c -> c", []token.TokenType{token.IDENT, token.ARROW, token.IDENT, token.EOF}},
		{"cast beats colon", "a::INT", []token.TokenType{token.IDENT, token.DCOLON, token.IDENT, token.EOF}},
		{"slice colon", "a[1:2]", []token.TokenType{token.IDENT, token.LBRACKET, token.NUMBER, token.COLON, token.NUMBER, token.RBRACKET, token.EOF}},
		{"integer divide", "a // b", []token.TokenType{token.IDENT, token.DSLASH, token.IDENT, token.EOF}},
		{"comparison", "a <> b", []token.TokenType{token.IDENT, token.NE, token.IDENT, token.EOF}},
		{"comments skipped", "a -- trailing\n/* block */ ;", []token.TokenType{token.IDENT, token.SEMICOLON, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenTypes(parser.Tokenize(tt.sql, duckdb.DuckDB)))
		})
	}
}

func TestLexerQuoting(t *testing.T) {
	toks := parser.Tokenize(`'it''s' "odd""name" "Mixed Case"`, duckdb.DuckDB)

	assert.Equal(t, token.Token{Type: token.STRING, Literal: "it's", Pos: token.Position{Line: 1, Column: 1, Offset: 0}}, toks[0])
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, `odd"name`, toks[1].Literal)
	assert.Equal(t, "Mixed Case", toks[2].Literal)
}

func TestLexerQuotedKeywordIsIdentifier(t *testing.T) {
	toks := parser.Tokenize(`"columns" "select"`, duckdb.DuckDB)
	assert.Equal(t, token.IDENT, toks[0].Type)
	assert.Equal(t, token.IDENT, toks[1].Type)
}

func TestLexerUnterminated(t *testing.T) {
	toks := parser.Tokenize("'abc", duckdb.DuckDB)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
	assert.Equal(t, token.EOF, toks[1].Type)
}

func TestLexerPositions(t *testing.T) {
	toks := parser.Tokenize("SELECT\n  a", duckdb.DuckDB)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 9}, toks[1].Pos)
}

func TestCoreLexer(t *testing.T) {
	l := parser.NewLexer("a::b ! c")

	var got []token.TokenType
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		got = append(got, tok.Type)
	}
	assert.Equal(t, []token.TokenType{
		token.IDENT, token.COLON, token.COLON, token.IDENT, token.ILLEGAL, token.IDENT,
	}, got, "without a dialect :: is two colons")
}
