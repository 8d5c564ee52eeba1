// Package token holds the lexical vocabulary shared by the lexer, the
// parser and the dialects.
//
// The ANSI core is a fixed set of constants. Anything a dialect adds on
// top (QUALIFY, COLUMNS, "::") gets an ID above the builtin range from
// Register.
package token

import (
	"fmt"
	"strings"
)

// TokenType identifies a token kind.
//
//nolint:revive // token.TokenType reads better at call sites than token.Type
type TokenType int32

//nolint:revive // SQL keywords keep their upper-case spelling
const (
	EOF TokenType = iota
	ILLEGAL

	IDENT
	NUMBER
	STRING

	// PLUS..ARROW are operators and punctuation; see operatorText.
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	DPIPE
	EQ
	NE // "!=" and "<>" both lex to NE
	LT
	GT
	LE
	GE
	DOT
	COMMA
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COLON
	SEMICOLON
	TILDE
	ARROW

	// ALL..WITHIN are reserved in every dialect. Keep them sorted and in
	// step with keywordText.
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CAST
	CROSS
	CURRENT
	DESC
	DISTINCT
	ELSE
	END
	EXCEPT
	EXISTS
	FALSE
	FILTER
	FIRST
	FOLLOWING
	FROM
	FULL
	GROUP
	GROUPS
	HAVING
	IN
	INNER
	INTERSECT
	IS
	JOIN
	LAST
	LATERAL
	LEFT
	LIKE
	LIMIT
	NATURAL
	NOT
	NULL
	NULLS
	OFFSET
	ON
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	PRECEDING
	RANGE
	RECURSIVE
	RIGHT
	ROW
	ROWS
	SELECT
	THEN
	TRUE
	UNBOUNDED
	UNION
	USING
	WHEN
	WHERE
	WINDOW
	WITH
	WITHIN

	// maxBuiltin bounds the fixed range; registered tokens come after it.
	maxBuiltin TokenType = 999
)

var (
	// operatorText spells PLUS through ARROW, in declaration order.
	operatorText = strings.Fields("+ - * / % || = != < > <= >= . , ( ) [ ] { } : ; ~ ->")

	// keywordText spells ALL through WITHIN, in declaration order.
	keywordText = strings.Fields(`
		ALL AND AS ASC BETWEEN BY CASE CAST CROSS CURRENT DESC DISTINCT
		ELSE END EXCEPT EXISTS FALSE FILTER FIRST FOLLOWING FROM FULL
		GROUP GROUPS HAVING IN INNER INTERSECT IS JOIN LAST LATERAL LEFT
		LIKE LIMIT NATURAL NOT NULL NULLS OFFSET ON OR ORDER OUTER OVER
		PARTITION PRECEDING RANGE RECURSIVE RIGHT ROW ROWS SELECT THEN
		TRUE UNBOUNDED UNION USING WHEN WHERE WINDOW WITH WITHIN`)

	// keywords is keyed by the lower-case spelling.
	keywords = make(map[string]TokenType, len(keywordText))
)

func init() {
	if len(operatorText) != int(ARROW-PLUS)+1 || len(keywordText) != int(WITHIN-ALL)+1 {
		panic("token: spelling tables out of step with constants")
	}
	for i, kw := range keywordText {
		keywords[strings.ToLower(kw)] = ALL + TokenType(i)
	}
}

func (t TokenType) String() string {
	switch {
	case t == EOF:
		return "EOF"
	case t == ILLEGAL:
		return "ILLEGAL"
	case t == IDENT:
		return "IDENT"
	case t == NUMBER:
		return "NUMBER"
	case t == STRING:
		return "STRING"
	case IsOperator(t):
		return operatorText[t-PLUS]
	case IsKeyword(t):
		return keywordText[t-ALL]
	}
	if name, ok := registered.name(t); ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// LookupIdent maps a lower-case word to its core keyword, or IDENT.
// Dialect keywords are not consulted here.
func LookupIdent(word string) TokenType {
	if t, ok := keywords[word]; ok {
		return t
	}
	return IDENT
}

// IsKeyword reports whether t is one of the core keywords.
func IsKeyword(t TokenType) bool { return ALL <= t && t <= WITHIN }

// IsOperator reports whether t is core punctuation or an operator.
func IsOperator(t TokenType) bool { return PLUS <= t && t <= ARROW }

// Token is one lexeme and where it starts.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
