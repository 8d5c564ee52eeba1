package parser

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlcols/pkg/dialect"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// Lexer splits SQL text into tokens.
//
// A bare word is looked up in the core keyword table, then in the
// dialect's. Words neither knows are IDENTs, which is how COLUMNS or
// EXCLUDE stay plain names in dialects that lack them.
type Lexer struct {
	input   string
	pos     int  // offset of ch
	readPos int  // offset after ch
	ch      byte // 0 at end of input
	line    int
	col     int

	dialect *dialect.Dialect
	symbols []string // dialect symbols, longest first
}

// NewLexer returns a Lexer that knows only the core vocabulary.
func NewLexer(input string) *Lexer {
	return NewLexerWithDialect(input, nil)
}

// NewLexerWithDialect returns a Lexer that also recognizes d's keywords
// and symbols.
func NewLexerWithDialect(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{input: input, line: 1, dialect: d}
	if d != nil {
		l.symbols = slices.SortedFunc(maps.Keys(d.Symbols()), func(a, b string) int {
			return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
		})
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// pairTokens are the two-character operators of the core.
var pairTokens = map[string]token.TokenType{
	"->": token.ARROW,
	"<=": token.LE,
	">=": token.GE,
	"<>": token.NE,
	"!=": token.NE,
	"||": token.DPIPE,
}

// charTokens are the one-character operators and punctuation of the core.
var charTokens = map[byte]token.TokenType{
	'+': token.PLUS, '-': token.MINUS, '*': token.STAR, '/': token.SLASH,
	'%': token.PERCENT, '=': token.EQ, '<': token.LT, '>': token.GT,
	'.': token.DOT, ',': token.COMMA, ';': token.SEMICOLON, ':': token.COLON,
	'(': token.LPAREN, ')': token.RPAREN, '[': token.LBRACKET, ']': token.RBRACKET,
	'{': token.LBRACE, '}': token.RBRACE, '~': token.TILDE,
}

// NextToken returns the next token; at end of input it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	pos := l.currentPos()
	emit := func(t token.TokenType, lit string) token.Token {
		return token.Token{Type: t, Literal: lit, Pos: pos}
	}

	if tok, ok := l.matchDialectSymbol(pos); ok {
		return tok
	}

	switch ch := l.ch; {
	case ch == 0:
		return emit(token.EOF, "")
	case ch == '\'' || ch == '"':
		lit, closed := l.readQuoted(ch)
		switch {
		case !closed:
			return emit(token.ILLEGAL, string(ch)+lit)
		case ch == '"':
			return emit(token.IDENT, lit)
		}
		return emit(token.STRING, lit)
	case isLetter(ch) || ch == '_':
		lit := l.readIdentifier()
		return emit(l.lookupWord(lit), lit)
	case isDigit(ch):
		return emit(token.NUMBER, l.readNumber())
	}

	if l.readPos < len(l.input) {
		pair := l.input[l.pos : l.readPos+1]
		if t, ok := pairTokens[pair]; ok {
			l.readChar()
			l.readChar()
			return emit(t, pair)
		}
	}

	lit := string(l.ch)
	t, ok := charTokens[l.ch]
	if !ok {
		t = token.ILLEGAL
	}
	l.readChar()
	return emit(t, lit)
}

// lookupWord classifies a bare word. Quoted identifiers never reach here.
func (l *Lexer) lookupWord(lit string) token.TokenType {
	lower := strings.ToLower(lit)
	if t := token.LookupIdent(lower); t != token.IDENT {
		return t
	}
	if l.dialect != nil {
		if t, ok := l.dialect.LookupKeyword(lower); ok {
			return t
		}
	}
	return token.IDENT
}

// matchDialectSymbol matches the longest dialect symbol at the current
// position (e.g. "::" before ":").
func (l *Lexer) matchDialectSymbol(pos token.Position) (token.Token, bool) {
	if len(l.symbols) == 0 || l.pos >= len(l.input) {
		return token.Token{}, false
	}

	remaining := l.input[l.pos:]
	for _, sym := range l.symbols {
		if !strings.HasPrefix(remaining, sym) {
			continue
		}
		for range sym {
			l.readChar()
		}
		return token.Token{Type: l.dialect.Symbols()[sym], Literal: sym, Pos: pos}, true
	}
	return token.Token{}, false
}

// skipWhitespaceAndComments skips whitespace, line comments and block comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		switch {
		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for l.ch != 0 && (l.ch != '*' || l.peekChar() != '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
		default:
			return
		}
	}
}

// readQuoted reads a string or quoted identifier delimited by quote.
// A doubled quote inside the literal stands for one quote character.
// ok is false when input ends before the closing quote.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for l.ch != 0 {
		if l.ch != quote {
			result.WriteByte(l.ch)
			l.readChar()
			continue
		}
		if l.peekChar() == quote {
			result.WriteByte(quote)
			l.readChar()
			l.readChar()
			continue
		}
		l.readChar() // skip closing quote
		return result.String(), true
	}
	return result.String(), false
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) || l.peekChar() == '+' || l.peekChar() == '-') {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return ch >= 0x80 || unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens of input up to and including EOF.
func Tokenize(input string, d *dialect.Dialect) []token.Token {
	l := NewLexerWithDialect(input, d)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
