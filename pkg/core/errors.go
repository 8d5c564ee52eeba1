package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

// ErrorKind values.
const (
	// KindSyntax is any general grammar error outside the classified kinds.
	KindSyntax ErrorKind = iota
	// KindUnexpectedToken means the found token is not one of an expected set.
	KindUnexpectedToken
	// KindEmptyList means a list that requires elements had none.
	KindEmptyList
	// KindTrailingSeparator means a comma was followed by the list's closing delimiter.
	KindTrailingSeparator
	// KindMissingBindingMarker means AS (in REPLACE) or -> (in a predicate) is missing.
	KindMissingBindingMarker
	// KindInvalidListElement means a name list held something other than a string literal.
	KindInvalidListElement
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "Syntax"
	case KindUnexpectedToken:
		return "UnexpectedToken"
	case KindEmptyList:
		return "EmptyList"
	case KindTrailingSeparator:
		return "TrailingSeparator"
	case KindMissingBindingMarker:
		return "MissingBindingMarker"
	case KindInvalidListElement:
		return "InvalidListElement"
	default:
		return "Unknown"
	}
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Kind     ErrorKind
	Pos      token.Position
	Found    string   // description of the offending token
	Expected []string // accepted alternatives, when known
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// NewParseError creates a ParseError of the given kind at tok.
func NewParseError(kind ErrorKind, tok token.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Pos:     tok.Pos,
		Found:   DescribeToken(tok),
		Message: fmt.Sprintf(format, args...),
	}
}

// UnexpectedToken creates a KindUnexpectedToken error for tok naming the
// accepted alternatives.
func UnexpectedToken(tok token.Token, expected ...string) *ParseError {
	found := DescribeToken(tok)
	return &ParseError{
		Kind:     KindUnexpectedToken,
		Pos:      tok.Pos,
		Found:    found,
		Expected: expected,
		Message:  fmt.Sprintf("unexpected token %s, expected %s", found, joinAlternatives(expected)),
	}
}

// IsKind reports whether err, or any error it wraps, is a ParseError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// DescribeToken renders a token for error messages.
func DescribeToken(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case token.NUMBER:
		return fmt.Sprintf("number %s", tok.Literal)
	case token.STRING:
		return fmt.Sprintf("string '%s'", tok.Literal)
	case token.ILLEGAL:
		return fmt.Sprintf("illegal input %q", tok.Literal)
	}
	if tok.Literal != "" {
		return fmt.Sprintf("%q", tok.Literal)
	}
	return fmt.Sprintf("%q", tok.Type.String())
}

func joinAlternatives(alts []string) string {
	switch len(alts) {
	case 0:
		return "something else"
	case 1:
		return alts[0]
	case 2:
		return alts[0] + " or " + alts[1]
	}
	return strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
}
