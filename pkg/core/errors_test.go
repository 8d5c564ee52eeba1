package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leapstack-labs/sqlcols/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnexpectedTokenMessage(t *testing.T) {
	tok := token.Token{Type: token.NUMBER, Literal: "123", Pos: token.Position{Line: 1, Column: 9, Offset: 8}}

	err := UnexpectedToken(tok, "*", "[", "COLUMNS")

	assert.Equal(t, KindUnexpectedToken, err.Kind)
	assert.Equal(t, []string{"*", "[", "COLUMNS"}, err.Expected)
	assert.Equal(t, "number 123", err.Found)
	assert.Equal(t, "parse error at line 1, column 9: unexpected token number 123, expected *, [ or COLUMNS", err.Error())
}

func TestIsKindThroughWrapping(t *testing.T) {
	tok := token.Token{Type: token.RPAREN, Literal: ")"}
	base := NewParseError(KindEmptyList, tok, "expected at least one entry")
	wrapped := fmt.Errorf("REPLACE: %w", base)

	assert.True(t, IsKind(wrapped, KindEmptyList))
	assert.False(t, IsKind(wrapped, KindTrailingSeparator))
	assert.False(t, IsKind(errors.New("plain"), KindEmptyList))

	var pe *ParseError
	require.ErrorAs(t, wrapped, &pe)
	assert.Equal(t, `")"`, pe.Found)
}

func TestDescribeToken(t *testing.T) {
	tests := []struct {
		name     string
		tok      token.Token
		expected string
	}{
		{"eof", token.Token{Type: token.EOF}, "end of input"},
		{"ident", token.Token{Type: token.IDENT, Literal: "email"}, `identifier "email"`},
		{"string", token.Token{Type: token.STRING, Literal: "id"}, "string 'id'"},
		{"keyword", token.Token{Type: token.SELECT, Literal: "select"}, `"select"`},
		{"no literal", token.Token{Type: token.ARROW}, `"->"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DescribeToken(tt.tok))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "MissingBindingMarker", KindMissingBindingMarker.String())
	assert.Equal(t, "InvalidListElement", KindInvalidListElement.String())
	assert.Equal(t, "Unknown", ErrorKind(99).String())
}
