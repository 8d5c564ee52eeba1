// Package dialect describes the SQL variants the parser and printer accept.
//
// A Dialect is immutable once built. It carries the lexer vocabulary, the
// order of SELECT clauses after FROM, binary operator binding powers and the
// prefix, infix and star-modifier handlers of optional grammar. Concrete
// dialects live in pkg/dialects and register themselves by name.
package dialect

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// JoinTypeDef is re-exported so dialect packages need not import core.
type JoinTypeDef = core.JoinTypeDef

// ClauseDef ties a clause keyword to its handler and the SelectCore slot
// that receives the result. Keywords, when set, is what the printer writes
// instead of the token name; Inline keeps the value on the keyword's line.
type ClauseDef struct {
	Token    token.TokenType
	Handler  spi.ClauseHandler
	Slot     spi.ClauseSlot
	Keywords []string
	Inline   bool
}

// OperatorDef is a binary operator. Symbol, when set, is taught to the
// lexer; Handler replaces the default BinaryExpr construction.
type OperatorDef struct {
	Token      token.TokenType
	Symbol     string
	Precedence int
	Handler    spi.InfixHandler
}

// Dialect is a built SQL dialect. Use NewDialect or New to create one.
type Dialect struct {
	Name         string
	Identifiers  core.IdentifierConfig
	Placeholder  core.PlaceholderStyle
	capabilities core.Capabilities

	reservedWords map[string]struct{}

	clauseSequence []token.TokenType
	clauseDefs     map[token.TokenType]ClauseDef
	symbols        map[string]token.TokenType
	dynamicKw      map[string]token.TokenType // lower-case word -> token
	precedence     map[token.TokenType]int
	infixHandlers  map[token.TokenType]spi.InfixHandler
	prefixHandlers map[token.TokenType]spi.PrefixHandler
	callPrefixes   map[token.TokenType]struct{}
	joinTypes      map[token.TokenType]JoinTypeDef
	starModifiers  map[token.TokenType]spi.StarModifierHandler
}

// Capabilities returns the optional grammar the dialect was built with.
func (d *Dialect) Capabilities() core.Capabilities { return d.capabilities }

// SupportsColumns reports whether COLUMNS(...) is parsed as a star expression.
func (d *Dialect) SupportsColumns() bool { return d.capabilities.Columns }

// NormalizeName folds an unquoted identifier the way the dialect compares names.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormCaseSensitive:
		return name
	}
	return strings.ToLower(name)
}

// IsReservedWord reports whether word must be quoted to be read back as an
// identifier: builtin keywords, keywords this dialect registered, and the
// dialect's extra reserved words.
func (d *Dialect) IsReservedWord(word string) bool {
	lower := strings.ToLower(word)
	if token.LookupIdent(lower) != token.IDENT {
		return true
	}
	if _, kw := d.dynamicKw[lower]; kw {
		return true
	}
	_, reserved := d.reservedWords[d.NormalizeName(word)]
	return reserved
}

// QuoteIdentifier always quotes name, escaping embedded closing quotes.
func (d *Dialect) QuoteIdentifier(name string) string {
	id := d.Identifiers
	return id.Quote + strings.ReplaceAll(name, id.QuoteEnd, id.Escape) + id.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes name unless it lexes back as the same bare identifier.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if token.IsWord(name) && !d.IsReservedWord(name) {
		return name
	}
	return d.QuoteIdentifier(name)
}

// Keywords lists the dialect-registered keywords, upper-cased and sorted.
func (d *Dialect) Keywords() []string {
	kws := make([]string, 0, len(d.dynamicKw))
	for kw := range d.dynamicKw {
		kws = append(kws, strings.ToUpper(kw))
	}
	slices.Sort(kws)
	return kws
}

// ClauseSequence is the order in which clauses after FROM are tried.
func (d *Dialect) ClauseSequence() []token.TokenType { return d.clauseSequence }

// ClauseDef returns the definition registered for a clause keyword.
func (d *Dialect) ClauseDef(t token.TokenType) (ClauseDef, bool) {
	def, ok := d.clauseDefs[t]
	return def, ok
}

// IsClauseToken reports whether t starts a clause in this dialect.
func (d *Dialect) IsClauseToken(t token.TokenType) bool {
	_, ok := d.clauseDefs[t]
	return ok
}

// Symbols maps extra operator spellings to their tokens, for the lexer.
func (d *Dialect) Symbols() map[string]token.TokenType { return d.symbols }

// LookupKeyword resolves a dialect keyword. Unknown words yield IDENT, false.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	t, ok := d.dynamicKw[strings.ToLower(name)]
	if !ok {
		return token.IDENT, false
	}
	return t, true
}

// Precedence is the binding power of t as a binary operator, or
// spi.PrecedenceNone when t is not one.
func (d *Dialect) Precedence(t token.TokenType) int {
	return d.precedence[t]
}

// InfixHandler returns the custom handler for t, if any.
func (d *Dialect) InfixHandler(t token.TokenType) spi.InfixHandler { return d.infixHandlers[t] }

// PrefixHandler returns the prefix handler for t. call reports that the
// handler applies only when t is directly followed by "(".
func (d *Dialect) PrefixHandler(t token.TokenType) (h spi.PrefixHandler, call bool) {
	h = d.prefixHandlers[t]
	if h == nil {
		return nil, false
	}
	_, call = d.callPrefixes[t]
	return h, call
}

// JoinTypeDef returns how t introduces a join, if it does.
func (d *Dialect) JoinTypeDef(t token.TokenType) (JoinTypeDef, bool) {
	def, ok := d.joinTypes[t]
	return def, ok
}

// IsJoinTypeToken reports whether t introduces a join.
func (d *Dialect) IsJoinTypeToken(t token.TokenType) bool {
	_, ok := d.joinTypes[t]
	return ok
}

// StarModifierHandler returns the parser of the modifier introduced by t.
func (d *Dialect) StarModifierHandler(t token.TokenType) spi.StarModifierHandler {
	return d.starModifiers[t]
}

// IsSoftKeyword reports whether t is a dialect keyword that still reads as
// an identifier or function name where the grammar allows, like REPLACE in
// replace(s, 'a', 'b').
func (d *Dialect) IsSoftKeyword(t token.TokenType) bool {
	return token.IsDynamic(t) &&
		!d.IsClauseToken(t) &&
		!d.IsJoinTypeToken(t) &&
		d.Precedence(t) == spi.PrecedenceNone
}
