package dialect

import (
	"maps"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlcols/pkg/core"
	"github.com/leapstack-labs/sqlcols/pkg/spi"
	"github.com/leapstack-labs/sqlcols/pkg/token"
)

// Builder assembles a Dialect. Methods return the builder for chaining.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig
}

func newDialect(name string) *Dialect {
	return &Dialect{
		Name: name,
		Identifiers: core.IdentifierConfig{
			Quote:         `"`,
			QuoteEnd:      `"`,
			Escape:        `""`,
			Normalization: core.NormLowercase,
		},
		reservedWords:  map[string]struct{}{},
		clauseDefs:     map[token.TokenType]ClauseDef{},
		symbols:        map[string]token.TokenType{},
		dynamicKw:      map[string]token.TokenType{},
		precedence:     map[token.TokenType]int{},
		infixHandlers:  map[token.TokenType]spi.InfixHandler{},
		prefixHandlers: map[token.TokenType]spi.PrefixHandler{},
		callPrefixes:   map[token.TokenType]struct{}{},
		joinTypes:      map[token.TokenType]JoinTypeDef{},
		starModifiers:  map[token.TokenType]spi.StarModifierHandler{},
	}
}

// NewDialect starts an empty dialect. Build wires nothing beyond what the
// builder calls added.
func NewDialect(name string) *Builder {
	return &Builder{dialect: newDialect(name)}
}

// New starts a dialect from cfg. Build wires the grammar of every feature
// enabled in cfg.Capabilities on top of what the builder calls added.
func New(cfg *core.DialectConfig) *Builder {
	d := newDialect(cfg.Name)
	d.Identifiers = cfg.Identifiers
	d.Placeholder = cfg.Placeholder
	return &Builder{dialect: d, config: cfg}
}

// Extends copies base's grammar; later calls add to or override it.
func (b *Builder) Extends(base *Dialect) *Builder {
	d := b.dialect
	d.clauseSequence = slices.Clone(base.clauseSequence)
	maps.Copy(d.clauseDefs, base.clauseDefs)
	maps.Copy(d.symbols, base.symbols)
	maps.Copy(d.dynamicKw, base.dynamicKw)
	maps.Copy(d.precedence, base.precedence)
	maps.Copy(d.infixHandlers, base.infixHandlers)
	maps.Copy(d.prefixHandlers, base.prefixHandlers)
	maps.Copy(d.callPrefixes, base.callPrefixes)
	maps.Copy(d.joinTypes, base.joinTypes)
	maps.Copy(d.starModifiers, base.starModifiers)
	maps.Copy(d.reservedWords, base.reservedWords)
	return b
}

// Identifiers sets identifier quoting and case folding.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{Quote: quote, QuoteEnd: quoteEnd, Escape: escape, Normalization: norm}
	return b
}

// PlaceholderStyle sets the bind parameter style.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// WithReservedWords marks extra words that must be quoted as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[b.dialect.NormalizeName(w)] = struct{}{}
	}
	return b
}

// AddOperator teaches the lexer a new operator spelling.
func (b *Builder) AddOperator(symbol string, t token.TokenType) *Builder {
	b.dialect.symbols[symbol] = t
	return b
}

// AddKeyword teaches the lexer a dialect keyword.
func (b *Builder) AddKeyword(name string, t token.TokenType) *Builder {
	b.dialect.dynamicKw[strings.ToLower(name)] = t
	return b
}

// Clauses replaces the clause sequence with defs, in order.
func (b *Builder) Clauses(defs ...ClauseDef) *Builder {
	b.dialect.clauseSequence = b.dialect.clauseSequence[:0:0]
	for _, def := range defs {
		b.setClause(def)
		b.dialect.clauseSequence = append(b.dialect.clauseSequence, def.Token)
	}
	return b
}

// RemoveClause drops a clause from the sequence and its definition.
func (b *Builder) RemoveClause(t token.TokenType) *Builder {
	b.dialect.clauseSequence = slices.DeleteFunc(slices.Clone(b.dialect.clauseSequence), func(x token.TokenType) bool { return x == t })
	delete(b.dialect.clauseDefs, t)
	return b
}

// AddInfix makes t a binary operator with the given binding power.
func (b *Builder) AddInfix(t token.TokenType, precedence int) *Builder {
	b.dialect.precedence[t] = precedence
	return b
}

// AddInfixWithHandler makes t an infix operator parsed by handler.
func (b *Builder) AddInfixWithHandler(t token.TokenType, precedence int, handler spi.InfixHandler) *Builder {
	b.dialect.precedence[t] = precedence
	b.dialect.infixHandlers[t] = handler
	return b
}

// AddPrefix parses expressions starting with t through handler.
func (b *Builder) AddPrefix(t token.TokenType, handler spi.PrefixHandler) *Builder {
	b.dialect.prefixHandlers[t] = handler
	delete(b.dialect.callPrefixes, t)
	return b
}

// AddCallPrefix is AddPrefix for words that take the handler path only when
// followed by "("; elsewhere they stay identifiers.
func (b *Builder) AddCallPrefix(t token.TokenType, handler spi.PrefixHandler) *Builder {
	b.dialect.prefixHandlers[t] = handler
	b.dialect.callPrefixes[t] = struct{}{}
	return b
}

// AddStarModifier parses a wildcard modifier introduced by t.
func (b *Builder) AddStarModifier(t token.TokenType, handler spi.StarModifierHandler) *Builder {
	b.dialect.starModifiers[t] = handler
	return b
}

// Operators registers operator sets in order; later entries win.
func (b *Builder) Operators(sets ...[]OperatorDef) *Builder {
	for _, op := range slices.Concat(sets...) {
		b.dialect.precedence[op.Token] = op.Precedence
		if op.Handler != nil {
			b.dialect.infixHandlers[op.Token] = op.Handler
		}
		if op.Symbol != "" {
			b.dialect.symbols[op.Symbol] = op.Token
		}
	}
	return b
}

// JoinTypes registers join keyword sets.
func (b *Builder) JoinTypes(sets ...[]JoinTypeDef) *Builder {
	for _, jt := range slices.Concat(sets...) {
		b.dialect.joinTypes[jt.Token] = jt
	}
	return b
}

// feature wires one capability into the dialect being built.
type feature struct {
	enabled func(core.Capabilities) bool
	wire    func(*Builder)
}

var features = []feature{
	{
		enabled: func(c core.Capabilities) bool { return c.GroupByAll },
		wire:    func(b *Builder) { b.putClause(groupByClause(true)) },
	},
	{
		enabled: func(c core.Capabilities) bool { return !c.GroupByAll },
		wire:    func(b *Builder) { b.addClauseIfMissing(groupByClause(false)) },
	},
	{
		enabled: func(c core.Capabilities) bool { return c.OrderByAll },
		wire:    func(b *Builder) { b.putClause(orderByClause(true)) },
	},
	{
		enabled: func(c core.Capabilities) bool { return !c.OrderByAll },
		wire:    func(b *Builder) { b.addClauseIfMissing(orderByClause(false)) },
	},
	{
		enabled: func(c core.Capabilities) bool { return c.Qualify },
		wire: func(b *Builder) {
			b.AddKeyword("QUALIFY", token.QUALIFY)
			b.insertClauseAfter(token.HAVING, qualifyClause)
		},
	},
	{
		enabled: func(c core.Capabilities) bool { return c.Ilike },
		wire: func(b *Builder) {
			b.AddKeyword("ILIKE", token.ILIKE).AddInfix(token.ILIKE, spi.PrecedenceComparison)
		},
	},
	{
		enabled: func(c core.Capabilities) bool { return c.CastOperator },
		wire: func(b *Builder) {
			b.AddOperator("::", token.DCOLON).AddInfix(token.DCOLON, spi.PrecedencePostfix)
		},
	},
	{
		enabled: func(c core.Capabilities) bool { return c.RegexMatch },
		wire:    func(b *Builder) { b.AddInfix(token.TILDE, spi.PrecedenceComparison) },
	},
	{
		enabled: func(c core.Capabilities) bool { return c.IntegerDivide },
		wire: func(b *Builder) {
			b.AddOperator("//", token.DSLASH).AddInfix(token.DSLASH, spi.PrecedenceMultiply)
		},
	},
	{
		enabled: func(c core.Capabilities) bool { return c.SemiAntiJoins },
		wire: func(b *Builder) {
			b.AddKeyword("SEMI", token.SEMI).AddKeyword("ANTI", token.ANTI).JoinTypes(SemiAntiJoinTypes)
		},
	},
	{
		enabled: func(c core.Capabilities) bool { return c.StarModifiers },
		wire: func(b *Builder) {
			b.AddKeyword("EXCLUDE", token.EXCLUDE).
				AddKeyword("REPLACE", token.REPLACE).
				AddKeyword("RENAME", token.RENAME).
				AddStarModifier(token.EXCLUDE, ParseExcludeModifier).
				AddStarModifier(token.REPLACE, ParseReplaceModifier).
				AddStarModifier(token.RENAME, ParseRenameModifier)
		},
	},
	{
		enabled: func(c core.Capabilities) bool { return c.Columns },
		wire: func(b *Builder) {
			b.AddKeyword("COLUMNS", token.COLUMNS).
				AddKeyword("EXCLUDE", token.EXCLUDE).
				AddKeyword("REPLACE", token.REPLACE).
				AddCallPrefix(token.COLUMNS, ParseColumns)
		},
	},
}

// Build finishes the dialect. Builders made with New also get the grammar
// of every enabled capability.
func (b *Builder) Build() *Dialect {
	if b.config == nil {
		return b.dialect
	}
	caps := b.config.Capabilities
	b.dialect.capabilities = caps
	for _, f := range features {
		if f.enabled(caps) {
			f.wire(b)
		}
	}
	return b.dialect
}

func (b *Builder) setClause(def ClauseDef) {
	b.dialect.clauseDefs[def.Token] = def
	recordClause(def.Token)
}

// putClause sets def and appends its token to the sequence if absent.
func (b *Builder) putClause(def ClauseDef) {
	b.setClause(def)
	if !slices.Contains(b.dialect.clauseSequence, def.Token) {
		b.dialect.clauseSequence = append(b.dialect.clauseSequence, def.Token)
	}
}

func (b *Builder) addClauseIfMissing(def ClauseDef) {
	if !b.dialect.IsClauseToken(def.Token) {
		b.putClause(def)
	}
}

// insertClauseAfter places def right after the clause after, or last when
// after is not in the sequence. Existing definitions are kept.
func (b *Builder) insertClauseAfter(after token.TokenType, def ClauseDef) {
	if b.dialect.IsClauseToken(def.Token) {
		return
	}
	b.setClause(def)
	seq := b.dialect.clauseSequence
	i := slices.Index(seq, after)
	if i < 0 {
		b.dialect.clauseSequence = append(seq, def.Token)
		return
	}
	b.dialect.clauseSequence = slices.Insert(slices.Clone(seq), i+1, def.Token)
}
