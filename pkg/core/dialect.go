package core

// DialectConfig is the declarative half of a dialect: names, quoting rules and
// feature switches. dialect.Builder turns it into a runnable *dialect.Dialect
// by attaching tokens and parse handlers.
type DialectConfig struct {
	Name         string
	Identifiers  IdentifierConfig
	Placeholder  PlaceholderStyle
	Capabilities Capabilities
}

// Capabilities is the set of optional grammar features a dialect enables.
type Capabilities struct {
	Columns        bool // COLUMNS(...) star expressions
	StarModifiers  bool // SELECT * EXCLUDE / REPLACE / RENAME
	Qualify        bool // QUALIFY clause
	Ilike          bool // ILIKE operator
	CastOperator   bool // expr::type
	SemiAntiJoins  bool // SEMI JOIN, ANTI JOIN
	GroupByAll     bool // GROUP BY ALL
	OrderByAll     bool // ORDER BY ALL
	RegexMatch     bool // ~ operator
	IntegerDivide  bool // // operator
	NestedLiterals bool // [list], {struct}, x[i], x -> expr
}

// NormalizationStrategy says what happens to an unquoted identifier's case.
type NormalizationStrategy int

const (
	NormLowercase       NormalizationStrategy = iota // folded to lower case
	NormUppercase                                    // folded to upper case (snowflake)
	NormCaseSensitive                                // kept as written
	NormCaseInsensitive                              // kept, compared case-folded (duckdb)
)

var normalizationNames = [...]string{
	NormLowercase:       "lowercase",
	NormUppercase:       "uppercase",
	NormCaseSensitive:   "case sensitive",
	NormCaseInsensitive: "case insensitive",
}

func (n NormalizationStrategy) String() string {
	if n < 0 || int(n) >= len(normalizationNames) {
		return "unknown"
	}
	return normalizationNames[n]
}

// PlaceholderStyle is the bind parameter syntax a dialect expects.
type PlaceholderStyle int

const (
	PlaceholderQuestion PlaceholderStyle = iota // ?
	PlaceholderDollar                           // $1, $2, ...
)

// String renders the first placeholder in this style.
func (p PlaceholderStyle) String() string {
	if p == PlaceholderDollar {
		return "$1"
	}
	return "?"
}

// IdentifierConfig holds quoting and case rules for identifiers.
// QuoteEnd differs from Quote only for bracket quoting.
type IdentifierConfig struct {
	Quote         string
	QuoteEnd      string
	Escape        string // doubled quote inside a quoted name
	Normalization NormalizationStrategy
}
