package core

import "github.com/leapstack-labs/sqlcols/pkg/token"

// FromClause is the row source of a SELECT: one table reference followed
// by any number of joins, applied left to right.
type FromClause struct {
	Source TableRef
	Joins  []*Join
}

// TableName is a possibly qualified table reference: [catalog.][schema.]name.
type TableName struct {
	Catalog string
	Schema  string
	Name    string
	Alias   string
}

// DerivedTable is a parenthesized subquery used as a row source.
type DerivedTable struct {
	Select *SelectStmt
	Alias  string
}

// LateralTable is a subquery that may reference earlier FROM items.
type LateralTable struct {
	Select *SelectStmt
	Alias  string
}

func (*TableName) tableRefNode()    {}
func (*DerivedTable) tableRefNode() {}
func (*LateralTable) tableRefNode() {}

// JoinType is the keyword that introduces a join, e.g. "LEFT" or "SEMI".
// JoinComma marks the implicit cross join written as a comma.
type JoinType string

// Join types shared by the built-in dialects.
const (
	JoinInner = "INNER"
	JoinLeft  = "LEFT"
	JoinRight = "RIGHT"
	JoinFull  = "FULL"
	JoinCross = "CROSS"
	JoinSemi  = "SEMI"
	JoinAnti  = "ANTI"

	JoinComma JoinType = ","
)

// Join attaches Right to the rows produced so far. At most one of
// Condition and Using is set.
type Join struct {
	Type      JoinType
	Natural   bool
	Right     TableRef
	Condition Expr
	Using     []string
}

// JoinTypeDef tells the parser how a dialect spells one join type.
// A zero OptionalToken means no optional keyword (such as OUTER) follows.
type JoinTypeDef struct {
	Token         token.TokenType
	Type          string
	OptionalToken token.TokenType
	RequiresOn    bool
	AllowsUsing   bool
}
