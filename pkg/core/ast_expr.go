package core

import "github.com/leapstack-labs/sqlcols/pkg/token"

// ColumnRef names a column, optionally qualified by a table or alias.
type ColumnRef struct {
	Table  string
	Column string
}

// LiteralType classifies a Literal.
type LiteralType int

const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
	LiteralNull
)

var literalTypeNames = [...]string{
	LiteralNumber: "number",
	LiteralString: "string",
	LiteralBool:   "bool",
	LiteralNull:   "null",
}

func (t LiteralType) String() string {
	if t < 0 || int(t) >= len(literalTypeNames) {
		return "unknown"
	}
	return literalTypeNames[t]
}

// Literal is a constant. Value is the source text for numbers and booleans
// and the unescaped contents for strings.
type Literal struct {
	Type  LiteralType
	Value string
}

// BinaryExpr applies an infix operator. Op is the operator token, such as
// token.PLUS, token.AND or token.TILDE.
type BinaryExpr struct {
	Left  Expr
	Op    token.TokenType
	Right Expr
}

// UnaryExpr applies a prefix operator: NOT, - or +.
type UnaryExpr struct {
	Op   token.TokenType
	Expr Expr
}

// FuncCall is name(args). Star is set for count(*); Filter and Window
// hold the optional FILTER (WHERE ...) and OVER (...) parts.
type FuncCall struct {
	Name     string
	Distinct bool
	Args     []Expr
	Star     bool
	Window   *WindowSpec
	Filter   Expr
}

// CaseExpr covers both the simple (CASE x WHEN ...) and the searched
// (CASE WHEN cond ...) forms; Operand is nil for the latter.
type CaseExpr struct {
	Operand Expr
	Whens   []WhenClause
	Else    Expr
}

// WhenClause is one WHEN ... THEN ... arm.
type WhenClause struct {
	Condition Expr
	Result    Expr
}

// CastExpr is CAST(expr AS type), or expr::type when Postfix is set.
type CastExpr struct {
	Expr     Expr
	TypeName string
	Postfix  bool
}

// InExpr tests membership in a value list or, when Query is set, a subquery.
type InExpr struct {
	Expr   Expr
	Not    bool
	Values []Expr
	Query  *SelectStmt
}

// BetweenExpr is expr [NOT] BETWEEN Low AND High.
type BetweenExpr struct {
	Expr Expr
	Not  bool
	Low  Expr
	High Expr
}

// IsNullExpr is expr IS [NOT] NULL.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

// IsBoolExpr is expr IS [NOT] TRUE, or IS [NOT] FALSE when Value is false.
type IsBoolExpr struct {
	Expr  Expr
	Not   bool
	Value bool
}

// LikeExpr is a pattern match; Op is token.LIKE or token.ILIKE.
// Escape is the optional ESCAPE character expression.
type LikeExpr struct {
	Expr    Expr
	Not     bool
	Pattern Expr
	Escape  Expr
	Op      token.TokenType
}

// ParenExpr keeps explicit parentheses so printing preserves grouping.
type ParenExpr struct {
	Expr Expr
}

// StarExpr is * or t.* in expression position, e.g. count(t.*).
type StarExpr struct {
	Table string
}

// SubqueryExpr is a parenthesized SELECT used as a value.
type SubqueryExpr struct {
	Select *SelectStmt
}

// ExistsExpr is [NOT] EXISTS (SELECT ...).
type ExistsExpr struct {
	Not    bool
	Select *SelectStmt
}

// LambdaExpr is p -> body or (p, q) -> body, as taken by list functions.
type LambdaExpr struct {
	Params []string
	Body   Expr
}

// StructLiteral is {'key': value, ...}.
type StructLiteral struct {
	Fields []StructField
}

// StructField is one key of a StructLiteral.
type StructField struct {
	Key   string
	Value Expr
}

// ListLiteral is [a, b, ...].
type ListLiteral struct {
	Elements []Expr
}

// IndexExpr is x[i], or the slice x[Start:Index] when IsSlice is set.
// A nil Start slices from the first element.
type IndexExpr struct {
	Expr    Expr
	Index   Expr
	IsSlice bool
	Start   Expr
}

func (*ColumnRef) exprNode()     {}
func (*Literal) exprNode()       {}
func (*BinaryExpr) exprNode()    {}
func (*UnaryExpr) exprNode()     {}
func (*FuncCall) exprNode()      {}
func (*CaseExpr) exprNode()      {}
func (*CastExpr) exprNode()      {}
func (*InExpr) exprNode()        {}
func (*BetweenExpr) exprNode()   {}
func (*IsNullExpr) exprNode()    {}
func (*IsBoolExpr) exprNode()    {}
func (*LikeExpr) exprNode()      {}
func (*ParenExpr) exprNode()     {}
func (*StarExpr) exprNode()      {}
func (*SubqueryExpr) exprNode()  {}
func (*ExistsExpr) exprNode()    {}
func (*LambdaExpr) exprNode()    {}
func (*StructLiteral) exprNode() {}
func (*ListLiteral) exprNode()   {}
func (*IndexExpr) exprNode()     {}
