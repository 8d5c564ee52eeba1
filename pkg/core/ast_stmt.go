package core

// SelectStmt is a full query: an optional WITH prefix and a body that may
// chain set operations.
type SelectStmt struct {
	With *WithClause
	Body *SelectBody
}

func (*SelectStmt) stmtNode() {}

// WithClause holds the common table expressions of a query.
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

// CTE is one named subquery of a WITH clause.
type CTE struct {
	Name   string
	Select *SelectStmt
}

// SetOpType is the keyword of a set operation; SetOpNone means the body
// has no right-hand side.
type SetOpType string

const (
	SetOpNone      SetOpType = ""
	SetOpUnion     SetOpType = "UNION"
	SetOpIntersect SetOpType = "INTERSECT"
	SetOpExcept    SetOpType = "EXCEPT"
)

// SelectBody is Left, optionally combined with Right. Chains nest to the
// right: a UNION b UNION c is Left=a, Right={Left=b, Right={Left=c}}.
type SelectBody struct {
	Left   *SelectCore
	Op     SetOpType
	All    bool
	ByName bool // UNION BY NAME
	Right  *SelectBody
}

// SelectCore is a single SELECT ... FROM ... block.
type SelectCore struct {
	Distinct bool
	Columns  []SelectItem
	From     *FromClause

	Where      Expr
	GroupBy    []Expr
	GroupByAll bool
	Having     Expr
	Windows    []WindowDef
	Qualify    Expr

	OrderBy        []OrderByItem
	OrderByAll     bool
	OrderByAllDesc bool
	Limit          Expr
	Offset         Expr

	// Extensions collects clause results that have no dedicated field.
	Extensions []Node
}

// WindowDef is an entry of the WINDOW clause: name AS (spec).
type WindowDef struct {
	Name string
	Spec *WindowSpec
}

// SelectItem is one entry of the select list. Exactly one of Star,
// TableStar and Expr is set; Modifiers apply only to the star forms.
type SelectItem struct {
	Star      bool
	TableStar string
	Expr      Expr
	Alias     string
	Modifiers []StarModifier
}

// OrderByItem is one sort key. A nil NullsFirst keeps the engine default.
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool
}
