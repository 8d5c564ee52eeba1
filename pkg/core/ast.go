package core

// Node is the value produced by parser extension points (spi.ClauseHandler etc.).
// It is one of Expr, []Expr, []OrderByItem, TableRef or a dialect marker value.
type Node = any

// Expr is a marker interface for expression nodes.
//
// AST nodes carry no source positions: two trees are equal exactly when
// they describe the same SQL, which makes reflect.DeepEqual the round-trip
// equality relation.
type Expr interface {
	exprNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	stmtNode()
}

// TableRef is a marker interface for FROM clause sources.
type TableRef interface {
	tableRefNode()
}
