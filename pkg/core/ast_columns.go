package core

// ColumnsExpr is the COLUMNS(...) star expression. It stands for the set of
// in-scope columns chosen by its selector and may appear anywhere an
// expression is accepted, e.g. min(COLUMNS(*)).
type ColumnsExpr struct {
	Selector ColumnsSelector
}

func (*ColumnsExpr) exprNode() {}

// ColumnsSelector chooses which columns a ColumnsExpr denotes.
// It is one of *WildcardSelector, *NameListSelector or *PredicateSelector.
type ColumnsSelector interface {
	columnsSelector()
}

// WildcardSelector is COLUMNS(* modifier*). Modifiers are kept in written
// order; each is an *ExcludeModifier or a *ReplaceModifier.
type WildcardSelector struct {
	Modifiers []StarModifier
}

func (*WildcardSelector) columnsSelector() {}

// NameListSelector is COLUMNS(['a', 'b']). Names holds the string literal
// values in written order, duplicates included. It is never empty.
type NameListSelector struct {
	Names []string
}

func (*NameListSelector) columnsSelector() {}

// PredicateSelector is COLUMNS(COLUMNS(c -> body)). Param is visible only
// inside Body, where it stands for each candidate column name.
type PredicateSelector struct {
	Param string
	Body  Expr
}

func (*PredicateSelector) columnsSelector() {}
