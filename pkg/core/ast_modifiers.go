package core

// StarModifier narrows or rewrites the columns of a wildcard. It is one of
// *ExcludeModifier, *ReplaceModifier or *RenameModifier.
//
// COLUMNS(* ...) accepts EXCLUDE and REPLACE only. RENAME is limited to
// SELECT-list stars of dialects with star modifiers enabled.
type StarModifier interface {
	starModifier()
}

// ExcludeModifier drops the named columns. Columns holds at least one name,
// whether the source used the bare or the parenthesized form.
type ExcludeModifier struct {
	Columns []string
}

// ReplaceModifier substitutes Expr for the column named Alias, keeping the
// column's position. Items holds at least one entry.
type ReplaceModifier struct {
	Items []ReplaceItem
}

// ReplaceItem is one "expr AS name" entry.
type ReplaceItem struct {
	Expr  Expr
	Alias string
}

// RenameModifier changes output column names without touching values.
type RenameModifier struct {
	Items []RenameItem
}

// RenameItem is one "old AS new" entry.
type RenameItem struct {
	OldName string
	NewName string
}

func (*ExcludeModifier) starModifier() {}
func (*ReplaceModifier) starModifier() {}
func (*RenameModifier) starModifier()  {}
