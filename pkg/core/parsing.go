package core

// ClauseSlot names the SelectCore field a clause handler's result lands in.
// Dialect clause definitions pick a slot instead of touching SelectCore.
type ClauseSlot int

const (
	SlotWhere ClauseSlot = iota
	SlotGroupBy
	SlotHaving
	SlotWindow
	SlotOrderBy
	SlotLimit
	SlotOffset
	SlotQualify
	SlotExtensions // SelectCore.Extensions
)

var slotNames = [...]string{
	SlotWhere:      "WHERE",
	SlotGroupBy:    "GROUP BY",
	SlotHaving:     "HAVING",
	SlotWindow:     "WINDOW",
	SlotOrderBy:    "ORDER BY",
	SlotLimit:      "LIMIT",
	SlotOffset:     "OFFSET",
	SlotQualify:    "QUALIFY",
	SlotExtensions: "EXTENSIONS",
}

func (s ClauseSlot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return "UNKNOWN"
	}
	return slotNames[s]
}

// Binding powers for the Pratt expression parser, loosest first.
const (
	PrecedenceNone = iota
	PrecedenceOr
	PrecedenceAnd
	PrecedenceNot
	PrecedenceComparison // = <> < > <= >= LIKE ILIKE IN BETWEEN IS ~
	PrecedenceAddition   // + - ||
	PrecedenceMultiply   // * / % //
	PrecedenceUnary      // prefix - + NOT
	PrecedencePostfix    // :: [] ()
)

// GroupByAllMarker is the GROUP BY handler result for GROUP BY ALL.
type GroupByAllMarker struct{}

// OrderByAllMarker is the ORDER BY handler result for ORDER BY ALL [DESC].
type OrderByAllMarker struct {
	Desc bool
}
