package core

// WindowSpec is the body of OVER (...) or of a WINDOW definition. Name
// refers to a named window, either alone (OVER w) or as a base to extend.
type WindowSpec struct {
	Name        string
	PartitionBy []Expr
	OrderBy     []OrderByItem
	Frame       *FrameSpec
}

// FrameType is the unit of a window frame.
type FrameType string

const (
	FrameRows   FrameType = "ROWS"
	FrameRange  FrameType = "RANGE"
	FrameGroups FrameType = "GROUPS"
)

// FrameSpec is ROWS|RANGE|GROUPS followed by one bound, or BETWEEN two.
// End is nil for the single-bound form.
type FrameSpec struct {
	Type  FrameType
	Start *FrameBound
	End   *FrameBound
}

// FrameBoundType identifies a frame edge. The Expr variants carry an
// Offset in the FrameBound.
type FrameBoundType string

const (
	FrameUnboundedPreceding FrameBoundType = "UNBOUNDED PRECEDING"
	FrameUnboundedFollowing FrameBoundType = "UNBOUNDED FOLLOWING"
	FrameCurrentRow         FrameBoundType = "CURRENT ROW"
	FrameExprPreceding      FrameBoundType = "EXPR PRECEDING"
	FrameExprFollowing      FrameBoundType = "EXPR FOLLOWING"
)

// FrameBound is one edge of a window frame.
type FrameBound struct {
	Type   FrameBoundType
	Offset Expr
}
