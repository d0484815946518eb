package canvas

// ShapeKind discriminates the region variants a draw call can produce.
type ShapeKind uint8

const (
	// SingleShape is one cell, produced by Set and Highlight.
	SingleShape ShapeKind = iota
	// RectShape is a filled box, produced by most draw calls.
	RectShape
	// GridShape is an NxM arrangement of equally sized cells with a
	// spacing between them, produced by Grid. A negative spacing means
	// adjacent cells overlap, which is how a bordered grid encodes the
	// shared separator lines.
	GridShape
)

// Shape describes the exact region a draw call touched. It is consumed
// by the Result pipeline to decorate or recurse into the drawn area; it
// is not retained canvas state.
type Shape struct {
	Kind ShapeKind
	Pos  Vec2

	// Size is the extent of a RectShape.
	Size Vec2

	// Grid fields.
	Dims     Vec2
	CellSize Vec2
	Spacing  Vec2
}

func single(pos Vec2) Shape {
	return Shape{Kind: SingleShape, Pos: pos}
}

func rect(pos, size Vec2) Shape {
	return Shape{Kind: RectShape, Pos: pos, Size: size}
}

func grid(pos, dims, cellSize, spacing Vec2) Shape {
	return Shape{Kind: GridShape, Pos: pos, Dims: dims, CellSize: cellSize, Spacing: spacing}
}

// FullSize returns the edge-to-edge extent of a GridShape, or Size for
// a RectShape and (1, 1) for a SingleShape.
func (s Shape) FullSize() Vec2 {
	switch s.Kind {
	case SingleShape:
		return Splat(1)
	case RectShape:
		return s.Size
	default:
		return s.Dims.Mul(s.CellSize.Add(s.Spacing)).Add(s.Spacing)
	}
}

// cellSizeFromFullSize inverts FullSize for a fixed spacing and dims.
func (s Shape) cellSizeFromFullSize(goal Vec2) Vec2 {
	return goal.Sub(s.Spacing).Div(s.Dims).Sub(s.Spacing)
}

// Grow inflates the shape by the given amount on each side. A single
// cell becomes a rect around its position; a grid grows each cell into
// the surrounding spacing, which is how per-cell coloring eats into the
// separator gutters.
func (s Shape) Grow(by Vec2) Shape {
	switch s.Kind {
	case SingleShape:
		return rect(s.Pos.Sub(by), by.Scale(2))
	case RectShape:
		return rect(s.Pos.Sub(by), s.Size.Add(by.Scale(2)))
	default:
		return grid(s.Pos.Add(by), s.Dims, s.CellSize.Add(by.Scale(2)), s.Spacing.Sub(by.Scale(2)))
	}
}

// ExpandTo resizes the shape to an explicit target width and height,
// anchoring the growth per the GrowFrom policy. A target of 0 keeps the
// current extent on that axis. A grid keeps its spacing and dims and
// reaches the closest full size its integer cell size allows.
func (s Shape) ExpandTo(x, y int, from GrowFrom) Shape {
	switch s.Kind {
	case SingleShape:
		current := Splat(1)
		goal := Vec2{X: orCurrent(x, 1), Y: orCurrent(y, 1)}
		return rect(from.grow(s.Pos, current, goal), goal)
	case RectShape:
		goal := Vec2{X: orCurrent(x, s.Size.X), Y: orCurrent(y, s.Size.Y)}
		return rect(from.grow(s.Pos, s.Size, goal), goal)
	default:
		current := s.FullSize()
		goal := Vec2{X: orCurrent(x, current.X), Y: orCurrent(y, current.Y)}
		cellSize := s.cellSizeFromFullSize(goal)
		// recompute: the integer cell size may undershoot the goal
		resized := s
		resized.CellSize = cellSize
		goal = resized.FullSize()
		resized.Pos = from.grow(s.Pos, current, goal)
		return resized
	}
}

func orCurrent(target, current int) int {
	if target <= 0 {
		return current
	}
	return target
}

// GrowFrom anchors ExpandTo growth.
type GrowFrom uint8

const (
	// GrowCenter splits growth evenly, breaking an odd remainder left.
	GrowCenter GrowFrom = iota
	// GrowCenterPreferRight splits growth evenly, breaking right.
	GrowCenterPreferRight
	GrowTopLeft
	GrowTopRight
	GrowBottomLeft
	GrowBottomRight
)

// grow returns the new position of a rectangle at pos resized from
// current to goal.
func (g GrowFrom) grow(pos, current, goal Vec2) Vec2 {
	switch g {
	case GrowCenter:
		return pos.Sub(goal.Sub(current).DivScale(2))
	case GrowCenterPreferRight:
		return pos.Sub(goal.Sub(current).AddScalar(1).DivScale(2))
	case GrowTopLeft:
		return pos
	case GrowTopRight:
		return pos.SubX(goal.X - current.X)
	case GrowBottomLeft:
		return pos.SubY(goal.Y - current.Y)
	default:
		return pos.Sub(goal.Sub(current))
	}
}
