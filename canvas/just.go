package canvas

import "fmt"

type justKind uint8

const (
	justAt justKind = iota
	justAtUnchecked
	justCentered

	justLeftOfRow
	justRightOfRow
	justCenteredOnRow

	justOffTopLeft
	justOffTopRight
	justOffBottomLeft
	justOffBottomRight

	justTopLeft
	justTopRight
	justBottomLeft
	justBottomRight

	justCenterTop
	justCenterBottom
	justCenterLeft
	justCenterRight

	justOffsetFrom
	justOffsetFromUnchecked
)

// Just is a placement rule resolving an object's position within a
// container. Most rules keep a margin of one cell from the edges; the
// OffCornerBy rules take an explicit margin, where 0 touches the edge.
type Just struct {
	kind  justKind
	pos   Vec2
	n     int
	base  *Just
	delta Vec2
}

// Positions with a fixed rule and no parameters.
var (
	Centered     = Just{kind: justCentered}
	TopLeft      = Just{kind: justTopLeft}
	TopRight     = Just{kind: justTopRight}
	BottomLeft   = Just{kind: justBottomLeft}
	BottomRight  = Just{kind: justBottomRight}
	CenterTop    = Just{kind: justCenterTop}
	CenterBottom = Just{kind: justCenterBottom}
	CenterLeft   = Just{kind: justCenterLeft}
	CenterRight  = Just{kind: justCenterRight}
)

// At places the object's top-left corner at pos.
func At(pos Vec2) Just {
	return Just{kind: justAt, pos: pos}
}

// AtUnchecked places the object at pos without the final bounds check,
// permitting draws outside the nominal canvas area.
func AtUnchecked(pos Vec2) Just {
	return Just{kind: justAtUnchecked, pos: pos}
}

// LeftOfRow places the object at the left margin of row y.
func LeftOfRow(y int) Just {
	return Just{kind: justLeftOfRow, n: y}
}

// RightOfRow places the object at the right margin of row y.
func RightOfRow(y int) Just {
	return Just{kind: justRightOfRow, n: y}
}

// CenteredOnRow centers the object horizontally on row y.
func CenteredOnRow(y int) Just {
	return Just{kind: justCenteredOnRow, n: y}
}

// OffTopLeftBy places the object at the top-left corner inset by margin.
// A margin of 0 touches the edge exactly.
func OffTopLeftBy(margin int) Just {
	return Just{kind: justOffTopLeft, n: margin}
}

// OffTopRightBy places the object at the top-right corner inset by margin.
func OffTopRightBy(margin int) Just {
	return Just{kind: justOffTopRight, n: margin}
}

// OffBottomLeftBy places the object at the bottom-left corner inset by margin.
func OffBottomLeftBy(margin int) Just {
	return Just{kind: justOffBottomLeft, n: margin}
}

// OffBottomRightBy places the object at the bottom-right corner inset by margin.
func OffBottomRightBy(margin int) Just {
	return Just{kind: justOffBottomRight, n: margin}
}

// Offset resolves j and then shifts the result by delta, re-checking
// the final position against the container.
func (j Just) Offset(delta Vec2) Just {
	base := j
	return Just{kind: justOffsetFrom, base: &base, delta: delta}
}

// OffsetUnchecked resolves j and shifts by delta without the final
// bounds check. This can be used to edit characters outside the window,
// such as decorations on a surrounding border.
func (j Just) OffsetUnchecked(delta Vec2) Just {
	base := j
	return Just{kind: justOffsetFromUnchecked, base: &base, delta: delta}
}

// Resolve returns the top-left position for an object of the given size
// placed in a container with this rule.
func (j Just) Resolve(container, object Vec2) (Vec2, error) {
	if object.X > container.X || object.Y > container.Y {
		return Zero, &JustOutOfBoundsError{Container: container, Object: object, Just: j}
	}

	min := Splat(1)
	max := container.Sub(object).SubScalar(1)
	center := container.Sub(object).DivScale(2)

	var pos Vec2
	switch j.kind {
	case justAt:
		pos = j.pos
	case justAtUnchecked:
		return j.pos, nil
	case justCentered:
		pos = center

	case justLeftOfRow:
		pos = min.WithY(j.n)
	case justRightOfRow:
		pos = max.WithY(j.n)
	case justCenteredOnRow:
		pos = center.WithY(j.n)

	// corners with a custom margin; adding 1 to max removes the
	// default margin
	case justOffTopLeft:
		pos = Splat(j.n)
	case justOffTopRight:
		pos = Vec2{X: max.X + 1 - j.n, Y: j.n}
	case justOffBottomLeft:
		pos = Vec2{X: j.n, Y: max.Y + 1 - j.n}
	case justOffBottomRight:
		pos = max.AddScalar(1).Sub(Splat(j.n))

	case justTopLeft:
		pos = min
	case justTopRight:
		pos = Vec2{X: max.X, Y: min.Y}
	case justBottomLeft:
		pos = Vec2{X: min.X, Y: max.Y}
	case justBottomRight:
		pos = max

	case justCenterTop:
		pos = Vec2{X: center.X, Y: min.Y}
	case justCenterBottom:
		pos = Vec2{X: center.X, Y: max.Y}
	case justCenterLeft:
		pos = Vec2{X: min.X, Y: center.Y}
	case justCenterRight:
		pos = Vec2{X: max.X, Y: center.Y}

	case justOffsetFrom, justOffsetFromUnchecked:
		base, err := j.base.Resolve(container, object)
		if err != nil {
			return Zero, err
		}
		pos = base.Add(j.delta)
		if j.kind == justOffsetFromUnchecked {
			return pos, nil
		}
	}

	bottomRight := pos.Add(object)
	if bottomRight.X > container.X || bottomRight.Y > container.Y {
		return Zero, &JustOutOfBoundsError{Container: container, Object: object, Just: j}
	}
	return pos, nil
}

func (j Just) String() string {
	switch j.kind {
	case justAt:
		return fmt.Sprintf("At%s", j.pos)
	case justAtUnchecked:
		return fmt.Sprintf("AtUnchecked%s", j.pos)
	case justCentered:
		return "Centered"
	case justLeftOfRow:
		return fmt.Sprintf("LeftOfRow(%d)", j.n)
	case justRightOfRow:
		return fmt.Sprintf("RightOfRow(%d)", j.n)
	case justCenteredOnRow:
		return fmt.Sprintf("CenteredOnRow(%d)", j.n)
	case justOffTopLeft:
		return fmt.Sprintf("OffTopLeftBy(%d)", j.n)
	case justOffTopRight:
		return fmt.Sprintf("OffTopRightBy(%d)", j.n)
	case justOffBottomLeft:
		return fmt.Sprintf("OffBottomLeftBy(%d)", j.n)
	case justOffBottomRight:
		return fmt.Sprintf("OffBottomRightBy(%d)", j.n)
	case justTopLeft:
		return "TopLeft"
	case justTopRight:
		return "TopRight"
	case justBottomLeft:
		return "BottomLeft"
	case justBottomRight:
		return "BottomRight"
	case justCenterTop:
		return "CenterTop"
	case justCenterBottom:
		return "CenterBottom"
	case justCenterLeft:
		return "CenterLeft"
	case justCenterRight:
		return "CenterRight"
	case justOffsetFrom:
		return fmt.Sprintf("OffsetFrom(%s, %s)", j.base, j.delta)
	case justOffsetFromUnchecked:
		return fmt.Sprintf("OffsetFromUnchecked(%s, %s)", j.base, j.delta)
	}
	return "Unknown"
}
