package canvas

import "fmt"

// Vec2 is an immutable pair of integers used as either a position or a
// size. Multiplication is element-wise (Hadamard).
type Vec2 struct {
	X, Y int
}

// Zero is the origin / empty size.
var Zero = Vec2{}

// Splat returns a Vec2 with both components set to n.
func Splat(n int) Vec2 {
	return Vec2{X: n, Y: n}
}

// Add returns v + o component-wise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o component-wise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the Hadamard product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the component-wise quotient of v and o.
// Integer division truncates toward zero.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Scale returns v with both components multiplied by n.
func (v Vec2) Scale(n int) Vec2 {
	return Vec2{X: v.X * n, Y: v.Y * n}
}

// DivScale returns v with both components divided by n, truncating.
func (v Vec2) DivScale(n int) Vec2 {
	return Vec2{X: v.X / n, Y: v.Y / n}
}

// AddScalar returns v with n added to both components.
func (v Vec2) AddScalar(n int) Vec2 {
	return Vec2{X: v.X + n, Y: v.Y + n}
}

// SubScalar returns v with n subtracted from both components.
func (v Vec2) SubScalar(n int) Vec2 {
	return Vec2{X: v.X - n, Y: v.Y - n}
}

// WithX returns v with the x component replaced.
func (v Vec2) WithX(x int) Vec2 {
	return Vec2{X: x, Y: v.Y}
}

// WithY returns v with the y component replaced.
func (v Vec2) WithY(y int) Vec2 {
	return Vec2{X: v.X, Y: y}
}

// AddX returns v with off added to the x component.
func (v Vec2) AddX(off int) Vec2 {
	return Vec2{X: v.X + off, Y: v.Y}
}

// AddY returns v with off added to the y component.
func (v Vec2) AddY(off int) Vec2 {
	return Vec2{X: v.X, Y: v.Y + off}
}

// SubX returns v with off subtracted from the x component.
func (v Vec2) SubX(off int) Vec2 {
	return Vec2{X: v.X - off, Y: v.Y}
}

// SubY returns v with off subtracted from the y component.
func (v Vec2) SubY(off int) Vec2 {
	return Vec2{X: v.X, Y: v.Y - off}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// CheckBounds reports whether an object at pos extending for size fits
// in a container of the given dimensions. The returned error names the
// object after the calling operation for diagnostics.
func CheckBounds(pos, size, container Vec2, name string) error {
	outer := pos.Add(size)
	if outer.X > container.X || outer.Y > container.Y {
		return &ItemTooBigError{Pos: pos, Size: size, Container: container, Name: name}
	}
	return nil
}
