// Package canvas provides a fixed-size character grid with scoped
// sub-views, declarative placement, and a chainable draw pipeline.
//
// Core abstractions:
//   - Canvas: mutable rune+color grid; windows are offset-translated
//     views sharing the backing store, error catchers wrap a canvas with
//     a one-shot recovery callback
//   - Just: placement rule resolving an object's position inside a
//     container (centered, corners, row-relative, composed offsets)
//   - Result: outcome of a draw call carrying the exact region touched,
//     so it can be recolored, refilled, grown, or recursed into
//
// Design principles:
//   - First-error-wins chaining: once a chain fails, every later call is
//     a pass-through returning the same error, no further mutation
//   - Single-writer: a window borrows its backing canvas; callers must
//     not interleave mutation through two views of the same buffer
//   - Painter-agnostic: the core never emits escape sequences, it hands
//     finished cells to a sink (see the terminal package)
//
// Usage pattern:
//
//	c := canvas.MustNew(canvas.Vec2{X: 9, Y: 7})
//	c.Grid(canvas.Centered, canvas.Vec2{X: 2, Y: 1}, canvas.Vec2{X: 2, Y: 2}, canvas.Light).
//		DrawInside(func(win *canvas.Canvas, cell canvas.Vec2) error {
//			return win.Text(canvas.Centered, fmt.Sprintf("%d%d", cell.X, cell.Y)).Err()
//		}).
//		Discard()
package canvas
