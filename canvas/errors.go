package canvas

import "fmt"

// OutOfBoundsError reports an access outside the backing grid. The
// coordinates are in the frame of the canvas that owns the store, so a
// failed write through a window reports the translated position.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tried to access out of bounds position (%d, %d)", e.X, e.Y)
}

// TooLargeError reports a value that exceeds what the backing store can
// represent, such as a canvas area past the allocation cap.
type TooLargeError struct {
	Field string
	Value int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s %d is too large", e.Field, e.Value)
}

// NegativeValueError reports a negative value where an unsigned quantity
// is required, such as a window or canvas dimension.
type NegativeValueError struct {
	Value int
	Name  string
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("%s %d is negative, expected positive", e.Name, e.Value)
}

// JustOutOfBoundsError reports a placement rule that cannot fit the
// object into the container.
type JustOutOfBoundsError struct {
	Container Vec2
	Object    Vec2
	Just      Just
}

func (e *JustOutOfBoundsError) Error() string {
	return fmt.Sprintf("justification %s could not fit object of size %s in canvas of size %s",
		e.Just, e.Object, e.Container)
}

// TextOverflowError reports a text run whose current character would
// land outside the canvas. Ending is the position of the first
// offending character, not the end of the string.
type TextOverflowError struct {
	Starting  Vec2
	Text      string
	Ending    Vec2
	Container Vec2
}

func (e *TextOverflowError) Error() string {
	return fmt.Sprintf("text %q starting at %s overflows canvas of size %s at %s",
		e.Text, e.Starting, e.Container, e.Ending)
}

// ItemTooBigError reports an object that does not fit in its container.
// Name identifies the operation that attempted the draw.
type ItemTooBigError struct {
	Pos       Vec2
	Size      Vec2
	Container Vec2
	Name      string
}

func (e *ItemTooBigError) Error() string {
	return fmt.Sprintf("%s at %s with size %s does not fit in canvas of size %s",
		e.Name, e.Pos, e.Size, e.Container)
}
