package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/canvas/canvas"
)

// Blit copies the canvas into a tcell screen starting at the origin.
// Cells with no color keep the screen's default style on that channel.
// The caller still owns Show.
func Blit(screen tcell.Screen, c *canvas.Canvas) error {
	size := c.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			cell, err := c.Get(canvas.Vec2{X: x, Y: y})
			if err != nil {
				return err
			}
			style := tcell.StyleDefault
			if cell.Foreground.Valid() {
				style = style.Foreground(rgbColor(cell.Foreground))
			}
			if cell.Background.Valid() {
				style = style.Background(rgbColor(cell.Background))
			}
			screen.SetContent(x, y, cell.Text, nil, style)
		}
	}
	return nil
}

func rgbColor(c canvas.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
