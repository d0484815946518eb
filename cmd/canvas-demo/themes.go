package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/canvas/canvas"
	"github.com/lixenwraith/canvas/terminal"
	"github.com/lixenwraith/canvas/themes"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Print swatches of every built-in theme",
	RunE: func(_ *cobra.Command, _ []string) error {
		mode, err := currentColorMode()
		if err != nil {
			return err
		}
		renderer := terminal.NewRenderer(os.Stdout, mode)

		names := themes.Names()
		for _, name := range names {
			theme, _ := themes.ByName(name)
			c, err := swatch(name, theme)
			if err != nil {
				return err
			}
			if err := renderer.Print(c); err != nil {
				return err
			}
		}
		return nil
	},
}

// swatch is one theme row: the name on the theme's base colors,
// followed by a cell per highlight color.
func swatch(name string, theme themes.Theme) (*canvas.Canvas, error) {
	const nameWidth = 12
	width := nameWidth + 2*len(theme.Highlights) + 1

	c, err := canvas.Filled(canvas.Vec2{X: width, Y: 1}, ' ', theme.Text, theme.Base)
	if err != nil {
		return nil, err
	}

	res := c.TextAbsolute(canvas.Zero, name)
	for i, highlight := range theme.Highlights {
		pos := canvas.Vec2{X: nameWidth + 2*i}
		res = res.FillBox(pos, canvas.Vec2{X: 2, Y: 1}, ' ').Background(highlight)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
