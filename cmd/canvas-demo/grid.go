package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/canvas/canvas"
	"github.com/lixenwraith/canvas/terminal"
)

var (
	gridCols int
	gridRows int
	gridCell int
	heavy    bool
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Draw a labeled box-drawing grid",
	RunE: func(_ *cobra.Command, _ []string) error {
		theme, err := currentTheme()
		if err != nil {
			return err
		}
		mode, err := currentColorMode()
		if err != nil {
			return err
		}

		chars := canvas.Light
		if heavy {
			chars = canvas.Heavy
		}

		dims := canvas.Vec2{X: gridCols, Y: gridRows}
		cellSize := canvas.Splat(gridCell)
		size := cellSize.AddScalar(1).Mul(dims).AddScalar(1).AddScalar(2)

		c, err := canvas.New(size)
		if err != nil {
			return err
		}

		err = c.Grid(canvas.Centered, cellSize, dims, chars).
			Colored(theme.Subtext, theme.Mantle).
			DrawInside(func(cell *canvas.Canvas, pos canvas.Vec2) error {
				label := fmt.Sprintf("%d,%d", pos.X, pos.Y)
				return cell.Text(canvas.Centered, label).
					Foreground(theme.Highlights[(pos.X+pos.Y)%len(theme.Highlights)]).
					Err()
			}).
			Err()
		if err != nil {
			return err
		}

		return terminal.NewRenderer(os.Stdout, mode).Print(c)
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)

	gridCmd.Flags().IntVar(&gridCols, "cols", 4, "grid columns")
	gridCmd.Flags().IntVar(&gridRows, "rows", 3, "grid rows")
	gridCmd.Flags().IntVar(&gridCell, "cell", 5, "cell size in characters")
	gridCmd.Flags().BoolVar(&heavy, "heavy", false, "use heavy box-drawing characters")
}
