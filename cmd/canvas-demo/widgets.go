package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/canvas/canvas"
	"github.com/lixenwraith/canvas/terminal"
	"github.com/lixenwraith/canvas/themes"
	"github.com/lixenwraith/canvas/widgets"
)

var widgetsCmd = &cobra.Command{
	Use:   "widgets",
	Short: "Interactive widget showcase",
	Long: `Opens a tcell screen with the built-in widgets. Use the arrow keys
to move the selection, Enter to activate, and q or Escape to quit.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		theme, err := currentTheme()
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		selection := 0
		activated := false
		const items = 5

		for {
			if err := drawWidgets(screen, theme, selection, activated); err != nil {
				return err
			}
			screen.Show()

			switch ev := screen.PollEvent().(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyUp:
					activated = false
					selection = (selection + items - 1) % items
				case ev.Key() == tcell.KeyDown:
					activated = false
					selection = (selection + 1) % items
				case ev.Key() == tcell.KeyEnter:
					activated = !activated
				}
			}
		}
	},
}

func drawWidgets(screen tcell.Screen, theme themes.Theme, selection int, activated bool) error {
	w, h := screen.Size()
	c, err := canvas.Filled(canvas.Vec2{X: w, Y: h}, ' ', theme.Text, theme.Base)
	if err != nil {
		return err
	}

	sel := widgets.NewSelectable(theme, selection, activated)

	err = c.Draw(canvas.CenterTop, sel.Title("canvas widgets")).
		Draw(canvas.CenteredOnRow(3), sel.TitledText(
			[]int{0, 1, 2, 3},
			"Theme",
			[]string{"Latte", "Frappe", "Macchiato", "Mocha"},
		)).
		Draw(canvas.CenteredOnRow(10), sel.Toggle(4, "sound", activated && selection == 4)).
		Draw(canvas.CenterBottom, widgets.NewThemed(theme).Button("quit (q)")).
		Err()
	if err != nil {
		return err
	}

	return terminal.Blit(screen, c)
}

func init() {
	rootCmd.AddCommand(widgetsCmd)
}
