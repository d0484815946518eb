package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/canvas/terminal"
	"github.com/lixenwraith/canvas/themes"
)

var (
	themeName string
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "canvas-demo",
	Short: "Showcase the canvas drawing toolkit",
	Long: `canvas-demo renders the toolkit's building blocks to the terminal:
box-drawing grids, themed widgets, and the built-in color themes.`,
}

// Execute runs the root command. Called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "mocha", "color theme (latte, frappe, macchiato, mocha, onedark)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color-mode", "auto", "color output (auto, truecolor, 256, mono)")
}

func initConfig() {
	viper.SetEnvPrefix("canvas")
	viper.AutomaticEnv()

	for _, name := range []string{"theme", "color-mode"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		if !f.Changed && viper.IsSet(name) {
			if err := f.Value.Set(viper.GetString(name)); err != nil {
				log.Fatal("bad config value", "flag", name, "err", err)
			}
		}
	}
}

func currentTheme() (themes.Theme, error) {
	theme, ok := themes.ByName(themeName)
	if !ok {
		return themes.Theme{}, fmt.Errorf("unknown theme %q, have %v", themeName, themes.Names())
	}
	return theme, nil
}

func currentColorMode() (terminal.ColorMode, error) {
	mode, ok := terminal.ParseColorMode(colorMode)
	if !ok {
		return mode, fmt.Errorf("unknown color mode %q", colorMode)
	}
	return mode, nil
}
