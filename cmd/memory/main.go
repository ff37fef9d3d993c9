// memory is a terminal memory tile-matching game.
//
// Usage:
//
//	memory                   - Play with the default theme
//	memory play              - Same as above
//	memory themes            - List built-in card themes
//	memory serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for a reproducible shuffle
//	--config <path>  - Path to custom game config YAML
//	--theme <name>   - Card theme to play with
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagTheme     string
	flagThemeFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - a tile-matching game in your terminal",
	Long: `Memory Match is a terminal card game: flip cards two at a time and
find all eight matching pairs in as few moves as you can.

Available commands:
  play     - Play the game (also the default when no command is given)
  themes   - List built-in card themes
  serve    - Start SSH server for remote play

Examples:
  memory
  memory play --theme shapes
  memory play --seed 42
  memory serve --ssh :2222
  memory themes`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Card theme (see 'memory themes')")
	rootCmd.PersistentFlags().StringVar(&flagThemeFile, "theme-file", "", "Path to a custom theme YAML file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}
