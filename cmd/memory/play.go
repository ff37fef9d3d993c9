package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/deck"
	"github.com/vovakirdan/memory-match/internal/game"
	"github.com/vovakirdan/memory-match/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Memory Match.

Controls:
  Mouse       - Click a card to flip it
  Arrows/WASD - Move the cursor
  Enter       - Flip the card under the cursor
  Space       - Play again (from the win screen)
  R           - Restart anytime
  Tab         - Session results
  Q/Ctrl+C    - Quit

Examples:
  memory play
  memory play --theme shapes
  memory play --seed 42
  memory play --config ./my-config.yaml
  memory play --theme-file ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	conf, theme, err := loadGameSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(conf, theme)
	if runErr := tui.Run(g, theme.Name, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadGameSetup resolves the game config and the card theme from flags.
// The theme is always completed to a full deck; missing or malformed
// symbols are logged and padded with placeholders.
func loadGameSetup() (config.Config, deck.Theme, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, deck.Theme{}, err
	}

	var theme deck.Theme
	switch {
	case flagThemeFile != "":
		theme, err = deck.LoadFile(flagThemeFile)
	case flagTheme != "":
		theme, err = deck.Load(flagTheme)
	default:
		theme, err = deck.Load(conf.Theme)
	}
	if err != nil {
		return config.Config{}, deck.Theme{}, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "memory"})
	return conf, theme.Complete(logger), nil
}
