package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/deck"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in card themes",
	Long: `Shows the card themes that ship with the game, with their symbols.

Custom themes can be dropped in ~/.memory-match/themes/<name>.yaml or
passed directly with --theme-file.`,
	Run: runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := deck.Builtin()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Built-in themes:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, t := range themes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Symbols")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-------")

	for _, t := range themes {
		glyphs := ""
		for _, s := range t.Symbols {
			glyphs += string(s.Rune()) + " "
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, t.Name, glyphs)
	}

	fmt.Println()
	fmt.Println("Run 'memory play --theme <name>' to play with a theme.")
}
