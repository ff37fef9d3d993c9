// Package deck provides themed symbol decks for the card faces: an ordered
// list of symbols loaded once at startup, padded with synthetic placeholders
// when too few are available.
package deck

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/core"
)

// PairCount is the number of distinct symbols a full 4x4 board needs.
const PairCount = 8

// Symbol is one card face: a stable identifier, a display glyph, and a color.
// The ID is what match evaluation compares; two cards share an ID, never a cell.
type Symbol struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Rune returns the first rune of the glyph, or a placeholder block if empty.
func (s Symbol) Rune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return '▒'
}

// ForegroundColor maps the symbol's color name to a screen color.
// Unknown names fall back to the default color.
func (s Symbol) ForegroundColor() core.Color {
	if c, ok := colorNames[s.Color]; ok {
		return c
	}
	return core.ColorDefault
}

var colorNames = map[string]core.Color{
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
	"gold":           core.ColorGold,
}

// Theme is a named, ordered set of symbols.
type Theme struct {
	Name    string   `yaml:"name"`
	Symbols []Symbol `yaml:"symbols"`
}

// placeholderColors cycle through the fills used for synthetic symbols so
// padded decks stay visually distinguishable.
var placeholderColors = []string{
	"red", "green", "blue", "yellow", "magenta", "cyan", "gray", "orange",
}

// Complete returns a copy of the theme holding exactly PairCount symbols.
// Themes with extra symbols are truncated; themes with too few are padded
// with synthetic flat-color placeholders. Substitution is logged, never
// surfaced to the player.
func (t Theme) Complete(logger *log.Logger) Theme {
	if logger == nil {
		logger = log.Default()
	}

	out := Theme{Name: t.Name}
	for _, s := range t.Symbols {
		if s.ID == "" || s.Glyph == "" {
			logger.Warn("skipping malformed symbol", "theme", t.Name, "id", s.ID)
			continue
		}
		out.Symbols = append(out.Symbols, s)
		if len(out.Symbols) == PairCount {
			break
		}
	}

	for i := len(out.Symbols); i < PairCount; i++ {
		placeholder := Symbol{
			ID:    fmt.Sprintf("placeholder_%d", i),
			Glyph: string(rune('①' + i)),
			Color: placeholderColors[i%len(placeholderColors)],
		}
		logger.Warn("theme has too few symbols, using placeholder",
			"theme", t.Name, "have", len(out.Symbols), "need", PairCount)
		out.Symbols = append(out.Symbols, placeholder)
	}

	return out
}

// IDs returns the symbol identifiers in order.
func (t Theme) IDs() []string {
	ids := make([]string, len(t.Symbols))
	for i, s := range t.Symbols {
		ids[i] = s.ID
	}
	return ids
}

// SymbolByID looks up a symbol by its identifier.
// Returns a gray placeholder for unknown IDs so rendering stays total.
func (t Theme) SymbolByID(id string) Symbol {
	for _, s := range t.Symbols {
		if s.ID == id {
			return s
		}
	}
	return Symbol{ID: id, Glyph: "▒", Color: "gray"}
}
