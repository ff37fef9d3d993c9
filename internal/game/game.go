package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/deck"
)

// Layout constants, in screen cells.
const (
	tileW      = 7 // card width including border
	tileH      = 4 // card height including border
	tileMargin = 1 // gap between cards
	hudHeight  = 2 // status line + separator above the board

	boardW = GridSize*tileW + (GridSize-1)*tileMargin
	boardH = GridSize*tileH + (GridSize-1)*tileMargin

	minScreenW = boardW + 2
	minScreenH = boardH + hudHeight + 1
)

// Game drives the memory board: it translates platform input into the turn
// protocol, advances time-based state each tick, and renders the frame.
type Game struct {
	conf  config.Config
	theme deck.Theme

	rng   *rand.Rand
	board *Board

	cursorRow int
	cursorCol int

	screenW  int
	screenH  int
	boardX   int // top-left of the grid on screen
	boardY   int
	tooSmall bool
}

// New creates a game with the given tunables and a completed theme
// (exactly deck.PairCount symbols).
func New(conf config.Config, theme deck.Theme) *Game {
	return &Game{
		conf:  conf,
		theme: theme,
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Match"
}

// ThemeName returns the active deck theme.
func (g *Game) ThemeName() string {
	return g.theme.Name
}

// Reset starts a fresh game: new shuffle, zeroed counters, all cards hidden.
// The previous board and all its cards are discarded wholesale.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursorRow = 0
	g.cursorCol = 0

	g.board = NewBoard(g.rng, g.theme.IDs(), Tuning{
		FlipRate:      g.conf.Animation.FlipRate,
		MatchRate:     g.conf.Animation.MatchRate,
		MismatchDelay: g.conf.Rules.MismatchDelay,
	})

	g.layout()
}

// Resize adapts the layout to a new screen size. Board state survives a
// resize; only the grid placement and the too-small check change.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout()
}

// layout centers the grid and checks the screen fits.
func (g *Game) layout() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
	g.boardX = (g.screenW - boardW) / 2
	g.boardY = hudHeight
}

// cellRect returns the screen rectangle of a grid cell.
func (g *Game) cellRect(row, col int) core.Rect {
	return core.NewRect(
		g.boardX+col*(tileW+tileMargin),
		g.boardY+row*(tileH+tileMargin),
		tileW,
		tileH,
	)
}

// cellAt translates screen coordinates to a grid cell.
func (g *Game) cellAt(x, y int) (row, col int, ok bool) {
	for row = 0; row < GridSize; row++ {
		for col = 0; col < GridSize; col++ {
			if g.cellRect(row, col).Contains(x, y) {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// Step advances the game by one tick. Input flows one way: clicks and cursor
// actions mutate the board, then all time-based state advances by dt.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.tooSmall {
		g.handleInput(in)
	}

	g.board.Update(dt)

	return core.StepResult{State: g.State()}
}

// handleInput dispatches this frame's actions to the board.
func (g *Game) handleInput(in core.InputFrame) {
	// Cursor navigation stays live after the win so the board remains
	// inspectable; reveals below are no-ops once won.
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, GridSize-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, GridSize-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, GridSize-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, GridSize-1)
	}

	if in.Click != nil {
		// Board-wide input freeze while a mismatch is pending.
		if !g.board.MismatchPending() && !g.board.Won() {
			if row, col, ok := g.cellAt(in.Click.X, in.Click.Y); ok {
				g.cursorRow = row
				g.cursorCol = col
				g.board.Reveal(row, col)
			}
		}
	}

	if in.Has(core.ActionFlip) {
		g.board.Reveal(g.cursorRow, g.cursorCol)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:   g.board.Moves(),
		Pairs:   g.board.MatchedPairs(),
		Elapsed: g.board.Elapsed(),
		Won:     g.board.Won(),
	}
}

// Board exposes the underlying board for snapshots and tests.
func (g *Game) Board() *Board {
	return g.board
}

// Render draws the current frame. Rendering is idempotent and never mutates
// game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst,
			"Window too small",
			fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH),
			"Resize to continue")
		return
	}

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			g.renderCard(dst, g.board.CardAt(row, col))
		}
	}

	if g.board.Won() {
		g.renderOverlay(dst,
			"Congratulations!",
			fmt.Sprintf("Completed in %d moves and %.1f seconds", g.board.Moves(), g.board.WinTime()),
			"Press SPACE to play again")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Moves: %d  Time: %.1fs  Theme: %s",
		g.Title(), g.board.Moves(), g.displayTime(), g.theme.Name)
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// displayTime returns the clock value shown in the HUD: running time during
// play, the latched win time once won.
func (g *Game) displayTime() float64 {
	if g.board.Won() {
		return g.board.WinTime()
	}
	return g.board.Elapsed()
}

// renderCard draws one card with its state-dependent color and animations.
func (g *Game) renderCard(dst *core.Screen, card *Card) {
	rect := g.cellRect(card.Row, card.Col)

	borderColor := core.ColorSteelBlue
	switch card.State() {
	case StateRevealed:
		borderColor = core.ColorWhite
	case StateFlipping:
		if card.FaceVisible() {
			borderColor = core.ColorWhite
		}
	case StateMatched:
		// Bright highlight fades to the settled matched color.
		if card.MatchProgress() < 1.0 {
			borderColor = core.ColorBrightGreen
		} else {
			borderColor = core.ColorGreen
		}
	}

	drawRect := rect
	if card.State() == StateFlipping {
		drawRect = flipRect(rect, card.FlipProgress())
	}

	if card.State() == StateHidden {
		dst.DrawRect(rect, '░', core.ColorSteelBlue)
	} else {
		dst.DrawRect(drawRect, ' ', core.ColorDefault)
	}
	dst.DrawBox(drawRect, borderColor)

	if card.FaceVisible() {
		symbol := g.theme.SymbolByID(card.ImageID)
		cx, cy := drawRect.Center()
		dst.SetCell(cx, cy, symbol.Rune(), symbol.ForegroundColor())
	}

	// Cursor marker for keyboard play, hidden under the win banner.
	if !g.board.Won() && card.Row == g.cursorRow && card.Col == g.cursorCol {
		dst.SetCell(rect.X, rect.Y, '┏', core.ColorBrightYellow)
		dst.SetCell(rect.Right()-1, rect.Y, '┓', core.ColorBrightYellow)
		dst.SetCell(rect.X, rect.Bottom()-1, '┗', core.ColorBrightYellow)
		dst.SetCell(rect.Right()-1, rect.Bottom()-1, '┛', core.ColorBrightYellow)
	}
}

// flipRect narrows a card rectangle around its vertical center line to mimic
// the flip: the back shrinks until the halfway point, then the face grows.
func flipRect(r core.Rect, progress float64) core.Rect {
	scale := 1.0 - progress
	if progress >= 0.5 {
		scale = progress
	}

	w := int(float64(r.W)*scale + 0.5)
	if w < 2 {
		w = 2
	}
	cx, _ := r.Center()
	return core.NewRect(cx-w/2, r.Y, w, r.H)
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len([]rune(line)) > maxLen {
			maxLen = len([]rune(line))
		}
	}

	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGold)

	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorGold
		}
		dst.DrawTextCentered(boxY+1+i*2, line, color)
	}
}
