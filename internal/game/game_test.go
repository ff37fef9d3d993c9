package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/deck"
)

func testTheme() deck.Theme {
	t := deck.Theme{Name: "test"}
	for _, g := range "ABCDEFGH" {
		t.Symbols = append(t.Symbols, deck.Symbol{
			ID:    string(g),
			Glyph: string(g),
			Color: "white",
		})
	}
	return t
}

func newTestGame(seed int64) *Game {
	g := New(config.Default(), testTheme())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameResetProducesFreshBoard(t *testing.T) {
	g := newTestGame(1)

	snap := g.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("phase after reset = %q, expected idle", snap.Phase)
	}
	if snap.Moves != 0 || snap.Won || snap.Elapsed != 0 {
		t.Errorf("reset state not clean: %+v", snap)
	}
	for i, s := range snap.Cells {
		if s != StateHidden {
			t.Errorf("cell %d state = %v after reset, expected hidden", i, s)
		}
	}
}

func TestGameClickToCellMapping(t *testing.T) {
	g := newTestGame(1)

	// Every cell's rectangle maps back to that cell, corners included.
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			rect := g.cellRect(row, col)
			probes := [][2]int{
				{rect.X, rect.Y},
				{rect.Right() - 1, rect.Bottom() - 1},
			}
			cx, cy := rect.Center()
			probes = append(probes, [2]int{cx, cy})

			for _, p := range probes {
				gotRow, gotCol, ok := g.cellAt(p[0], p[1])
				if !ok || gotRow != row || gotCol != col {
					t.Errorf("cellAt(%d, %d) = (%d, %d, %v), expected (%d, %d, true)",
						p[0], p[1], gotRow, gotCol, ok, row, col)
				}
			}
		}
	}

	// The margin between cards and the HUD hit nothing.
	firstRect := g.cellRect(0, 0)
	if _, _, ok := g.cellAt(firstRect.Right(), firstRect.Y); ok {
		t.Error("the margin between cards should not map to a cell")
	}
	if _, _, ok := g.cellAt(firstRect.X, 0); ok {
		t.Error("the HUD row should not map to a cell")
	}
}

func TestGameClickRevealsCard(t *testing.T) {
	g := newTestGame(2)

	rect := g.cellRect(1, 2)
	cx, cy := rect.Center()

	in := core.NewInputFrame()
	in.SetClick(cx, cy)
	g.Step(in, 1.0/60)

	card := g.Board().CardAt(1, 2)
	if card.State() == StateHidden {
		t.Error("clicking a hidden card should start its flip")
	}
	snap := g.Snapshot()
	if snap.CursorRow != 1 || snap.CursorCol != 2 {
		t.Errorf("cursor should follow the click, got (%d, %d)", snap.CursorRow, snap.CursorCol)
	}
}

func TestGameClickOutsideBoardIsIgnored(t *testing.T) {
	g := newTestGame(2)

	in := core.NewInputFrame()
	in.SetClick(0, 0)
	g.Step(in, 1.0/60)

	if g.Snapshot().RevealedCount != 0 {
		t.Error("clicks outside the grid must not reveal anything")
	}
}

func TestGameCursorAndFlip(t *testing.T) {
	g := newTestGame(3)

	g.Step(frameWith(core.ActionDown), 1.0/60)
	g.Step(frameWith(core.ActionRight), 1.0/60)

	snap := g.Snapshot()
	if snap.CursorRow != 1 || snap.CursorCol != 1 {
		t.Fatalf("cursor = (%d, %d), expected (1, 1)", snap.CursorRow, snap.CursorCol)
	}

	g.Step(frameWith(core.ActionFlip), 1.0/60)
	if g.Board().CardAt(1, 1).State() == StateHidden {
		t.Error("flip should reveal the card under the cursor")
	}
}

func TestGameCursorClampsAtEdges(t *testing.T) {
	g := newTestGame(3)

	for i := 0; i < 10; i++ {
		g.Step(frameWith(core.ActionUp), 1.0/60)
		g.Step(frameWith(core.ActionLeft), 1.0/60)
	}
	snap := g.Snapshot()
	if snap.CursorRow != 0 || snap.CursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected clamped to (0, 0)", snap.CursorRow, snap.CursorCol)
	}

	for i := 0; i < 10; i++ {
		g.Step(frameWith(core.ActionDown), 1.0/60)
		g.Step(frameWith(core.ActionRight), 1.0/60)
	}
	snap = g.Snapshot()
	if snap.CursorRow != GridSize-1 || snap.CursorCol != GridSize-1 {
		t.Errorf("cursor = (%d, %d), expected clamped to (%d, %d)",
			snap.CursorRow, snap.CursorCol, GridSize-1, GridSize-1)
	}
}

func TestGameClicksFrozenDuringMismatch(t *testing.T) {
	g := newTestGame(4)
	b := g.Board()

	r1, c1, r2, c2 := findMismatchedPair(b)
	b.Reveal(r1, c1)
	b.Reveal(r2, c2)
	if !b.MismatchPending() {
		t.Fatal("expected a pending mismatch")
	}

	// Click a third, hidden card mid-delay: board-wide freeze applies.
	var hr, hc int
	found := false
	for row := 0; row < GridSize && !found; row++ {
		for col := 0; col < GridSize && !found; col++ {
			if b.CardAt(row, col).State() == StateHidden {
				hr, hc = row, col
				found = true
			}
		}
	}
	cx, cy := g.cellRect(hr, hc).Center()
	in := core.NewInputFrame()
	in.SetClick(cx, cy)
	g.Step(in, 1.0/60)

	if b.CardAt(hr, hc).State() != StateHidden {
		t.Error("clicks during mismatch-pending must be ignored")
	}
}

func TestGameStateMirrorsBoard(t *testing.T) {
	g := newTestGame(5)
	b := g.Board()

	r1, c1, r2, c2 := findMatchingPair(b)
	b.Reveal(r1, c1)
	b.Reveal(r2, c2)
	g.Step(core.NewInputFrame(), 0.5)

	state := g.State()
	if state.Moves != 1 || state.Pairs != 1 || state.Won {
		t.Errorf("state = %+v, expected 1 move, 1 pair, not won", state)
	}
	if state.Elapsed != 0.5 {
		t.Errorf("elapsed = %v, expected 0.5", state.Elapsed)
	}
}

func TestGameRestartMidGame(t *testing.T) {
	g := newTestGame(6)
	b := g.Board()

	// Put the board mid-game: one matched pair, one pending mismatch.
	r1, c1, r2, c2 := findMatchingPair(b)
	b.Reveal(r1, c1)
	b.Reveal(r2, c2)
	g.Step(core.NewInputFrame(), 0.3)
	m1, m2, m3, m4 := findMismatchedPair(b)
	b.Reveal(m1, m2)
	b.Reveal(m3, m4)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Won || snap.MismatchPending || snap.Elapsed != 0 {
		t.Errorf("restart state not clean: %+v", snap)
	}
	for i, s := range snap.Cells {
		if s != StateHidden {
			t.Errorf("cell %d state = %v after restart, expected hidden", i, s)
		}
	}
	if g.Board() == b {
		t.Error("restart should replace the board wholesale")
	}
}

func TestGameTooSmallScreenIgnoresInput(t *testing.T) {
	g := New(config.Default(), testTheme())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	g.Step(frameWith(core.ActionFlip), 1.0/60)
	in := core.NewInputFrame()
	in.SetClick(5, 5)
	g.Step(in, 1.0/60)

	if g.Snapshot().RevealedCount != 0 {
		t.Error("input must be ignored while the screen is too small")
	}
}

func TestGameResizeKeepsBoard(t *testing.T) {
	g := newTestGame(12)
	b := g.Board()

	b.Reveal(0, 0)
	g.Step(core.NewInputFrame(), 0.5)

	// Shrinking below the minimum freezes input but keeps the board.
	g.Resize(20, 10)
	g.Step(frameWith(core.ActionFlip), 1.0/60)
	if g.Board() != b || b.RevealedCount() != 1 {
		t.Error("resize must not touch board state")
	}

	// Growing back re-enables play with the same board.
	g.Resize(100, 40)
	cx, cy := g.cellRect(0, 1).Center()
	in := core.NewInputFrame()
	in.SetClick(cx, cy)
	g.Step(in, 1.0/60)
	if b.Moves() != 1 {
		t.Error("play should resume after growing the screen back")
	}
}

func TestGameWinScenario(t *testing.T) {
	g := newTestGame(8)
	b := g.Board()

	playToWin(t, b)
	g.Step(core.NewInputFrame(), 1.0/60)

	state := g.State()
	if !state.Won {
		t.Fatal("game should report the win")
	}
	if g.Snapshot().Phase != PhaseWon {
		t.Errorf("phase = %q, expected won", g.Snapshot().Phase)
	}

	// Reveals after the win stay no-ops through the game layer too.
	cx, cy := g.cellRect(0, 0).Center()
	in := core.NewInputFrame()
	in.SetClick(cx, cy)
	g.Step(in, 1.0/60)
	if g.Snapshot().RevealedCount != 0 {
		t.Error("clicks after the win must be ignored")
	}
}

func TestGameRenderFrame(t *testing.T) {
	g := newTestGame(9)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	frame := screen.String()

	if !strings.Contains(frame, "Memory Match") {
		t.Error("HUD should name the game")
	}
	if !strings.Contains(frame, "Moves: 0") {
		t.Error("HUD should show the move counter")
	}

	// Hidden cards draw as shaded backs; no symbol glyph is visible yet.
	if !strings.ContainsRune(frame, '░') {
		t.Error("hidden cards should render face down")
	}
	for _, s := range testTheme().Symbols {
		if strings.Contains(frame, s.Glyph) {
			t.Errorf("symbol %q visible on a fresh board", s.Glyph)
		}
	}

	// Rendering is idempotent and mutates nothing.
	before := g.Snapshot()
	g.Render(screen)
	if g.Snapshot() != before {
		t.Error("Render must not mutate game state")
	}
}

func TestGameRenderRevealedSymbol(t *testing.T) {
	g := newTestGame(10)
	b := g.Board()

	b.Reveal(0, 0)
	g.Step(core.NewInputFrame(), 0.5) // flip completes

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	card := b.CardAt(0, 0)
	cx, cy := g.cellRect(0, 0).Center()
	if screen.Get(cx, cy) != []rune(card.ImageID)[0] {
		t.Errorf("revealed card should show its glyph at the cell center, got %q", screen.Get(cx, cy))
	}
}

func TestGameRenderWinBanner(t *testing.T) {
	g := newTestGame(11)
	playToWin(t, g.Board())
	g.Step(core.NewInputFrame(), 1.0/60)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	frame := screen.String()

	if !strings.Contains(frame, "Congratulations!") {
		t.Error("win banner missing")
	}
	if !strings.Contains(frame, "Press SPACE to play again") {
		t.Error("restart prompt missing")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New(config.Default(), testTheme())
	g.Reset(core.RuntimeConfig{ScreenW: 25, ScreenH: 12, TickRate: 60, Seed: 1})

	screen := core.NewScreen(25, 12)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("too-small overlay missing")
	}
}
