package game

// Phase summarizes the board for snapshots and the platform layer.
type Phase string

const (
	PhaseIdle     Phase = "idle"     // no card flipped yet
	PhasePlaying  Phase = "playing"  // clock running
	PhaseMismatch Phase = "mismatch" // failed pair shown, input frozen
	PhaseWon      Phase = "won"
)

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Moves           int
	MatchedPairs    int
	RevealedCount   int
	MismatchPending bool
	Won             bool
	Elapsed         float64
	WinTime         float64
	CursorRow       int
	CursorCol       int
	Phase           Phase
	Cells           [GridSize * GridSize]CardState // row-major
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	b := g.board

	phase := PhasePlaying
	switch {
	case b.Won():
		phase = PhaseWon
	case b.MismatchPending():
		phase = PhaseMismatch
	case !b.Started():
		phase = PhaseIdle
	}

	snap := Snapshot{
		Moves:           b.Moves(),
		MatchedPairs:    b.MatchedPairs(),
		RevealedCount:   b.RevealedCount(),
		MismatchPending: b.MismatchPending(),
		Won:             b.Won(),
		Elapsed:         b.Elapsed(),
		WinTime:         b.WinTime(),
		CursorRow:       g.cursorRow,
		CursorCol:       g.cursorCol,
		Phase:           phase,
	}

	idx := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			snap.Cells[idx] = b.CardAt(row, col).State()
			idx++
		}
	}
	return snap
}
