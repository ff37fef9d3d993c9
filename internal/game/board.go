package game

import (
	"math/rand"
)

// GridSize is the board dimension; the grid always holds GridSize² cards.
const GridSize = 4

// pairCount is the number of distinct image IDs on a full board.
const pairCount = GridSize * GridSize / 2

// Tuning holds the board's timing parameters, normally taken from config.
type Tuning struct {
	FlipRate      float64 // flip animation progress per second
	MatchRate     float64 // match highlight progress per second
	MismatchDelay float64 // seconds mismatched cards stay revealed
}

// DefaultTuning returns the standard timing parameters.
func DefaultTuning() Tuning {
	return Tuning{
		FlipRate:      8.0,
		MatchRate:     4.0,
		MismatchDelay: 1.0,
	}
}

// Board owns the card grid and runs the turn protocol. It is the sole owner
// and mutator of all cards; rendering only reads. A board is constructed
// fresh per game and replaced wholesale on restart.
type Board struct {
	grid   [GridSize][GridSize]*Card
	tuning Tuning

	revealed []*Card // 0, 1, or 2 cards pending match evaluation
	moves    int
	pairs    int // matched pairs so far

	started bool    // set on the first reveal of the game
	elapsed float64 // seconds since first reveal, frozen once won

	won     bool
	winTime float64 // elapsed at the moment of the final match, latched once

	mismatchPending bool
	mismatchTimer   float64
}

// NewBoard builds a shuffled board from the given image IDs.
// Exactly pairCount distinct IDs are used, each assigned to two cells; if
// fewer are supplied the available IDs repeat to fill the quota. The shuffle
// is a uniform random permutation drawn from rng.
func NewBoard(rng *rand.Rand, imageIDs []string, tuning Tuning) *Board {
	selected := make([]string, 0, pairCount)
	for i := 0; i < pairCount; i++ {
		selected = append(selected, imageIDs[i%len(imageIDs)])
	}

	// Duplicate each ID, then shuffle over all 16 cells.
	assignment := make([]string, 0, GridSize*GridSize)
	assignment = append(assignment, selected...)
	assignment = append(assignment, selected...)
	rng.Shuffle(len(assignment), func(i, j int) {
		assignment[i], assignment[j] = assignment[j], assignment[i]
	})

	b := &Board{tuning: tuning}
	idx := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			b.grid[row][col] = &Card{
				ImageID: assignment[idx],
				Row:     row,
				Col:     col,
			}
			idx++
		}
	}
	return b
}

// CardAt returns the card at the given cell, or nil if out of bounds.
func (b *Board) CardAt(row, col int) *Card {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return nil
	}
	return b.grid[row][col]
}

// Reveal handles a player click on a cell. Clicks on non-hidden cards, clicks
// while a mismatch is pending, and clicks after the win are all silent no-ops;
// click handling is a total function over the state machine.
func (b *Board) Reveal(row, col int) {
	if b.won || b.mismatchPending {
		return
	}

	card := b.CardAt(row, col)
	if card == nil || card.State() != StateHidden {
		return
	}

	// The elapsed-time anchor is the first reveal of the game.
	b.started = true

	card.startFlip()
	b.revealed = append(b.revealed, card)

	if len(b.revealed) < 2 {
		return
	}

	// One move per completed pair attempt, regardless of outcome.
	b.moves++

	first, second := b.revealed[0], b.revealed[1]
	if first.ImageID == second.ImageID {
		first.setMatched()
		second.setMatched()
		b.revealed = b.revealed[:0]
		b.pairs++
		b.checkWin()
		return
	}

	// Mismatch: keep both visible for the delay, freeze input board-wide.
	b.mismatchPending = true
	b.mismatchTimer = b.tuning.MismatchDelay
}

// Update advances the clock, all card animations, and the mismatch timer by
// dt seconds.
func (b *Board) Update(dt float64) {
	if b.started && !b.won {
		b.elapsed += dt
	}

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			b.grid[row][col].advance(dt, b.tuning.FlipRate, b.tuning.MatchRate)
		}
	}

	if b.mismatchPending {
		b.mismatchTimer -= dt
		if b.mismatchTimer <= 0 {
			for _, card := range b.revealed {
				card.hide()
			}
			b.revealed = b.revealed[:0]
			b.mismatchPending = false
			b.mismatchTimer = 0
		}
	}
}

// checkWin scans the grid and latches the win state. The win timestamp is
// recorded on the first observation only, never overwritten.
func (b *Board) checkWin() {
	if b.won {
		return
	}
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.grid[row][col].State() != StateMatched {
				return
			}
		}
	}
	b.won = true
	b.winTime = b.elapsed
}

// Moves returns the number of completed two-card reveal attempts.
func (b *Board) Moves() int {
	return b.moves
}

// MatchedPairs returns the number of pairs matched so far.
func (b *Board) MatchedPairs() int {
	return b.pairs
}

// Won reports whether every card is matched.
func (b *Board) Won() bool {
	return b.won
}

// WinTime returns the elapsed game time at the moment of the final match.
// Zero until won.
func (b *Board) WinTime() float64 {
	return b.winTime
}

// Started reports whether the first card of the game has been flipped.
func (b *Board) Started() bool {
	return b.started
}

// Elapsed returns seconds of play since the first reveal.
// The clock starts at the first flip and freezes once the game is won.
func (b *Board) Elapsed() float64 {
	return b.elapsed
}

// RevealedCount returns how many cards are face up pending match evaluation.
func (b *Board) RevealedCount() int {
	return len(b.revealed)
}

// MismatchPending reports whether a failed pair is waiting to flip back.
// All click input is ignored board-wide while this is true.
func (b *Board) MismatchPending() bool {
	return b.mismatchPending
}
