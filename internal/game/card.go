// Package game implements the memory matching game: a 4x4 grid of paired
// cards, the per-card flip state machine, and the board turn protocol.
// It contains pure logic with no external dependencies (especially no Bubble
// Tea); the platform handles input mapping, timing, and rendering.
package game

// CardState represents the different states a card can be in.
type CardState int

const (
	StateHidden   CardState = iota // face down, accepts clicks
	StateFlipping                  // hidden -> revealed animation running
	StateRevealed                  // face up, waiting for match evaluation
	StateMatched                   // paired and blocked, terminal until restart
)

// String returns a human-readable name for the state.
func (s CardState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateFlipping:
		return "flipping"
	case StateRevealed:
		return "revealed"
	case StateMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card represents a single card in the grid. Exactly one other card on the
// board shares its ImageID. Position is fixed at creation.
type Card struct {
	ImageID string
	Row     int
	Col     int

	state         CardState
	flipProgress  float64 // [0,1], advances only while Flipping
	matchProgress float64 // [0,1], advances only while Matched
}

// State returns the card's current state.
func (c *Card) State() CardState {
	return c.state
}

// FlipProgress returns the hidden->revealed animation phase in [0,1].
func (c *Card) FlipProgress() float64 {
	return c.flipProgress
}

// MatchProgress returns the post-match highlight phase in [0,1].
func (c *Card) MatchProgress() float64 {
	return c.matchProgress
}

// FaceVisible reports whether the card's symbol should be drawn.
// During a flip the face appears once the animation passes the halfway point.
func (c *Card) FaceVisible() bool {
	switch c.state {
	case StateRevealed, StateMatched:
		return true
	case StateFlipping:
		return c.flipProgress > 0.5
	default:
		return false
	}
}

// startFlip begins the hidden -> revealed transition.
// Callers guard on state; flipping a non-hidden card is a board-level no-op.
func (c *Card) startFlip() {
	c.state = StateFlipping
	c.flipProgress = 0
}

// setMatched marks the card as paired. Matched is terminal until board reset.
func (c *Card) setMatched() {
	c.state = StateMatched
	c.matchProgress = 0
}

// hide flips the card face down again after a failed match.
func (c *Card) hide() {
	c.state = StateHidden
	c.flipProgress = 0
}

// advance progresses the card's animations by dt seconds.
// flipProgress only moves while Flipping (completing the transition to
// Revealed at 1.0); matchProgress only moves while Matched. Neither ever
// changes state beyond that, and Matched never leaves Matched.
func (c *Card) advance(dt, flipRate, matchRate float64) {
	switch c.state {
	case StateFlipping:
		c.flipProgress += dt * flipRate
		if c.flipProgress >= 1.0 {
			c.flipProgress = 1.0
			c.state = StateRevealed
		}
	case StateMatched:
		if c.matchProgress < 1.0 {
			c.matchProgress += dt * matchRate
			if c.matchProgress > 1.0 {
				c.matchProgress = 1.0
			}
		}
	}
}
