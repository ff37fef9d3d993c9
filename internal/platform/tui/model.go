package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/memory-match/internal/core"
)

// resizer is implemented by games that can re-layout for a new screen size
// without losing board state.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model running the memory game loop.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	themeName  string
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	results    *Results

	lastTick    time.Time
	showResults bool
	resultSaved bool // current game already recorded in results
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, themeName string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	keys := DefaultKeyMap()

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		themeName:  themeName,
		keys:       keys,
		inputFrame: core.NewInputFrame(),
		results:    NewResults(keys, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showResults {
		return m.handleResultsKey(msg)
	}

	action, isQuit, isSpace := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:

	case core.ActionRestart:
		// Space restarts only from the win screen; r restarts anytime.
		if !isSpace || m.gameState.Won {
			m.inputFrame.Set(core.ActionRestart)
		}

	default:
		m.inputFrame.Set(action)
	}

	if key.Matches(msg, m.keys.Results) {
		m.showResults = true
	}

	return m, nil
}

// handleResultsKey processes input while the results screen is up.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Results), msg.String() == "esc":
		m.showResults = false
		return m, nil

	case msg.String() == "q", msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	// Up/down scroll the table.
	return m, m.results.Update(msg)
}

// handleMouse translates mouse clicks into board clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showResults {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The board survives a resize;
// only the layout is recomputed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.results.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step with the measured dt.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
		if dt > maxTickDelta {
			dt = maxTickDelta
		}
	}
	m.lastTick = now

	// Restart replaces the whole game with a fresh shuffle.
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Record the finished game once.
	if m.gameState.Won && !m.resultSaved {
		m.results.Add(ResultEntry{
			Moves:      m.gameState.Moves,
			Seconds:    m.gameState.Elapsed,
			Theme:      m.themeName,
			FinishedAt: time.Now(),
		})
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showResults {
		return m.results.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, themeName string, cfg core.RuntimeConfig) error {
	model := NewModel(game, themeName, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
