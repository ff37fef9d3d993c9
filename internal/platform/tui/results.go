package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultEntry is one completed game within the current session. Results live
// in memory only and vanish when the session ends.
type ResultEntry struct {
	Moves      int
	Seconds    float64
	Theme      string
	FinishedAt time.Time
}

// Results is the in-session results screen: a table of completed games,
// newest first.
type Results struct {
	entries []ResultEntry
	table   table.Model
	help    help.Model
	keys    KeyMap
	width   int
	height  int
}

// NewResults creates an empty results screen.
func NewResults(keys KeyMap, width, height int) *Results {
	h := help.New()
	h.ShowAll = false

	r := &Results{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	r.table = r.createTable()
	return r
}

// createTable creates the results table with appropriate columns.
func (r *Results) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Theme", Width: 12},
		{Title: "Finished", Width: 14},
	}

	height := r.height - 8 // header, title, help bar, margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Add records a completed game and refreshes the table.
func (r *Results) Add(e ResultEntry) {
	r.entries = append(r.entries, e)
	r.updateRows()
}

// Len returns the number of recorded games.
func (r *Results) Len() int {
	return len(r.entries)
}

// updateRows rebuilds the table rows, newest game first.
func (r *Results) updateRows() {
	rows := make([]table.Row, len(r.entries))
	for i, e := range r.entries {
		rows[len(r.entries)-1-i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%.1fs", e.Seconds),
			e.Theme,
			e.FinishedAt.Format("15:04:05"),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (r *Results) Resize(width, height int) {
	r.width = width
	r.height = height
	r.help.Width = width
	r.table = r.createTable()
	r.updateRows()
}

// Update forwards messages to the table for scrolling.
func (r *Results) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return cmd
}

// View renders the results screen.
func (r *Results) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var body string
	if len(r.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		body = emptyStyle.Render("No games finished yet.\nMatch all the pairs to record a result!")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		body = tableStyle.Render(r.table.View())
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return titleStyle.Render("SESSION RESULTS") + "\n\n" +
		body + "\n" +
		helpStyle.Render(r.help.View(r.keys))
}
