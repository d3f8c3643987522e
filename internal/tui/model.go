// Package tui is the terminal front-end: it draws a session's snapshot and
// maps keys to player actions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Model is the Bubble Tea model for one minesweeper session. The session
// is shared between copies of the model; Bubble Tea only touches it from
// the update loop.
type Model struct {
	session  *mines.Session
	snap     mines.Snapshot
	keys     KeyMap
	help     help.Model
	cursorX  int
	cursorY  int
	err      error
	quitting bool
}

func NewModel(session *mines.Session) Model {
	snap := session.Snapshot()
	return Model{
		session: session,
		snap:    snap,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cursorX: snap.Width / 2,
		cursorY: snap.Height / 2,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Reveal):
		m.snap = m.session.Reveal(m.cursorX, m.cursorY)
	case key.Matches(msg, m.keys.Flag):
		m.snap = m.session.Flag(m.cursorX, m.cursorY)
	case key.Matches(msg, m.keys.Chord):
		m.snap = m.session.Chord(m.cursorX, m.cursorY)
	case key.Matches(msg, m.keys.Forfeit):
		m.snap = m.session.Forfeit()
	case key.Matches(msg, m.keys.NewGame):
		snap, err := m.session.Restart()
		m.err = err
		if err == nil {
			m.snap = snap
		}
	}
	return m, nil
}

// move shifts the cursor, stopping at the board edges.
func (m *Model) move(dx, dy int) {
	m.cursorX = max(0, min(m.cursorX+dx, m.snap.Width-1))
	m.cursorY = max(0, min(m.cursorY+dy, m.snap.Height-1))
}

func (m Model) Snapshot() mines.Snapshot {
	return m.snap
}

func (m Model) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"%s  mines left: %d  %s",
		m.session.Params(), m.snap.MinesLeft(), m.snap.State,
	)))
	b.WriteByte('\n')

	if m.snap.Width == 0 {
		b.WriteString("no game in progress, press n to start\n")
	} else {
		b.WriteString(renderBoard(m.snap, m.cursorX, m.cursorY))
		b.WriteByte('\n')
	}

	switch m.snap.State {
	case mines.Won:
		b.WriteString(wonStyle.Render("You win! Press n for another round."))
		b.WriteByte('\n')
	case mines.Lost:
		b.WriteString(lostStyle.Render("Boom. Press n to try again."))
		b.WriteByte('\n')
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
