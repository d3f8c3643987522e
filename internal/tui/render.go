package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	explodedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)

	statusStyle = lipgloss.NewStyle().Bold(true)
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// classic palette, indexed by the adjacent mine count
var numberStyles = [...]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	6: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	7: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	8: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

func cellStyle(c mines.Cell) lipgloss.Style {
	switch {
	case c.Exploded:
		return explodedStyle
	case c.Flagged:
		return flagStyle
	case !c.Revealed:
		return hiddenStyle
	case c.Kind == mines.Mine:
		return mineStyle
	case c.Kind == mines.Number && c.Number < len(numberStyles):
		return numberStyles[c.Number]
	default:
		return emptyStyle
	}
}

func renderBoard(snap mines.Snapshot, cx, cy int) string {
	var b strings.Builder
	for y := range snap.Height {
		for x := range snap.Width {
			if x > 0 {
				b.WriteByte(' ')
			}
			c := snap.Cell(x, y)
			style := cellStyle(c)
			if x == cx && y == cy {
				style = style.Inherit(cursorStyle)
			}
			b.WriteString(style.Render(c.String()))
		}
		if y < snap.Height-1 {
			b.WriteByte('\n')
		}
	}
	return boardStyle.Render(b.String())
}
