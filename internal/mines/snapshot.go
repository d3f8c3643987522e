package mines

import "strings"

// Snapshot is a read-only copy of a session handed to renderers. It owns
// its cells; changing them has no effect on the session.
type Snapshot struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	State     State  `json:"state"`
	Flags     int    `json:"flags"`
	Cells     []Cell `json:"cells"`
}

func newSnapshot(p GameParams, state State, g *Grid) Snapshot {
	if g == nil {
		return Snapshot{State: state}
	}
	return Snapshot{
		Width:     g.Width(),
		Height:    g.Height(),
		MineCount: p.MineCount,
		State:     state,
		Flags:     g.Flags(),
		Cells:     g.Cells(),
	}
}

// Cell returns the cell at x, y or the [Invalid] sentinel.
func (s Snapshot) Cell(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}
	}
	return s.Cells[y*s.Width+x]
}

// MinesLeft is the mine count minus placed flags; it goes negative when the
// player over-flags.
func (s Snapshot) MinesLeft() int {
	return s.MineCount - s.Flags
}

func (s Snapshot) String() string {
	var b strings.Builder
	for y := range s.Height {
		for x := range s.Width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.Cells[y*s.Width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
