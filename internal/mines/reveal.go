package mines

import (
	"fmt"
	"log/slog"
	"strconv"
)

type State uint8

const (
	Playing State = iota
	Won
	Lost
)

var stateNames = [...]string{
	Playing: "playing",
	Won:     "won",
	Lost:    "lost",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

func (s State) Over() bool {
	return s == Won || s == Lost
}

// [State] implements [encoding.TextMarshaler]
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", b)
}

// Flag toggles the flag on a hidden cell and reports whether anything
// changed. Revealed and out-of-bounds cells are left alone.
func (g *Grid) Flag(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	c := g.at(x, y)
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}

// Reveal opens the cell at x, y and returns the resulting game state.
// Out-of-bounds, revealed and flagged cells are ignored and yield [Playing].
func (g *Grid) Reveal(x, y int) State {
	if !g.InBounds(x, y) {
		return Playing
	}
	c := g.at(x, y)
	if c.Revealed || c.Flagged {
		return Playing
	}

	switch c.Kind {
	case Mine:
		g.explode(x, y)
		return Lost
	case Empty:
		n := g.flood(x, y)
		Log.Debug("flood reveal",
			slog.Int("x", x), slog.Int("y", y), slog.Int("cells", n))
	default:
		c.Revealed = true
	}

	if g.checkWin() {
		return Won
	}
	return Playing
}

// Chord opens every hidden, unflagged neighbour of a revealed number whose
// count of adjacent flags matches the number. It stops at the first move
// that ends the game.
func (g *Grid) Chord(x, y int) State {
	c := g.Get(x, y)
	if !c.Revealed || c.Kind != Number {
		return Playing
	}

	var flags int
	targets := make([]Point, 0, 8)
	g.neighbours(x, y, func(n *Cell) {
		switch {
		case n.Flagged:
			flags++
		case !n.Revealed:
			targets = append(targets, Point{n.X, n.Y})
		}
	})
	if flags != c.Number {
		return Playing
	}

	for _, p := range targets {
		if state := g.Reveal(p.X, p.Y); state.Over() {
			return state
		}
	}
	return Playing
}

type Point struct {
	X, Y int
}

// flood reveals the 4-connected region around an empty cell. Number cells
// on the rim are revealed but not expanded; mines and already revealed
// cells stop the walk. Flags in the region are cleared as their cells open.
// Returns the number of cells revealed.
func (g *Grid) flood(x, y int) (revealed int) {
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(p.X, p.Y) {
			continue
		}
		c := g.at(p.X, p.Y)
		if c.Revealed || c.Kind == Mine {
			continue
		}

		c.Flagged = false
		c.Revealed = true
		revealed++

		if c.Kind == Empty {
			stack = append(stack,
				Point{p.X - 1, p.Y},
				Point{p.X + 1, p.Y},
				Point{p.X, p.Y - 1},
				Point{p.X, p.Y + 1},
			)
		}
	}
	return
}

// explode marks the mine at x, y as the one that went off and uncovers
// every mine on the board. Non-mine cells keep their state.
func (g *Grid) explode(x, y int) {
	g.at(x, y).Exploded = true
	g.revealMines()
	Log.Debug("mine exploded", slog.Int("x", x), slog.Int("y", y))
}

// checkWin reports whether every safe cell is open. On success the mines
// are flagged so the final board shows them.
func (g *Grid) checkWin() bool {
	for _, c := range g.cells {
		if c.Kind != Mine && !c.Revealed {
			return false
		}
	}
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			g.cells[i].Flagged = true
		}
	}
	return true
}

// revealMines uncovers every mine without marking any as exploded.
func (g *Grid) revealMines() {
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			g.cells[i].Revealed = true
			g.cells[i].Flagged = false
		}
	}
}
