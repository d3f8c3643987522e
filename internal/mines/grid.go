package mines

import (
	"fmt"
	"strconv"
)

type CellKind uint8

const (
	Invalid CellKind = iota // out of bounds, never stored
	Empty
	Number
	Mine
)

var cellKindNames = [...]string{
	Invalid: "invalid",
	Empty:   "empty",
	Number:  "number",
	Mine:    "mine",
}

func (k CellKind) String() string {
	if int(k) < len(cellKindNames) {
		return cellKindNames[k]
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

// [CellKind] implements [encoding.TextMarshaler]
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *CellKind) UnmarshalText(b []byte) error {
	for i, name := range cellKindNames {
		if name == string(b) {
			*k = CellKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown cell kind %q", b)
}

// Cell is the full state of one grid position. The zero value is the
// sentinel returned for out-of-bounds reads.
type Cell struct {
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Kind     CellKind `json:"kind"`
	Number   int      `json:"number"`
	Revealed bool     `json:"revealed"`
	Flagged  bool     `json:"flagged"`
	Exploded bool     `json:"exploded"`
}

func (c Cell) IsMine() bool {
	return c.Kind == Mine
}

// String renders the cell the way a player sees it.
func (c Cell) String() string {
	switch {
	case c.Kind == Invalid:
		return "!"
	case c.Exploded:
		return "X"
	case c.Flagged:
		return "*"
	case !c.Revealed:
		return "#"
	case c.Kind == Mine:
		return "@"
	case c.Kind == Number:
		return strconv.Itoa(c.Number)
	default:
		return "."
	}
}

type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

// [*OutOfRangeError] implements [error]
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"cell %d:%d is out of range for a %dx%d grid",
		e.X, e.Y, e.Width, e.Height,
	)
}

// Grid is a fixed width*height board stored row by row, x varies fastest.
type Grid struct {
	width, height int
	cells         []Cell
}

func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := range height {
		for x := range width {
			g.cells[y*width+x] = Cell{X: x, Y: y, Kind: Empty}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

// Get returns the cell at x, y or the zero [Cell] (kind [Invalid]) when the
// point lies outside the grid.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// Set stores c at x, y.
//
// panics [*OutOfRangeError]
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		panic(&OutOfRangeError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	g.cells[y*g.width+x] = c
}

// at returns a pointer into the backing slice; x, y must be in bounds.
func (g *Grid) at(x, y int) *Cell {
	return &g.cells[y*g.width+x]
}

func (g *Grid) Mines() (count int) {
	for _, c := range g.cells {
		if c.Kind == Mine {
			count++
		}
	}
	return
}

func (g *Grid) Flags() (count int) {
	for _, c := range g.cells {
		if c.Flagged {
			count++
		}
	}
	return
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// neighbours calls fn for each in-bounds 8-neighbour of x, y.
func (g *Grid) neighbours(x, y int, fn func(c *Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.InBounds(x+dx, y+dy) {
				fn(g.at(x+dx, y+dy))
			}
		}
	}
}
