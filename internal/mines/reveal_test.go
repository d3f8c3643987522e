package mines

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from rows of '*' (mine) and '.' (safe).
func gridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '*' {
				g.at(x, y).Kind = Mine
			}
		}
	}
	g.computeNumbers()
	return g
}

func cloneGrid(g *Grid) *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Cells()}
}

// recursiveFlood is the plain recursive fill the explicit stack replaces.
func recursiveFlood(g *Grid, c Cell) {
	if c.Revealed || c.Kind == Mine || c.Kind == Invalid {
		return
	}
	g.at(c.X, c.Y).Flagged = false
	g.at(c.X, c.Y).Revealed = true
	if c.Kind == Empty {
		recursiveFlood(g, g.Get(c.X-1, c.Y))
		recursiveFlood(g, g.Get(c.X+1, c.Y))
		recursiveFlood(g, g.Get(c.X, c.Y-1))
		recursiveFlood(g, g.Get(c.X, c.Y+1))
	}
}

func revealedPoints(g *Grid) (ps []Point) {
	for _, c := range g.cells {
		if c.Revealed {
			ps = append(ps, Point{c.X, c.Y})
		}
	}
	return
}

func TestRevealOneByThreeFlood(t *testing.T) {
	g := gridFromRows("..*")
	require.Equal(t, Empty, g.Get(0, 0).Kind)
	require.Equal(t, Number, g.Get(1, 0).Kind)
	require.Equal(t, 1, g.Get(1, 0).Number)

	state := g.Reveal(0, 0)

	assert.Equal(t, Won, state)
	assert.True(t, g.Get(0, 0).Revealed)
	assert.True(t, g.Get(1, 0).Revealed)
	assert.False(t, g.Get(2, 0).Revealed)
	assert.True(t, g.Get(2, 0).Flagged, "mines are flagged on a win")
}

func TestRevealOneByThreeMine(t *testing.T) {
	g := gridFromRows("..*")

	state := g.Reveal(2, 0)

	assert.Equal(t, Lost, state)
	mine := g.Get(2, 0)
	assert.True(t, mine.Revealed)
	assert.True(t, mine.Exploded)
	assert.False(t, g.Get(0, 0).Revealed)
	assert.False(t, g.Get(1, 0).Revealed)
}

func TestRevealMineUncoversAllMines(t *testing.T) {
	g := gridFromRows(
		"*...",
		"....",
		"..*.",
		"...*",
	)
	g.Flag(3, 3)
	g.Flag(1, 1)
	before := g.Cells()

	require.Equal(t, Lost, g.Reveal(0, 0))

	for i, c := range g.Cells() {
		if c.Kind != Mine {
			assert.Equal(t, before[i], c, "safe cell %d:%d changed", c.X, c.Y)
			continue
		}
		assert.True(t, c.Revealed)
		assert.False(t, c.Flagged)
		assert.Equal(t, c.X == 0 && c.Y == 0, c.Exploded)
	}
}

func TestRevealNumberOpensSingleCell(t *testing.T) {
	g := gridFromRows(
		"*...",
		"....",
		"....",
	)

	assert.Equal(t, Playing, g.Reveal(1, 1))
	assert.Equal(t, []Point{{1, 1}}, revealedPoints(g))
}

func TestFloodStopsAtNumbers(t *testing.T) {
	g := gridFromRows(
		".....",
		".....",
		"...**",
		"...*.",
	)

	require.Equal(t, Playing, g.Reveal(0, 0))

	want := strings.Join([]string{
		". . . . .",
		". . 1 2 2",
		". . 2 # #",
		". . 2 # #",
	}, "\n") + "\n"
	snap := newSnapshot(GameParams{MineCount: 3}, Playing, g)
	assert.Equal(t, want, snap.String())
}

func TestFloodIsFourConnected(t *testing.T) {
	// The right-hand empty pocket touches the flooded region only through
	// number cells, so it must stay hidden.
	g := gridFromRows(
		"...*...",
		"...*...",
		"...*...",
	)

	require.Equal(t, Playing, g.Reveal(0, 1))

	for y := range 3 {
		assert.True(t, g.Get(0, y).Revealed)
		assert.True(t, g.Get(2, y).Revealed)
		assert.False(t, g.Get(4, y).Revealed)
		assert.False(t, g.Get(6, y).Revealed)
	}
}

func TestFloodMatchesRecursiveFill(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		g, err := Generate(GameParams{Width: 12, Height: 10, MineCount: 18}, r)
		require.NoError(t, err)
		for i := 0; i < len(g.cells); i += 7 {
			g.cells[i].Flagged = true
		}

		for _, c := range g.Cells() {
			if c.Kind != Empty {
				continue
			}
			want := cloneGrid(g)
			recursiveFlood(want, c)

			got := cloneGrid(g)
			got.flood(c.X, c.Y)

			require.Equal(t, want.cells, got.cells, "flood from %d:%d", c.X, c.Y)
		}
	}
}

func TestFloodLargeBoard(t *testing.T) {
	g := NewGrid(1000, 1000)
	assert.Equal(t, Won, g.Reveal(500, 500))
	assert.Len(t, revealedPoints(g), 1000*1000)
}

func TestFloodOpensFlaggedCells(t *testing.T) {
	g := NewGrid(5, 1)
	g.Flag(2, 0)

	assert.Equal(t, Won, g.Reveal(0, 0))
	for x := range 5 {
		c := g.Get(x, 0)
		assert.True(t, c.Revealed, "x=%d", x)
		assert.False(t, c.Flagged, "x=%d", x)
	}
}

func TestFloodClearsFlagsOnRim(t *testing.T) {
	g := gridFromRows(
		".....",
		".....",
		"....*",
	)
	g.Flag(3, 2)
	g.Flag(1, 0)

	require.Equal(t, Won, g.Reveal(0, 2))

	for _, p := range []Point{{1, 0}, {3, 2}} {
		c := g.Get(p.X, p.Y)
		assert.True(t, c.Revealed)
		assert.False(t, c.Flagged)
	}
	assert.Equal(t, 1, g.Flags(), "only the mine is flagged after the win")
}

func TestRevealNoOps(t *testing.T) {
	g := gridFromRows(
		"*..",
		"...",
	)
	g.Reveal(1, 1)
	g.Flag(2, 0)

	tests := []struct {
		name string
		x, y int
	}{
		{"revealed", 1, 1},
		{"flagged", 2, 0},
		{"out of bounds", -1, 0},
		{"past the edge", 3, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := g.Cells()
			assert.Equal(t, Playing, g.Reveal(test.x, test.y))
			assert.Equal(t, before, g.Cells())
		})
	}
}

func TestFlag(t *testing.T) {
	g := gridFromRows("*..")

	assert.True(t, g.Flag(0, 0))
	assert.True(t, g.Get(0, 0).Flagged)
	assert.True(t, g.Flag(0, 0))
	assert.False(t, g.Get(0, 0).Flagged)

	g.Reveal(1, 0)
	assert.False(t, g.Flag(1, 0))
	assert.False(t, g.Get(1, 0).Flagged)

	assert.False(t, g.Flag(5, 5))
}

func TestWinRequiresEverySafeCell(t *testing.T) {
	g := gridFromRows(
		"*.",
		"..",
	)

	assert.Equal(t, Playing, g.Reveal(1, 0))
	assert.Equal(t, Playing, g.Reveal(0, 1))
	assert.False(t, g.Get(0, 0).Flagged)
	assert.Equal(t, Won, g.Reveal(1, 1))
	assert.True(t, g.Get(0, 0).Flagged)
	assert.False(t, g.Get(0, 0).Revealed)
	assert.True(t, g.checkWin(), "win check is idempotent")
}

func TestChord(t *testing.T) {
	rows := []string{
		"*..",
		"...",
		"...",
	}

	t.Run("matching flags open neighbours", func(t *testing.T) {
		g := gridFromRows(rows...)
		g.Reveal(1, 0)
		g.Flag(0, 0)

		assert.Equal(t, Won, g.Chord(1, 0))
		for _, c := range g.Cells() {
			assert.Equal(t, c.Kind != Mine, c.Revealed, "cell %d:%d", c.X, c.Y)
		}
	})

	t.Run("missing flag does nothing", func(t *testing.T) {
		g := gridFromRows(rows...)
		g.Reveal(1, 0)
		before := g.Cells()

		assert.Equal(t, Playing, g.Chord(1, 0))
		assert.Equal(t, before, g.Cells())
	})

	t.Run("wrong flag explodes", func(t *testing.T) {
		g := gridFromRows(rows...)
		g.Reveal(1, 1)
		g.Flag(2, 2)

		assert.Equal(t, Lost, g.Chord(1, 1))
		assert.True(t, g.Get(0, 0).Exploded)
	})

	t.Run("hidden cell does nothing", func(t *testing.T) {
		g := gridFromRows(rows...)
		assert.Equal(t, Playing, g.Chord(1, 0))
		assert.Empty(t, revealedPoints(g))
	})
}

func TestStateText(t *testing.T) {
	for _, s := range []State{Playing, Won, Lost} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back State
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
	assert.True(t, Won.Over())
	assert.True(t, Lost.Over())
	assert.False(t, Playing.Over())
}
