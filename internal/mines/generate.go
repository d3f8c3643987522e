package mines

import (
	"log/slog"
	"math/rand/v2"
)

// Generate builds a fresh grid for p: every cell empty, p.MineCount mines
// placed using r, and adjacency numbers filled in.
func Generate(p GameParams, r *rand.Rand) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(p.Width, p.Height)
	if p.Uniform {
		grid.placeMinesUniform(p.MineCount, r)
	} else {
		grid.placeMinesProbing(p.MineCount, r)
	}
	grid.computeNumbers()

	Log.Debug("generated grid", slog.String("params", p.String()))
	return grid, nil
}

// placeMinesProbing picks a random cell for every mine; when the pick is
// already mined it walks forward in row-major order, wrapping at the end of
// a row and at the end of the grid, until it finds a free cell.
//
// Cells that follow long runs of mines are picked more often, so the
// distribution is not uniform. Replays recorded against this policy depend
// on that exact sequence of draws.
func (g *Grid) placeMinesProbing(count int, r *rand.Rand) {
	for range count {
		x, y := r.IntN(g.width), r.IntN(g.height)
		for g.at(x, y).Kind == Mine {
			x++
			if x >= g.width {
				x = 0
				y++
				if y >= g.height {
					y = 0
				}
			}
		}
		g.at(x, y).Kind = Mine
	}
}

// placeMinesUniform draws count cells without replacement, every subset
// equally likely.
func (g *Grid) placeMinesUniform(count int, r *rand.Rand) {
	candidates := make([]int, len(g.cells))
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range count {
		i := r.IntN(k)
		g.cells[candidates[i]].Kind = Mine
		k--
		candidates[i] = candidates[k]
	}
}

func (g *Grid) computeNumbers() {
	for y := range g.height {
		for x := range g.width {
			c := g.at(x, y)
			if c.Kind == Mine {
				continue
			}
			c.Number = g.countMines(x, y)
			if c.Number > 0 {
				c.Kind = Number
			}
		}
	}
}

// countMines relies on [Grid.Get] returning an [Invalid] cell past the
// border, so edge cells need no special casing.
func (g *Grid) countMines(cx, cy int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(cx+dx, cy+dy).Kind == Mine {
				count++
			}
		}
	}
	return
}
