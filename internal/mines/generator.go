package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
	Uniform                  bool // unbiased mine placement
}

// String formats params as WxH(M), e.g. 16x16(40).
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

// ParseGameParams reads the WxH(M) form written by [GameParams.String].
// Uniform is not part of that form and is always false.
func ParseGameParams(s string) (GameParams, error) {
	var p GameParams
	ss := strings.NewReplacer("x", " ", "(", " ", ")", " ").Replace(s)
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`invalid game params %q (n = %d, err = %v)`, s, n, err,
		)
	}
	return p, nil
}

// Validate reports an error wrapping [ErrInvalidConfiguration] when the
// dimensions are not positive or the mine count does not fit the grid.
func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d",
			ErrInvalidConfiguration, p.Width)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d",
			ErrInvalidConfiguration, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d",
			ErrInvalidConfiguration, p.MineCount)
	case p.MineCount > p.Width*p.Height:
		return fmt.Errorf("%w: %d mines do not fit a %dx%d grid",
			ErrInvalidConfiguration, p.MineCount, p.Width, p.Height)
	}
	return nil
}

// Clamp returns a copy with MineCount forced into [0, Width*Height].
func (p GameParams) Clamp() GameParams {
	p.MineCount = max(0, min(p.MineCount, max(p.Width, 0)*max(p.Height, 0)))
	return p
}
