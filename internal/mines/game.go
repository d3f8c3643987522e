package mines

import (
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Session owns a single game: its params, grid and state. Player actions
// are applied only while the state is [Playing]. A Session is not safe for
// concurrent use.
type Session struct {
	params GameParams
	grid   *Grid
	state  State
	rnd    *rand.Rand
}

func NewSession(r *rand.Rand) *Session {
	return &Session{rnd: r}
}

// NewGame discards the current board and deals a new one for p. On error
// the previous game is left untouched.
func (s *Session) NewGame(p GameParams) (Snapshot, error) {
	grid, err := Generate(p, s.rnd)
	if err != nil {
		return Snapshot{}, err
	}
	s.params = p
	s.grid = grid
	s.state = Playing
	Log.Info("new game", slog.String("params", p.String()))
	return s.Snapshot(), nil
}

// Restart deals a new board with the params of the last game.
func (s *Session) Restart() (Snapshot, error) {
	return s.NewGame(s.params)
}

func (s *Session) playing() bool {
	return s.grid != nil && s.state == Playing
}

func (s *Session) Reveal(x, y int) Snapshot {
	if s.playing() {
		s.transition(s.grid.Reveal(x, y))
	}
	return s.Snapshot()
}

func (s *Session) Flag(x, y int) Snapshot {
	if s.playing() {
		s.grid.Flag(x, y)
	}
	return s.Snapshot()
}

func (s *Session) Chord(x, y int) Snapshot {
	if s.playing() {
		s.transition(s.grid.Chord(x, y))
	}
	return s.Snapshot()
}

// Forfeit ends a running game as lost and uncovers the mines.
func (s *Session) Forfeit() Snapshot {
	if s.playing() {
		s.grid.revealMines()
		s.transition(Lost)
	}
	return s.Snapshot()
}

func (s *Session) transition(next State) {
	if next == s.state {
		return
	}
	s.state = next
	Log.Info("game over",
		slog.String("params", s.params.String()),
		slog.String("state", next.String()))
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Params() GameParams {
	return s.params
}

func (s *Session) Snapshot() Snapshot {
	return newSnapshot(s.params, s.state, s.grid)
}
