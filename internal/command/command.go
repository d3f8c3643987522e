package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type verb string

const (
	verbNoop    verb = "g"
	verbOpen    verb = "o"
	verbFlag    verb = "f"
	verbChord   verb = "c"
	verbForfeit verb = "r"
	verbNewGame verb = "n"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Executor applies text commands to a session. Coordinates outside the
// board are accepted and ignored by the engine, they are not errors.
type Executor struct {
	session *mines.Session
}

func NewExecutor(session *mines.Session) *Executor {
	return &Executor{session: session}
}

// Handle implements middleware.Handler.
func (e *Executor) Handle(ctx context.Context, line string) (mines.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return mines.Snapshot{}, err
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return e.session.Snapshot(), nil
	}
	cmd, args := verb(tokens[0]), tokens[1:]

	switch cmd {
	case verbNoop:
		return e.session.Snapshot(), nil
	case verbOpen:
		return e.point(args, e.session.Reveal)
	case verbFlag:
		return e.point(args, e.session.Flag)
	case verbChord:
		return e.point(args, e.session.Chord)
	case verbForfeit:
		return e.session.Forfeit(), nil
	case verbNewGame:
		return e.newGame(args)
	default:
		return e.session.Snapshot(), fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
}

func (e *Executor) point(args []string, action func(x, y int) mines.Snapshot) (mines.Snapshot, error) {
	x, y, err := parseXY(args)
	if err != nil {
		return e.session.Snapshot(), err
	}
	return action(x, y), nil
}

// newGame restarts with the current params when called bare, otherwise
// args[0] is a query string such as "width=9&height=9&mine_count=10".
func (e *Executor) newGame(args []string) (mines.Snapshot, error) {
	switch len(args) {
	case 0:
		return e.session.Restart()
	case 1:
		p, err := decodeGameParams(args[0])
		if err != nil {
			return e.session.Snapshot(), err
		}
		snap, err := e.session.NewGame(p)
		if err != nil {
			return e.session.Snapshot(), err
		}
		return snap, nil
	default:
		return e.session.Snapshot(), fmt.Errorf("%w: expected a single query", ErrBadArguments)
	}
}

func parseXY(args []string) (x, y int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected x and y, got %d values", ErrBadArguments, len(args))
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: x: %w", ErrBadArguments, err)
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: y: %w", ErrBadArguments, err)
	}
	return x, y, nil
}
