package middleware

import (
	"context"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Handler executes one command line against a game and returns the
// resulting snapshot.
type Handler interface {
	Handle(ctx context.Context, line string) (mines.Snapshot, error)
}

type HandlerFunc func(ctx context.Context, line string) (mines.Snapshot, error)

func (f HandlerFunc) Handle(ctx context.Context, line string) (mines.Snapshot, error) {
	return f(ctx, line)
}

type Middleware func(Handler) Handler

// Wrap applies mws so that the last one listed runs first.
func Wrap(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
