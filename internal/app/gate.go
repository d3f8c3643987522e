package app

import (
	"context"
	"errors"
	"sync"

	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrClosed = errors.New("app is shut down")

// gate serializes commands and refuses them once closed, so the session is
// not touched by the command loop after Start returns.
type gate struct {
	mu     sync.Mutex
	closed bool
}

func (g *gate) middleware(next middleware.Handler) middleware.Handler {
	return middleware.HandlerFunc(func(ctx context.Context, line string) (mines.Snapshot, error) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.closed {
			return mines.Snapshot{}, ErrClosed
		}
		return next.Handle(ctx, line)
	})
}

// close waits for a running command to finish.
func (g *gate) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}
