package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/tui"
)

type App struct {
	logger  *slog.Logger
	cfg     *config.Config
	session *mines.Session
}

func New(logger *slog.Logger, cfg *config.Config) *App {
	return &App{
		logger:  logger,
		cfg:     cfg,
		session: mines.NewSession(cfg.Rand()),
	}
}

func (a *App) Session() *mines.Session {
	return a.session
}

func (a *App) newGame() (mines.Snapshot, error) {
	params := a.cfg.GameParams()
	snap, err := a.session.NewGame(params)
	if err != nil {
		return snap, fmt.Errorf("unable to start %s game: %w", params, err)
	}
	return snap, nil
}

func (a *App) handler(g *gate) middleware.Handler {
	return middleware.Wrap(
		command.NewExecutor(a.session),
		g.middleware,
		middleware.Recover(a.logger),
		middleware.Logging(a.logger),
	)
}

// Start deals the configured game, writes its snapshot to out and then
// answers commands read from in until EOF or until ctx is done. Once Start
// returns, no further command reaches the session, even if a read on in is
// still pending.
func (a *App) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	snap, err := a.newGame()
	if err != nil {
		return err
	}
	if err := json.NewEncoder(out).Encode(snap); err != nil {
		return fmt.Errorf("unable to write snapshot: %w", err)
	}

	g := &gate{}
	done := make(chan error, 1)
	go func() {
		done <- command.Serve(ctx, a.handler(g), in, out)
	}()

	a.logger.Info("accepting commands", slog.String("params", a.session.Params().String()))
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// the reader may still be blocked on in; it is abandoned
		g.close()
		a.logger.Info("shutting down")
		return nil
	}
}

// Play deals the configured game and runs the terminal UI on it.
func (a *App) Play(ctx context.Context, opts ...tea.ProgramOption) error {
	if _, err := a.newGame(); err != nil {
		return err
	}
	a.logger.Info("starting terminal ui", slog.String("params", a.session.Params().String()))
	if err := tui.Run(ctx, tui.NewModel(a.session), opts...); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
