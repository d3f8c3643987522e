package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/mines"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer commands from stdin with JSON snapshots",
	Long: `Reads one command per line from stdin and writes one JSON line per
command to stdout: the board after the command, or {"error": "..."}.

Commands:
  g                 current board
  o X Y             reveal a cell
  f X Y             toggle a flag
  c X Y             chord a revealed number
  r                 give up
  n                 new game with the same settings
  n QUERY           new game, e.g. n width=9&height=9&mine_count=10

Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := cfg.Logger(os.Stderr)
		mines.Log = logger.With(slog.String("component", "mines"))

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		a := app.New(logger, cfg)
		if err := a.Start(ctx, os.Stdin, os.Stdout); err != nil {
			logger.Error("command loop failed", slog.Any("error", err))
			return err
		}
		return nil
	},
}
