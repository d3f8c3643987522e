package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/mines"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Opens the board in the terminal. Move with the arrow keys or hjkl,
reveal with space, flag with f and press ? for the full key list.

Logs go to the rotating file named by log_file while the board is open.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		w := cfg.LogWriter()
		defer w.Close()
		logger := cfg.Logger(w)
		mines.Log = logger.With(slog.String("component", "mines"))

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		a := app.New(logger, cfg)
		if err := a.Play(ctx, tea.WithAltScreen()); err != nil {
			logger.Error("game exited", slog.Any("error", err))
			return err
		}
		return nil
	},
}
