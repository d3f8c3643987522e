package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vancomm/minesweeper/internal/mines"
)

func Logging(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, line string) (mines.Snapshot, error) {
			logger.Debug("> " + line)
			start := time.Now()

			snap, err := next.Handle(ctx, line)

			attrs := []any{
				slog.String("command", line),
				slog.String("state", snap.State.String()),
				slog.Int("flags", snap.Flags),
				slog.Any("duration (ms)", int64(time.Since(start)/time.Millisecond)),
			}
			if err != nil {
				logger.Warn("command failed", append(attrs, slog.Any("error", err))...)
				return snap, err
			}
			logger.Info("handled command", attrs...)
			return snap, nil
		})
	}
}

// Recover turns a panic inside next into an error so one bad command does
// not take the whole loop down.
func Recover(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, line string) (snap mines.Snapshot, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("command panicked",
						slog.String("command", line), slog.Any("panic", r))
					if e, ok := r.(error); ok {
						err = fmt.Errorf("internal error: %w", e)
					} else {
						err = fmt.Errorf("internal error: %v", r)
					}
				}
			}()
			return next.Handle(ctx, line)
		})
	}
}
