package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger builds the application logger writing to w: colored text at debug
// level in development, JSON at info level otherwise.
func (c Config) Logger(w io.Writer) *slog.Logger {
	if c.Development {
		noColor := true
		if f, ok := w.(*os.File); ok {
			noColor = !term.IsTerminal(int(f.Fd()))
		}
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: noColor,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// LogWriter opens the rotating log file used while the terminal UI owns
// the screen.
func (c Config) LogWriter() io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}
