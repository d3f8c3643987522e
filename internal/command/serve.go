package command

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper/internal/middleware"
)

type errorReply struct {
	Error string `json:"error"`
}

// Serve reads commands from in, one per line, and answers each with a
// single JSON line on out: the snapshot after the command, or an object
// with an "error" field. Blank lines are skipped. It returns nil on EOF or
// once ctx is done; nothing is written after that.
func Serve(ctx context.Context, h middleware.Handler, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var reply any
		snap, err := h.Handle(ctx, line)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			reply = errorReply{Error: err.Error()}
		} else {
			reply = snap
		}
		if err := enc.Encode(reply); err != nil {
			return fmt.Errorf("unable to write reply: %w", err)
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read command: %w", err)
	}
	return nil
}
