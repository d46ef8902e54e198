package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ServeStdio reads newline-delimited JSON-RPC messages from in and writes
// one response line per request to out. Messages are handled one at a
// time, in order. It returns nil on EOF or when ctx is cancelled.
func ServeStdio(ctx context.Context, h MessageHandler, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, bufio.NewReader(in), lines, readErr)

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("stdio server stopping", slog.String("reason", ctx.Err().Error()))
			return nil

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("failed to read message: %w", err)
				default:
					logger.Debug("stdin closed")
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			resp := h.HandleMessage(ctx, json.RawMessage(line))
			if resp == nil {
				continue
			}
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}
	}
}

func readLines(ctx context.Context, r *bufio.Reader, lines chan<- string, readErr chan<- error) {
	defer close(lines)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr <- err
			}
			return
		}
	}
}
