package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// maxLineLength caps a single input line. Longer lines reach the handlers
// cut to this length and the rest is dropped.
const maxLineLength = 4096

var errQuit = errors.New("quit requested")

type gameSession interface {
	State() entity.GameState
	Play(ctx context.Context, cell int) (entity.GameState, error)
	Reset(ctx context.Context) entity.GameState
}

// Options control how the board is drawn.
type Options struct {
	Color       bool
	ShowIndices bool
}

// terminal is the output side of a running console.
type terminal struct {
	out      io.Writer
	renderer *Renderer
}

type Server struct {
	logger  *slog.Logger
	session gameSession
	options Options

	handlers map[string]func(ctx context.Context, term *terminal) error
}

func New(logger *slog.Logger, session gameSession, options Options) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		session: session,
		options: options,

		handlers: make(map[string]func(context.Context, *terminal) error),
	}

	server.handlers["reset"] = server.handleReset
	server.handlers["r"] = server.handleReset
	server.handlers["help"] = server.handleHelp
	server.handlers["h"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["q"] = server.handleQuit

	return server
}

// Run reads one command per line from in and writes the board to out.
// It returns on end of input, on quit, or when ctx is done.
func (that *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	// stops the reader on every return
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := &terminal{
		out:      out,
		renderer: NewRenderer(out, that.options),
	}

	if err := that.write(term, "%s%s", helpText, term.renderer.Render(that.session.State())); err != nil {
		return err
	}

	lines, scanErr := readLines(ctx, in)

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			err := that.handleLine(ctx, line, term)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				return fmt.Errorf("failed to handle command %q: %w", line, err)
			}
		}
	}
}

// readLines scans in on its own goroutine so that Run can stop on ctx while
// a read is blocked.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 256), maxLineLength)
		scanner.Split(limitedLines(maxLineLength))

		defer func() {
			scanErr <- scanner.Err()
			close(lines)
		}()

		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines, scanErr
}

// limitedLines splits like bufio.ScanLines, but a line longer than limit is
// returned cut to limit bytes and its remainder is skipped.
func limitedLines(limit int) bufio.SplitFunc {
	skipping := false

	return func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if err != nil {
			return advance, token, err
		}

		if advance > 0 || token != nil {
			if skipping {
				skipping = false
				return advance, nil, nil
			}
			return advance, token, nil
		}

		if len(data) < limit {
			return 0, nil, nil
		}

		if skipping {
			return len(data), nil, nil
		}

		skipping = true

		return len(data), data[:limit], nil
	}
}

func (that *Server) handleLine(ctx context.Context, line string, term *terminal) error {
	command := strings.ToLower(strings.TrimSpace(line))
	if command == "" {
		return nil
	}

	if cell, err := strconv.Atoi(command); err == nil {
		return that.handleMove(ctx, cell, term)
	}

	handler, ok := that.handlers[command]
	if !ok {
		that.logger.Debug("unknown command", "command", shorten(command))
		return that.write(term, "%s: %q, type help for the list of commands\n", apperror.ErrUnknownCommand, shorten(command))
	}

	return handler(ctx, term)
}

func shorten(command string) string {
	const maxShown = 32
	if len(command) <= maxShown {
		return command
	}
	return command[:maxShown] + "..."
}

func (that *Server) write(term *terminal, format string, args ...any) error {
	if _, err := fmt.Fprintf(term.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
