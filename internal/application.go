package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the application on the process standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run wires the engine, the session and the console together and plays until
// the input ends, the player quits, or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	session := usecase.NewGameSession(logger, tictactoe.NewEngine())
	consoleServer := console.New(logger, session, console.Options{
		Color:       !conf.Console.NoColor,
		ShowIndices: !conf.Console.HideIndices,
	})

	log.Info("Starting console", "sessionID", session.ID())

	if err := consoleServer.Run(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed", "moves", session.Moves(), "status", string(session.State().Status))

	return nil
}
