package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const helpText = `Commands:
  0-8    place your mark on a cell (0 is top-left, 8 is bottom-right)
  reset  start a new game
  help   show this message
  quit   leave

`

func (that *Server) handleMove(ctx context.Context, cell int, term *terminal) error {
	log := that.logger.With("method", "handleMove", "cell", cell)

	state, err := that.session.Play(ctx, cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		if err = that.write(term, "%s\n\n", describeInvalidMove(err, cell)); err != nil {
			return err
		}

		return that.write(term, "%s", term.renderer.Render(state))
	}

	if err != nil {
		log.Error("failed to play", "error", err)
		return fmt.Errorf("failed to play cell %d: %w", cell, err)
	}

	return that.write(term, "%s", term.renderer.Render(state))
}

func (that *Server) handleReset(ctx context.Context, term *terminal) error {
	state := that.session.Reset(ctx)

	return that.write(term, "New game.\n\n%s", term.renderer.Render(state))
}

func (that *Server) handleHelp(_ context.Context, term *terminal) error {
	return that.write(term, "%s", helpText)
}

func (that *Server) handleQuit(_ context.Context, term *terminal) error {
	if err := that.write(term, "Bye!\n"); err != nil {
		return err
	}

	return errQuit
}

// describeInvalidMove turns a rejected move into a message for the player.
func describeInvalidMove(err error, cell int) string {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over, type reset to play again."
	case errors.Is(err, apperror.ErrInvalidCell):
		return fmt.Sprintf("Cell %d is off the board, pick a cell from 0 to 8.", cell)
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("Cell %d is already taken.", cell)
	default:
		return err.Error()
	}
}
