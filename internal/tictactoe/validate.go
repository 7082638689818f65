package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Validate checks that a state could have been produced by NewGame and a
// sequence of ApplyMove calls.
func Validate(state entity.GameState) error {
	if !state.CurrentPlayer.Valid() {
		return fmt.Errorf("%w: current player %s", ErrInconsistentState, state.CurrentPlayer)
	}

	xMarks := state.Board.MarkCount(entity.PlayerX)
	oMarks := state.Board.MarkCount(entity.PlayerO)
	if xMarks != oMarks && xMarks != oMarks+1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", ErrInconsistentState, xMarks, oMarks)
	}

	if ownsLine(state.Board, entity.PlayerX) && ownsLine(state.Board, entity.PlayerO) {
		return fmt.Errorf("%w: both players own a line", ErrInconsistentState)
	}

	status, winner := Evaluate(state.Board)
	if state.Status != status {
		return fmt.Errorf("%w: status %q, board says %q", ErrInconsistentState, state.Status, status)
	}

	if state.Winner != winner {
		return fmt.Errorf("%w: winner %s, board says %s", ErrInconsistentState, state.Winner, winner)
	}

	// X moves first, so equal counts mean X is next (or O made the last move).
	lastMover := entity.PlayerX
	if xMarks == oMarks {
		lastMover = entity.PlayerO
	}

	expected := lastMover.Opponent()
	if state.IsFinished() {
		expected = lastMover
	}

	if state.CurrentPlayer != expected {
		return fmt.Errorf("%w: current player %s, expected %s", ErrInconsistentState, state.CurrentPlayer, expected)
	}

	if state.IsWon() && state.Winner != lastMover {
		return fmt.Errorf("%w: winner %s did not make the last move", ErrInconsistentState, state.Winner)
	}

	return nil
}

func ownsLine(board entity.Board, player entity.Player) bool {
	mark := entity.MarkOf(player)
	for _, line := range Lines {
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return true
		}
	}
	return false
}
