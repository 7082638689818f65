package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrInconsistentState = errors.New("inconsistent game state")

// Lines are the winning triples: three rows, three columns and two diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// linesThrough[cell] holds the indexes into Lines of every line containing cell.
var linesThrough = func() [entity.BoardSize][]int {
	var result [entity.BoardSize][]int
	for i, line := range Lines {
		for _, cell := range line {
			result[cell] = append(result[cell], i)
		}
	}
	return result
}()

// Engine exposes the package functions as methods for callers that depend on an interface.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (that *Engine) NewGame() entity.GameState {
	return NewGame()
}

func (that *Engine) ApplyMove(state entity.GameState, cell int) (entity.GameState, error) {
	return ApplyMove(state, cell)
}

// NewGame returns the initial configuration: empty board, X to move.
func NewGame() entity.GameState {
	return entity.GameState{
		CurrentPlayer: entity.PlayerX,
		Status:        entity.StatusPlaying,
		Winner:        entity.PlayerNone,
	}
}

// ApplyMove places the current player's mark on cell and returns the resulting state.
// An invalid move returns the given state as is, with an error matching
// apperror.ErrInvalidMove.
func ApplyMove(state entity.GameState, cell int) (entity.GameState, error) {
	if err := validateMove(state, cell); err != nil {
		return state, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	mover := state.CurrentPlayer

	next := state
	next.Board[cell] = entity.MarkOf(mover)

	switch {
	case completesLine(next.Board, cell, mover):
		next.Status = entity.StatusWon
		next.Winner = mover
	case next.Board.IsFull():
		next.Status = entity.StatusDraw
	default:
		next.CurrentPlayer = mover.Opponent()
	}

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, cell int) error {
	if state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !state.IsPlaying() || !state.CurrentPlayer.Valid() {
		return ErrInconsistentState
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !state.Board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// completesLine reports whether the last move on cell finished a line for player.
// Only lines through that cell can have changed.
func completesLine(board entity.Board, cell int, player entity.Player) bool {
	mark := entity.MarkOf(player)
	for _, i := range linesThrough[cell] {
		line := Lines[i]
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return true
		}
	}
	return false
}

// WinningLine returns the first completed line on the board and its owner.
func WinningLine(board entity.Board) ([3]int, entity.Player, bool) {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if !a.IsEmpty() && a == b && b == c {
			return line, a.Owner(), true
		}
	}
	return [3]int{}, entity.PlayerNone, false
}

// Evaluate derives the status and winner from the board alone.
func Evaluate(board entity.Board) (entity.GameStatus, entity.Player) {
	if _, winner, ok := WinningLine(board); ok {
		return entity.StatusWon, winner
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.StatusDraw, entity.PlayerNone
	}

	return entity.StatusPlaying, entity.PlayerNone
}
