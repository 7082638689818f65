package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

const (
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusDraw    GameStatus = "draw"
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrInvalidBoardSize  = errors.New("invalid board size")
)

type GameStatus string

// IsTerminal reports whether no further moves are accepted.
func (that GameStatus) IsTerminal() bool {
	return that == StatusWon || that == StatusDraw
}

func (that *GameStatus) UnmarshalJSON(data []byte) error {
	var status string
	if err := json.Unmarshal(data, &status); err != nil {
		return fmt.Errorf("failed to unmarshal status: %w", err)
	}

	switch GameStatus(status) {
	case StatusPlaying, StatusWon, StatusDraw:
		*that = GameStatus(status)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameStatus, status)
	}
}

// Board holds the cells in row-major order: index 0 is the top-left corner,
// index 8 the bottom-right one.
type Board [BoardSize]Cell

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// MarkCount returns the number of cells owned by the player.
func (that Board) MarkCount(player Player) int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() && cell.Owner() == player {
			count++
		}
	}
	return count
}

// Row returns the three cells of row r (0..2).
func (that Board) Row(r int) [3]Cell {
	return [3]Cell{that[r*3], that[r*3+1], that[r*3+2]}
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: got %d cells", ErrInvalidBoardSize, len(cells))
	}

	copy(that[:], cells)

	return nil
}

// GameState is a snapshot of a single game. It is a value: transitions
// return a new GameState instead of changing the old one.
type GameState struct {
	Board         Board      `json:"board"`
	CurrentPlayer Player     `json:"currentPlayer"`
	Status        GameStatus `json:"gameStatus"`
	Winner        Player     `json:"winner"`
}

func (that GameState) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that GameState) IsWon() bool {
	return that.Status == StatusWon
}

func (that GameState) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that GameState) IsFinished() bool {
	return that.Status.IsTerminal()
}
