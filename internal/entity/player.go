package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownMark = errors.New("unknown mark")

// Player is the side to move. PlayerNone is only used for "no winner".
type Player string

const (
	PlayerX    Player = "X"
	PlayerO    Player = "O"
	PlayerNone Player = ""
)

func (that Player) Valid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other side. PlayerNone has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (that Player) String() string {
	if that == PlayerNone {
		return "none"
	}
	return string(that)
}

func (that Player) MarshalJSON() ([]byte, error) {
	if that == PlayerNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(that))
}

func (that *Player) UnmarshalJSON(data []byte) error {
	mark, err := unmarshalMark(data)
	if err != nil {
		return err
	}

	*that = Player(mark)

	return nil
}

// Cell is a single square of the board: empty or owned by one of the players.
type Cell string

const (
	CellEmpty Cell = ""
	CellX     Cell = "X"
	CellO     Cell = "O"
)

// MarkOf returns the cell value a player leaves on the board.
func MarkOf(player Player) Cell {
	return Cell(player)
}

// Owner returns the player who marked the cell, or PlayerNone for an empty cell.
func (that Cell) Owner() Player {
	return Player(that)
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

func (that Cell) MarshalJSON() ([]byte, error) {
	if that == CellEmpty {
		return []byte("null"), nil
	}
	return json.Marshal(string(that))
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	mark, err := unmarshalMark(data)
	if err != nil {
		return err
	}

	*that = Cell(mark)

	return nil
}

func unmarshalMark(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}

	var mark string
	if err := json.Unmarshal(data, &mark); err != nil {
		return "", fmt.Errorf("failed to unmarshal mark: %w", err)
	}

	switch mark {
	case string(PlayerX), string(PlayerO):
		return mark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}
