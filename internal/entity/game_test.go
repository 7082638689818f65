package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game is won or drawn", func(t *testing.T) {
		assert.True(t, GameState{Status: StatusWon}.IsFinished())
		assert.True(t, GameState{Status: StatusDraw}.IsFinished())
	})

	t.Run("IsPlaying returns true only while playing", func(t *testing.T) {
		assert.True(t, GameState{Status: StatusPlaying}.IsPlaying())
		assert.False(t, GameState{Status: StatusPlaying}.IsFinished())
		assert.False(t, GameState{Status: StatusDraw}.IsPlaying())
	})
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, PlayerNone, PlayerNone.Opponent())
	assert.False(t, PlayerNone.Valid())
}

func TestBoard(t *testing.T) {
	// Given: a board with two marks
	board := Board{CellX, CellEmpty, CellEmpty, CellEmpty, CellO, CellEmpty, CellEmpty, CellEmpty, CellEmpty}

	// Then: the queries reflect them
	assert.False(t, board.IsFull())
	assert.Equal(t, 1, board.MarkCount(PlayerX))
	assert.Equal(t, 1, board.MarkCount(PlayerO))
	assert.Equal(t, [3]Cell{CellEmpty, CellO, CellEmpty}, board.Row(1))
	assert.Equal(t, PlayerX, board[0].Owner())
}

func TestGameState_JSON(t *testing.T) {
	t.Run("Encodes empty cells and missing winner as null", func(t *testing.T) {
		// Given: a game in progress
		state := GameState{
			Board:         Board{CellX, CellEmpty, CellEmpty, CellEmpty, CellO, CellEmpty, CellEmpty, CellEmpty, CellEmpty},
			CurrentPlayer: PlayerX,
			Status:        StatusPlaying,
		}

		// When: the state is encoded
		data, err := json.Marshal(state)
		require.NoError(t, err)

		// Then: the renderer sees the same shape as the browser client
		expected := `{"board":["X",null,null,null,"O",null,null,null,null],"currentPlayer":"X","gameStatus":"playing","winner":null}`
		assert.JSONEq(t, expected, string(data))

		// And: decoding gives back the same state
		var decoded GameState
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, state, decoded)
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		data := `{"board":["Z",null,null,null,null,null,null,null,null],"currentPlayer":"X","gameStatus":"playing","winner":null}`

		var decoded GameState
		err := json.Unmarshal([]byte(data), &decoded)

		assert.ErrorIs(t, err, ErrUnknownMark)
	})

	t.Run("Rejects boards that are not 3x3", func(t *testing.T) {
		data := `{"board":[null,null,null],"currentPlayer":"X","gameStatus":"playing","winner":null}`

		var decoded GameState
		err := json.Unmarshal([]byte(data), &decoded)

		assert.ErrorIs(t, err, ErrInvalidBoardSize)
	})

	t.Run("Rejects unknown status", func(t *testing.T) {
		data := `{"board":[null,null,null,null,null,null,null,null,null],"currentPlayer":"X","gameStatus":"paused","winner":null}`

		var decoded GameState
		err := json.Unmarshal([]byte(data), &decoded)

		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}
