package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type gameEngine interface {
	NewGame() entity.GameState
	ApplyMove(state entity.GameState, cell int) (entity.GameState, error)
}

// GameSession keeps the state of one local play session. It expects a single
// caller: moves are applied in the order they arrive.
type GameSession struct {
	logger *slog.Logger
	engine gameEngine

	id    string
	state entity.GameState
	moves int
}

func NewGameSession(logger *slog.Logger, engine gameEngine) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		logger: logger.With("component", "session", "sessionID", id),
		engine: engine,

		id:    id,
		state: engine.NewGame(),
	}
}

func (that *GameSession) ID() string {
	return that.id
}

func (that *GameSession) State() entity.GameState {
	return that.state
}

// Moves returns the number of moves accepted since the last reset.
func (that *GameSession) Moves() int {
	return that.moves
}

// Play applies a move for the current player. A rejected move leaves the
// session as it was and returns the current state along with the error.
func (that *GameSession) Play(ctx context.Context, cell int) (entity.GameState, error) {
	log := that.logger.With("method", "Play", "cell", cell, "player", that.state.CurrentPlayer.String())

	next, err := that.engine.ApplyMove(that.state, cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		log.DebugContext(ctx, "move rejected", "error", err)
		return that.state, err
	}

	if err != nil {
		return that.state, fmt.Errorf("failed to apply move: %w", err)
	}

	that.state = next
	that.moves++

	if next.IsFinished() {
		log.InfoContext(ctx, "game finished", "status", string(next.Status), "winner", next.Winner.String(), "moves", that.moves)
	}

	return next, nil
}

// Reset discards the current game and starts a new one.
func (that *GameSession) Reset(ctx context.Context) entity.GameState {
	that.logger.InfoContext(ctx, "game reset", "method", "Reset", "moves", that.moves, "status", string(that.state.Status))

	that.state = that.engine.NewGame()
	that.moves = 0

	return that.state
}
