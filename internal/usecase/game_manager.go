package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/snakesladders-backend/internal/apperror"
	"github.com/rocketscienceinc/snakesladders-backend/internal/board"
	"github.com/rocketscienceinc/snakesladders-backend/internal/entity"
	"github.com/rocketscienceinc/snakesladders-backend/internal/snakesladders"
)

type roller interface {
	Roll() int
}

// Turn is one resolved roll and the game as it looks right after it.
type Turn struct {
	Dice int                      `json:"dice"`
	Move snakesladders.MoveResult `json:"move"`
	Game *entity.Game             `json:"game"`
}

// GameManager owns the game of a single table. It is not safe for concurrent use:
// the caller drives it from one goroutine, one event at a time.
type GameManager struct {
	logger *slog.Logger
	roller roller

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, roller roller) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		roller: roller,
	}
}

// StartGame discards any previous game and starts a new one for numPlayers.
func (that *GameManager) StartGame(ctx context.Context, numPlayers int) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	game, err := entity.NewGame(numPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = game.Start(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game

	log.InfoContext(ctx, "game started", "players", numPlayers)

	return game.Clone(), nil
}

// Roll throws the die for the current player and applies it.
func (that *GameManager) Roll(ctx context.Context) (*Turn, error) {
	if err := that.confirmOngoingGame(); err != nil {
		return nil, err
	}

	return that.MakeTurn(ctx, that.roller.Roll())
}

// MakeTurn applies a known dice value for the current player.
func (that *GameManager) MakeTurn(ctx context.Context, dice int) (*Turn, error) {
	log := that.logger.With("method", "MakeTurn")

	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	move, err := snakesladders.ApplyRoll(that.game, dice)
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log = log.With("player", move.Player, "dice", dice, "from", move.From, "to", move.FinalNext)

	switch {
	case move.WonGame:
		log.InfoContext(ctx, "game won")
	case move.ConnectorEvent != board.ConnectorNone:
		log.InfoContext(ctx, "player took a connector", "connector", move.ConnectorEvent)
	default:
		log.DebugContext(ctx, "player moved")
	}

	return &Turn{
		Dice: dice,
		Move: move,
		Game: that.game.Clone(),
	}, nil
}

// GetGame returns a snapshot of the current game.
func (that *GameManager) GetGame(_ context.Context) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	return that.game.Clone(), nil
}

func (that *GameManager) confirmOngoingGame() error {
	if that.game == nil {
		return apperror.ErrGameIsNotStarted
	}

	if err := that.game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	return nil
}
