// Package snakesladders resolves a single dice roll against the board and the game state.
package snakesladders

import (
	"fmt"

	"github.com/rocketscienceinc/snakesladders-backend/internal/apperror"
	"github.com/rocketscienceinc/snakesladders-backend/internal/board"
	"github.com/rocketscienceinc/snakesladders-backend/internal/entity"
)

const (
	DiceMin = 1
	DiceMax = 6

	// ExtraTurnRoll keeps the same player on the move.
	ExtraTurnRoll = 6
)

type MoveResult struct {
	Player         int                 `json:"player"`
	From           int                 `json:"from"`
	RawNext        int                 `json:"raw_next"`
	FinalNext      int                 `json:"final_next"`
	ConnectorEvent board.ConnectorKind `json:"connector_event"`
	WonGame        bool                `json:"won_game"`
	TurnAdvances   bool                `json:"turn_advances"`
	NextPlayer     int                 `json:"next_player"`
}

// ApplyRoll moves the current player by dice and mutates game in place.
// It fails without touching game when the game is not in progress or dice is not a die face.
func ApplyRoll(game *entity.Game, dice int) (MoveResult, error) {
	if game == nil {
		return MoveResult{}, apperror.ErrGameIsNotStarted
	}

	if err := validateRoll(game, dice); err != nil {
		return MoveResult{}, fmt.Errorf("invalid roll: %w", err)
	}

	current := game.Current()
	result := MoveResult{
		Player:         current.Index,
		From:           current.Position,
		ConnectorEvent: board.ConnectorNone,
	}

	result.RawNext = current.Position + dice
	if result.RawNext > board.Goal {
		result.RawNext = current.Position
	}

	result.FinalNext = board.ResolveConnector(result.RawNext)
	switch {
	case result.FinalNext > result.RawNext:
		result.ConnectorEvent = board.ConnectorLadder
	case result.FinalNext < result.RawNext:
		result.ConnectorEvent = board.ConnectorSnake
	}

	current.Position = result.FinalNext
	updateGameStatus(game, dice, &result)

	return result, nil
}

// validateRoll - checks if the roll can be applied.
func validateRoll(game *entity.Game, dice int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if dice < DiceMin || dice > DiceMax {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidDiceValue, dice)
	}

	return nil
}

// updateGameStatus - finishes the game on the goal, otherwise passes the turn unless a six was rolled.
func updateGameStatus(game *entity.Game, dice int, result *MoveResult) {
	if result.FinalNext == board.Goal {
		result.WonGame = true
		result.NextPlayer = game.CurrentPlayer
		game.Status = entity.StatusFinished

		return
	}

	result.TurnAdvances = dice != ExtraTurnRoll
	if result.TurnAdvances {
		game.CurrentPlayer = (game.CurrentPlayer + 1) % game.NumPlayers()
	}

	result.NextPlayer = game.CurrentPlayer
}
