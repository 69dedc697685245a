package view

import (
	"fmt"

	"github.com/rocketscienceinc/snakesladders-backend/internal/board"
	"github.com/rocketscienceinc/snakesladders-backend/internal/entity"
	"github.com/rocketscienceinc/snakesladders-backend/internal/snakesladders"
)

type PlayerView struct {
	Number    int         `json:"number"`
	Color     string      `json:"color"`
	Position  int         `json:"position"`
	Cell      *board.Cell `json:"cell,omitempty"`
	IsCurrent bool        `json:"is_current"`
}

type GameView struct {
	Status        string       `json:"status"`
	Players       []PlayerView `json:"players"`
	CurrentPlayer int          `json:"current_player"`
	Winner        int          `json:"winner,omitempty"`
}

// NewGameView numbers players from 1. Players still off the board have no cell.
func NewGameView(game *entity.Game) GameView {
	view := GameView{
		Status:        game.Status,
		Players:       make([]PlayerView, 0, len(game.Players)),
		CurrentPlayer: game.CurrentPlayer + 1,
	}

	if winner, ok := game.Winner(); ok {
		view.Winner = winner + 1
	}

	for _, player := range game.Players {
		playerView := PlayerView{
			Number:    player.Number(),
			Color:     player.Color,
			Position:  player.Position,
			IsCurrent: player.Index == game.CurrentPlayer && !game.IsGameOver(),
		}

		if player.IsOnBoard() {
			if cell, err := board.PositionToCell(player.Position); err == nil {
				playerView.Cell = &cell
			}
		}

		view.Players = append(view.Players, playerView)
	}

	return view
}

func TurnMessage(player int) string {
	return fmt.Sprintf("Player %d's turn", player+1)
}

func WinMessage(player int) string {
	return fmt.Sprintf("Player %d wins!", player+1)
}

// MoveMessage describes where the player ended up and which connector took them there.
func MoveMessage(move snakesladders.MoveResult) string {
	number := move.Player + 1
	where := fmt.Sprintf("Player %d is on square %d.", number, move.FinalNext)

	switch move.ConnectorEvent {
	case board.ConnectorLadder:
		return fmt.Sprintf("Ladder! Player %d climbs up. %s", number, where)
	case board.ConnectorSnake:
		return fmt.Sprintf("Snake! Player %d slides down. %s", number, where)
	default:
		return where
	}
}
